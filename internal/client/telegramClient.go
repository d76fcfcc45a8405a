package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"telegram-shop-bot/internal/config"
	"time"
)

// TelegramClient speaks the Telegram Bot API over HTTPS.
type TelegramClient interface {
	GetUpdates(ctx context.Context, offset int64, timeoutSec int) ([]Update, error)
	SendMessage(ctx context.Context, p SendMessageParams) (*Message, error)
	SendPhoto(ctx context.Context, p SendPhotoParams) (*Message, error)
	EditMessageText(ctx context.Context, p EditMessageParams) error
	DeleteMessage(ctx context.Context, chatID, messageID int64) error
	AnswerCallbackQuery(ctx context.Context, callbackID, text string, showAlert bool) error
	CopyMessage(ctx context.Context, toChatID, fromChatID, messageID int64) error
}

type SendMessageParams struct {
	ChatID      int64       `json:"chat_id"`
	Text        string      `json:"text"`
	ParseMode   string      `json:"parse_mode,omitempty"`
	ReplyMarkup interface{} `json:"reply_markup,omitempty"`
}

type SendPhotoParams struct {
	ChatID      int64       `json:"chat_id"`
	Photo       string      `json:"photo"`
	Caption     string      `json:"caption,omitempty"`
	ParseMode   string      `json:"parse_mode,omitempty"`
	ReplyMarkup interface{} `json:"reply_markup,omitempty"`
}

type EditMessageParams struct {
	ChatID      int64       `json:"chat_id"`
	MessageID   int64       `json:"message_id"`
	Text        string      `json:"text"`
	ParseMode   string      `json:"parse_mode,omitempty"`
	ReplyMarkup interface{} `json:"reply_markup,omitempty"`
}

// APIError is a non-ok Bot API response. Code 403 means the recipient
// blocked the bot, which broadcast treats as a distinct outcome.
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}

type telegramClientImpl struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewTelegramClient(botCfg *config.Bot) TelegramClient {
	return &telegramClientImpl{
		httpClient: &http.Client{
			// Above the long-poll timeout so getUpdates can hang the
			// full window.
			Timeout: 60 * time.Second,
		},
		baseURL: botCfg.APIURL,
		token:   botCfg.Token,
	}
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	ErrorCode   int             `json:"error_code"`
	Description string          `json:"description"`
}

func (c *telegramClientImpl) call(ctx context.Context, method string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if !apiResp.OK {
		return &APIError{Code: apiResp.ErrorCode, Description: apiResp.Description}
	}

	if out != nil && len(apiResp.Result) > 0 {
		if err := json.Unmarshal(apiResp.Result, out); err != nil {
			return fmt.Errorf("unmarshal %s result: %w", method, err)
		}
	}
	return nil
}

func (c *telegramClientImpl) GetUpdates(ctx context.Context, offset int64, timeoutSec int) ([]Update, error) {
	payload := map[string]interface{}{
		"offset":  offset,
		"timeout": timeoutSec,
	}

	var updates []Update
	if err := c.call(ctx, "getUpdates", payload, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

func (c *telegramClientImpl) SendMessage(ctx context.Context, p SendMessageParams) (*Message, error) {
	var msg Message
	if err := c.call(ctx, "sendMessage", p, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *telegramClientImpl) SendPhoto(ctx context.Context, p SendPhotoParams) (*Message, error) {
	var msg Message
	if err := c.call(ctx, "sendPhoto", p, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *telegramClientImpl) EditMessageText(ctx context.Context, p EditMessageParams) error {
	return c.call(ctx, "editMessageText", p, nil)
}

func (c *telegramClientImpl) DeleteMessage(ctx context.Context, chatID, messageID int64) error {
	payload := map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
	}
	return c.call(ctx, "deleteMessage", payload, nil)
}

func (c *telegramClientImpl) AnswerCallbackQuery(ctx context.Context, callbackID, text string, showAlert bool) error {
	payload := map[string]interface{}{
		"callback_query_id": callbackID,
	}
	if text != "" {
		payload["text"] = text
		payload["show_alert"] = showAlert
	}
	return c.call(ctx, "answerCallbackQuery", payload, nil)
}

func (c *telegramClientImpl) CopyMessage(ctx context.Context, toChatID, fromChatID, messageID int64) error {
	payload := map[string]interface{}{
		"chat_id":      toChatID,
		"from_chat_id": fromChatID,
		"message_id":   messageID,
	}
	return c.call(ctx, "copyMessage", payload, nil)
}
