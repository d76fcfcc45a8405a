package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-shop-bot/internal/config"
)

func newTestTelegram(t *testing.T, handler http.HandlerFunc) TelegramClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewTelegramClient(&config.Bot{Token: "test-token", APIURL: srv.URL})
}

func TestTelegramClient_SendMessage(t *testing.T) {
	c := newTestTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)

		var payload SendMessageParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.EqualValues(t, 5, payload.ChatID)
		assert.Equal(t, "hello", payload.Text)

		w.Write([]byte(`{"ok":true,"result":{"message_id":12,"chat":{"id":5}}}`))
	})

	msg, err := c.SendMessage(context.Background(), SendMessageParams{ChatID: 5, Text: "hello"})
	require.NoError(t, err)
	assert.EqualValues(t, 12, msg.MessageID)
}

func TestTelegramClient_APIError(t *testing.T) {
	c := newTestTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`))
	})

	err := c.CopyMessage(context.Background(), 1, 2, 3)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)
}

func TestTelegramClient_GetUpdates(t *testing.T) {
	c := newTestTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.EqualValues(t, 100, payload["offset"])

		w.Write([]byte(`{"ok":true,"result":[
			{"update_id":100,"message":{"message_id":1,"chat":{"id":9},"text":"/start","from":{"id":9,"first_name":"A"}}},
			{"update_id":101,"callback_query":{"id":"cb1","from":{"id":9,"first_name":"A"},"data":"checkout"}}
		]}`))
	})

	updates, err := c.GetUpdates(context.Background(), 100, 30)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "/start", updates[0].Message.Text)
	assert.Equal(t, "checkout", updates[1].CallbackQuery.Data)
}

func TestTelegramClient_MalformedResponse(t *testing.T) {
	c := newTestTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := c.GetUpdates(context.Background(), 0, 0)
	require.Error(t, err)
}
