package bot

import (
	"context"
	"fmt"
	"strconv"
	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/i18n"
	"telegram-shop-bot/internal/session"
)

// showAdminPanel silently ignores non-admins pressing the button.
func (b *Bot) showAdminPanel(ctx context.Context, msg *client.Message) error {
	userID := msg.From.ID
	if !b.isAdmin(userID) {
		return nil
	}
	lang := b.userService.Language(ctx, userID)

	_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        fmt.Sprintf("👨‍💼 <b>%s</b>", i18n.T(lang, "admin_panel")),
		ParseMode:   "HTML",
		ReplyMarkup: adminKeyboard(lang),
	})
	return err
}

func (b *Bot) showOrderCount(ctx context.Context, cb *client.CallbackQuery) error {
	userID := cb.From.ID
	lang := b.userService.Language(ctx, userID)
	if !b.isAdmin(userID) {
		return b.tg.AnswerCallbackQuery(ctx, cb.ID, i18n.T(lang, "access_denied"), true)
	}

	count, err := b.checkoutService.OrderCount(ctx)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("📊 <b>%s</b>\n\n%s: <b>%d</b>",
		i18n.T(lang, "total_orders"), i18n.T(lang, "total_orders"), count)

	if err := b.tg.EditMessageText(ctx, client.EditMessageParams{
		ChatID:      cb.Message.Chat.ID,
		MessageID:   cb.Message.MessageID,
		Text:        text,
		ParseMode:   "HTML",
		ReplyMarkup: adminKeyboard(lang),
	}); err != nil {
		return err
	}
	return b.tg.AnswerCallbackQuery(ctx, cb.ID, "", false)
}

func (b *Bot) startBroadcast(ctx context.Context, cb *client.CallbackQuery) error {
	userID := cb.From.ID
	lang := b.userService.Language(ctx, userID)
	if !b.isAdmin(userID) {
		return b.tg.AnswerCallbackQuery(ctx, cb.ID, i18n.T(lang, "access_denied"), true)
	}

	b.sessions.Begin(userID, session.FlowBroadcast, session.StepMessage)

	_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID: cb.Message.Chat.ID,
		Text:   i18n.T(lang, "enter_broadcast"),
	})
	if err != nil {
		return err
	}
	return b.tg.AnswerCallbackQuery(ctx, cb.ID, "", false)
}

func (b *Bot) handleBroadcastMessage(ctx context.Context, msg *client.Message) error {
	userID := msg.From.ID
	b.sessions.End(userID)
	if !b.isAdmin(userID) {
		return nil
	}
	lang := b.userService.Language(ctx, userID)

	result, err := b.broadcastService.Broadcast(ctx, msg.Chat.ID, msg.MessageID)
	if err != nil {
		return err
	}

	text := i18n.Tf(lang, "broadcast_success", "count", strconv.Itoa(result.Sent))
	text += "\n\n" + i18n.Tf(lang, "broadcast_report",
		"recipients", strconv.Itoa(result.Recipients),
		"sent", strconv.Itoa(result.Sent),
		"blocked", strconv.Itoa(result.Blocked),
		"failed", strconv.Itoa(result.Failed),
	)

	_, err = b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        text,
		ReplyMarkup: mainMenuKeyboard(lang, true),
	})
	return err
}
