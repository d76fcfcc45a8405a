package bot

import (
	"context"
	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/i18n"
)

func (b *Bot) showOrders(ctx context.Context, msg *client.Message) error {
	userID := msg.From.ID
	lang := b.userService.Language(ctx, userID)

	orders, err := b.checkoutService.Orders(ctx, userID)
	if err != nil {
		return err
	}

	if len(orders) == 0 {
		_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   "📦 " + i18n.T(lang, "my_orders") + "\n\n" + i18n.T(lang, "no_orders"),
		})
		return err
	}

	_, err = b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:    msg.Chat.ID,
		Text:      ordersText(orders, lang),
		ParseMode: "HTML",
	})
	return err
}
