package bot

import (
	"context"
	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/i18n"
)

func (b *Bot) addToCart(ctx context.Context, cb *client.CallbackQuery, productID int64) error {
	userID := cb.From.ID
	lang := b.userService.Language(ctx, userID)

	product := b.catalogService.ProductByID(ctx, productID)
	if product == nil {
		return b.tg.AnswerCallbackQuery(ctx, cb.ID, i18n.T(lang, "product_not_found"), true)
	}

	if err := b.cartService.AddProduct(ctx, userID, product); err != nil {
		b.logger.Error("add to cart failed", "user_id", userID, "product_id", productID, "error", err)
		return b.tg.AnswerCallbackQuery(ctx, cb.ID, i18n.T(lang, "order_failed"), true)
	}

	return b.tg.AnswerCallbackQuery(ctx, cb.ID, i18n.T(lang, "added_to_cart"), true)
}

func (b *Bot) showCart(ctx context.Context, msg *client.Message) error {
	userID := msg.From.ID
	lang := b.userService.Language(ctx, userID)

	items, err := b.cartService.Items(ctx, userID)
	if err != nil {
		return err
	}

	text := i18n.T(lang, "cart_empty")
	if len(items) > 0 {
		text = cartText(items, lang)
	}

	_, err = b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        text,
		ParseMode:   "HTML",
		ReplyMarkup: cartKeyboard(items, lang),
	})
	return err
}

func (b *Bot) removeFromCart(ctx context.Context, cb *client.CallbackQuery, productID int64) error {
	userID := cb.From.ID
	lang := b.userService.Language(ctx, userID)

	if err := b.cartService.Remove(ctx, userID, productID); err != nil {
		return err
	}

	items, err := b.cartService.Items(ctx, userID)
	if err != nil {
		return err
	}

	text := i18n.T(lang, "cart_empty")
	if len(items) > 0 {
		text = cartText(items, lang)
	}

	if err := b.tg.EditMessageText(ctx, client.EditMessageParams{
		ChatID:      cb.Message.Chat.ID,
		MessageID:   cb.Message.MessageID,
		Text:        text,
		ParseMode:   "HTML",
		ReplyMarkup: cartKeyboard(items, lang),
	}); err != nil {
		return err
	}
	return b.tg.AnswerCallbackQuery(ctx, cb.ID, i18n.T(lang, "removed_from_cart"), false)
}

func (b *Bot) clearCart(ctx context.Context, cb *client.CallbackQuery) error {
	userID := cb.From.ID
	lang := b.userService.Language(ctx, userID)

	if err := b.cartService.Clear(ctx, userID); err != nil {
		return err
	}

	if err := b.tg.EditMessageText(ctx, client.EditMessageParams{
		ChatID:      cb.Message.Chat.ID,
		MessageID:   cb.Message.MessageID,
		Text:        i18n.T(lang, "cart_empty"),
		ReplyMarkup: cartKeyboard(nil, lang),
	}); err != nil {
		return err
	}
	return b.tg.AnswerCallbackQuery(ctx, cb.ID, i18n.T(lang, "removed_from_cart"), false)
}
