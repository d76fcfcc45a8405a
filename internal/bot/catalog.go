package bot

import (
	"context"
	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/i18n"
)

const browseLimit = 30

func (b *Bot) showCatalog(ctx context.Context, msg *client.Message) error {
	lang := b.userService.Language(ctx, msg.From.ID)

	categories := b.catalogService.Categories(ctx)

	_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        i18n.T(lang, "categories"),
		ReplyMarkup: categoriesKeyboard(categories, lang),
	})
	return err
}

func (b *Bot) showCategoryProducts(ctx context.Context, cb *client.CallbackQuery, slug string) error {
	userID := cb.From.ID
	lang := b.userService.Language(ctx, userID)

	var products []client.Product
	if slug == "all" {
		products = b.catalogService.Products(ctx, browseLimit, 0)
	} else {
		products = b.catalogService.ProductsByCategory(ctx, slug, browseLimit)
	}

	if len(products) == 0 {
		if err := b.tg.EditMessageText(ctx, client.EditMessageParams{
			ChatID:    cb.Message.Chat.ID,
			MessageID: cb.Message.MessageID,
			Text:      i18n.T(lang, "no_results"),
		}); err != nil {
			return err
		}
		return b.tg.AnswerCallbackQuery(ctx, cb.ID, "", false)
	}

	b.sessions.SetBrowse(userID, products)

	if err := b.showProductCard(ctx, cb.Message.Chat.ID, lang, products[0], "page_", 0, len(products)); err != nil {
		return err
	}
	return b.tg.AnswerCallbackQuery(ctx, cb.ID, "", false)
}

func (b *Bot) navigateBrowse(ctx context.Context, cb *client.CallbackQuery, page int) error {
	userID := cb.From.ID

	window, ok := b.sessions.MoveBrowse(userID, page)
	if !ok {
		// out-of-range or expired window: leave the card as is
		return b.tg.AnswerCallbackQuery(ctx, cb.ID, "", false)
	}

	lang := b.userService.Language(ctx, userID)
	product := window.Products[window.Page]

	if err := b.showProductCard(ctx, cb.Message.Chat.ID, lang, product, "page_", window.Page, len(window.Products)); err != nil {
		return err
	}
	return b.tg.AnswerCallbackQuery(ctx, cb.ID, "", false)
}

func (b *Bot) backToCategories(ctx context.Context, cb *client.CallbackQuery) error {
	userID := cb.From.ID
	lang := b.userService.Language(ctx, userID)

	b.sessions.ClearBrowse(userID)
	categories := b.catalogService.Categories(ctx)

	_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      cb.Message.Chat.ID,
		Text:        i18n.T(lang, "categories"),
		ReplyMarkup: categoriesKeyboard(categories, lang),
	})
	if err != nil {
		return err
	}
	return b.tg.AnswerCallbackQuery(ctx, cb.ID, "", false)
}

// showProductCard sends one product as a photo card, falling back to plain
// text when the image cannot be delivered.
func (b *Bot) showProductCard(ctx context.Context, chatID int64, lang string, product client.Product, pagePrefix string, page, total int) error {
	text := productText(&product, lang)
	keyboard := productKeyboard(product.ID, lang, pagePrefix, page, total)

	if image := product.Image(); image != "" {
		_, err := b.tg.SendPhoto(ctx, client.SendPhotoParams{
			ChatID:      chatID,
			Photo:       image,
			Caption:     text,
			ParseMode:   "HTML",
			ReplyMarkup: keyboard,
		})
		if err == nil {
			return nil
		}
		b.logger.Debug("product photo send failed", "product_id", product.ID, "error", err)
	}

	_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   "HTML",
		ReplyMarkup: keyboard,
	})
	return err
}
