package bot

import (
	"context"
	"strings"
	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/i18n"
	"telegram-shop-bot/internal/session"
)

func (b *Bot) startSearch(ctx context.Context, msg *client.Message) error {
	userID := msg.From.ID
	lang := b.userService.Language(ctx, userID)

	b.sessions.Begin(userID, session.FlowSearch, session.StepQuery)

	_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   i18n.T(lang, "enter_search"),
	})
	return err
}

func (b *Bot) handleSearchQuery(ctx context.Context, msg *client.Message) error {
	userID := msg.From.ID
	lang := b.userService.Language(ctx, userID)
	query := strings.TrimSpace(msg.Text)

	b.sessions.End(userID)

	products := b.catalogService.Search(ctx, query)
	if len(products) == 0 {
		_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        i18n.T(lang, "no_results"),
			ReplyMarkup: mainMenuKeyboard(lang, b.isAdmin(userID)),
		})
		return err
	}

	b.sessions.SetSearch(userID, products)
	return b.showProductCard(ctx, msg.Chat.ID, lang, products[0], "search_page_", 0, len(products))
}

func (b *Bot) navigateSearch(ctx context.Context, cb *client.CallbackQuery, page int) error {
	userID := cb.From.ID

	window, ok := b.sessions.MoveSearch(userID, page)
	if !ok {
		return b.tg.AnswerCallbackQuery(ctx, cb.ID, "", false)
	}

	lang := b.userService.Language(ctx, userID)
	product := window.Products[window.Page]

	if err := b.showProductCard(ctx, cb.Message.Chat.ID, lang, product, "search_page_", window.Page, len(window.Products)); err != nil {
		return err
	}
	return b.tg.AnswerCallbackQuery(ctx, cb.ID, "", false)
}
