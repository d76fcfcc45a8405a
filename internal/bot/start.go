package bot

import (
	"context"
	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/i18n"
	"telegram-shop-bot/internal/session"
)

// cmdStart shows the main menu to registered users and the language picker
// to new ones. Any in-flight flow is abandoned.
func (b *Bot) cmdStart(ctx context.Context, msg *client.Message) error {
	userID := msg.From.ID
	b.sessions.End(userID)

	registered, err := b.userService.IsRegistered(ctx, userID)
	if err != nil {
		return err
	}

	if registered {
		lang := b.userService.Language(ctx, userID)
		_, err = b.tg.SendMessage(ctx, client.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        i18n.T(lang, "main_menu"),
			ReplyMarkup: mainMenuKeyboard(lang, b.isAdmin(userID)),
		})
		return err
	}

	_, err = b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        i18n.T("uz", "select_language"),
		ReplyMarkup: languageKeyboard(),
	})
	return err
}

// languageSelected persists the choice for existing users or starts
// registration for new ones.
func (b *Bot) languageSelected(ctx context.Context, msg *client.Message, lang string) error {
	userID := msg.From.ID

	registered, err := b.userService.IsRegistered(ctx, userID)
	if err != nil {
		return err
	}

	if registered {
		if err := b.userService.SetLanguage(ctx, userID, lang); err != nil {
			return err
		}
		_, err = b.tg.SendMessage(ctx, client.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        i18n.T(lang, "language_changed"),
			ReplyMarkup: mainMenuKeyboard(lang, b.isAdmin(userID)),
		})
		return err
	}

	state := b.sessions.Begin(userID, session.FlowRegistration, session.StepFirstName)
	state.Registration.Language = lang
	b.sessions.Update(userID, state)

	if _, err := b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   i18n.T(lang, "welcome_register"),
	}); err != nil {
		return err
	}
	_, err = b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   i18n.T(lang, "enter_first_name"),
	})
	return err
}

func (b *Bot) showSettings(ctx context.Context, msg *client.Message) error {
	lang := b.userService.Language(ctx, msg.From.ID)
	_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        i18n.T(lang, "select_language"),
		ReplyMarkup: languageKeyboard(),
	})
	return err
}

func (b *Bot) backToMenu(ctx context.Context, cb *client.CallbackQuery) error {
	userID := cb.From.ID
	lang := b.userService.Language(ctx, userID)

	_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      cb.Message.Chat.ID,
		Text:        i18n.T(lang, "main_menu"),
		ReplyMarkup: mainMenuKeyboard(lang, b.isAdmin(userID)),
	})
	if err != nil {
		return err
	}
	return b.tg.AnswerCallbackQuery(ctx, cb.ID, "", false)
}
