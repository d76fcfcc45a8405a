package bot

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/i18n"
	"telegram-shop-bot/internal/model"
	"telegram-shop-bot/internal/repository"
	"telegram-shop-bot/internal/session"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func (b *Bot) handleRegistrationStep(ctx context.Context, msg *client.Message, state session.State) error {
	switch state.Step {
	case session.StepFirstName:
		return b.regFirstName(ctx, msg, state)
	case session.StepLastName:
		return b.regLastName(ctx, msg, state)
	case session.StepEmail:
		return b.regEmail(ctx, msg, state)
	case session.StepPhone:
		return b.regPhone(ctx, msg, state)
	}
	return nil
}

func (b *Bot) regFirstName(ctx context.Context, msg *client.Message, state session.State) error {
	state.Registration.FirstName = msg.Text
	state.Step = session.StepLastName
	b.sessions.Update(msg.From.ID, state)

	_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   i18n.T(state.Registration.Language, "enter_last_name"),
	})
	return err
}

func (b *Bot) regLastName(ctx context.Context, msg *client.Message, state session.State) error {
	state.Registration.LastName = msg.Text
	state.Step = session.StepEmail
	b.sessions.Update(msg.From.ID, state)

	_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   i18n.T(state.Registration.Language, "enter_email"),
	})
	return err
}

func (b *Bot) regEmail(ctx context.Context, msg *client.Message, state session.State) error {
	lang := state.Registration.Language
	email := strings.TrimSpace(msg.Text)

	// invalid input re-prompts without advancing
	if !emailRegex.MatchString(email) {
		_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   i18n.T(lang, "invalid_email"),
		})
		return err
	}

	state.Registration.Email = email
	state.Step = session.StepPhone
	b.sessions.Update(msg.From.ID, state)

	_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        i18n.T(lang, "share_contact"),
		ReplyMarkup: contactKeyboard(lang),
	})
	return err
}

// regPhone only accepts a shared contact, never free text.
func (b *Bot) regPhone(ctx context.Context, msg *client.Message, state session.State) error {
	lang := state.Registration.Language
	if msg.Contact == nil {
		_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        i18n.T(lang, "share_contact"),
			ReplyMarkup: contactKeyboard(lang),
		})
		return err
	}

	userID := msg.From.ID
	err := b.userService.Register(ctx, &model.User{
		UserID:    userID,
		FirstName: state.Registration.FirstName,
		LastName:  state.Registration.LastName,
		Email:     state.Registration.Email,
		Phone:     msg.Contact.PhoneNumber,
		Language:  lang,
		IsAdmin:   b.isAdmin(userID),
	})
	b.sessions.End(userID)

	if err != nil && !errors.Is(err, repository.ErrUserExists) {
		b.logger.Error("registration failed", "user_id", userID, "error", err)
		_, sendErr := b.tg.SendMessage(ctx, client.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   i18n.T(lang, "registration_failed"),
		})
		return sendErr
	}

	_, err = b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        i18n.T(lang, "registration_complete"),
		ReplyMarkup: mainMenuKeyboard(lang, b.isAdmin(userID)),
	})
	return err
}
