package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/i18n"
	"telegram-shop-bot/internal/service"
	"telegram-shop-bot/internal/session"
)

// startCheckout begins the promo → location → payment sequence. An empty
// cart rejects the whole flow up front.
func (b *Bot) startCheckout(ctx context.Context, cb *client.CallbackQuery) error {
	userID := cb.From.ID
	lang := b.userService.Language(ctx, userID)

	total, err := b.checkoutService.Start(ctx, userID)
	if errors.Is(err, service.ErrEmptyCart) {
		return b.tg.AnswerCallbackQuery(ctx, cb.ID, i18n.T(lang, "cart_empty"), true)
	}
	if err != nil {
		return err
	}

	state := b.sessions.Begin(userID, session.FlowCheckout, session.StepPromo)
	state.Checkout.TotalAmount = total
	state.Checkout.FinalAmount = total
	b.sessions.Update(userID, state)

	_, err = b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      cb.Message.Chat.ID,
		Text:        i18n.T(lang, "enter_promo"),
		ReplyMarkup: promoKeyboard(lang),
	})
	if err != nil {
		return err
	}
	return b.tg.AnswerCallbackQuery(ctx, cb.ID, "", false)
}

func (b *Bot) handleCheckoutStep(ctx context.Context, msg *client.Message, state session.State) error {
	switch state.Step {
	case session.StepPromo:
		return b.checkoutPromo(ctx, msg, state)
	case session.StepLocation:
		return b.checkoutLocation(ctx, msg, state)
	case session.StepPayment:
		return b.checkoutPayment(ctx, msg, state)
	}
	return nil
}

func (b *Bot) checkoutPromo(ctx context.Context, msg *client.Message, state session.State) error {
	userID := msg.From.ID
	lang := b.userService.Language(ctx, userID)
	total := state.Checkout.TotalAmount

	var result service.PromoResult
	if matchesKey(msg.Text, "skip") {
		result = b.checkoutService.SkipPromo(total)
	} else {
		var err error
		result, err = b.checkoutService.ApplyPromo(ctx, userID, msg.Text, total)
		if err != nil {
			return err
		}
	}

	switch result.Outcome {
	case service.PromoApplied:
		if _, err := b.tg.SendMessage(ctx, client.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   i18n.Tf(lang, "promo_applied", "percent", strconv.FormatFloat(result.Percent, 'g', -1, 64)),
		}); err != nil {
			return err
		}
	case service.PromoAlreadyUsed:
		if _, err := b.tg.SendMessage(ctx, client.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   i18n.T(lang, "promo_used"),
		}); err != nil {
			return err
		}
	case service.PromoInvalid:
		if _, err := b.tg.SendMessage(ctx, client.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   i18n.T(lang, "promo_invalid"),
		}); err != nil {
			return err
		}
	}

	state.Checkout.DiscountAmount = result.DiscountAmount
	state.Checkout.FinalAmount = result.FinalAmount
	state.Step = session.StepLocation
	b.sessions.Update(userID, state)

	_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        i18n.T(lang, "send_location"),
		ReplyMarkup: locationKeyboard(lang),
	})
	return err
}

// checkoutLocation only accepts a shared coordinate pair; anything else
// re-prompts without advancing.
func (b *Bot) checkoutLocation(ctx context.Context, msg *client.Message, state session.State) error {
	userID := msg.From.ID
	lang := b.userService.Language(ctx, userID)

	if msg.Location == nil {
		_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        i18n.T(lang, "send_location"),
			ReplyMarkup: locationKeyboard(lang),
		})
		return err
	}

	lat, lon := msg.Location.Latitude, msg.Location.Longitude
	state.Checkout.Latitude = &lat
	state.Checkout.Longitude = &lon
	state.Step = session.StepPayment
	b.sessions.Update(userID, state)

	_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        i18n.T(lang, "select_payment"),
		ReplyMarkup: paymentKeyboard(lang),
	})
	return err
}

func (b *Bot) checkoutPayment(ctx context.Context, msg *client.Message, state session.State) error {
	userID := msg.From.ID
	lang := b.userService.Language(ctx, userID)

	var paymentMethod string
	switch {
	case msg.Text == i18n.T(lang, "cash"):
		paymentMethod = "cash"
	case msg.Text == i18n.T(lang, "card"):
		paymentMethod = "card"
	default:
		// only the two configured labels advance the flow
		_, err := b.tg.SendMessage(ctx, client.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        i18n.T(lang, "select_payment"),
			ReplyMarkup: paymentKeyboard(lang),
		})
		return err
	}

	orderID, err := b.checkoutService.PlaceOrder(ctx, service.OrderRequest{
		UserID:         userID,
		TotalAmount:    state.Checkout.TotalAmount,
		DiscountAmount: state.Checkout.DiscountAmount,
		FinalAmount:    state.Checkout.FinalAmount,
		PaymentMethod:  paymentMethod,
		Latitude:       state.Checkout.Latitude,
		Longitude:      state.Checkout.Longitude,
	})
	b.sessions.End(userID)

	if err != nil {
		b.logger.Error("order creation failed", "user_id", userID, "error", err)
		_, sendErr := b.tg.SendMessage(ctx, client.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        i18n.T(lang, "order_failed"),
			ReplyMarkup: mainMenuKeyboard(lang, b.isAdmin(userID)),
		})
		return sendErr
	}

	text := i18n.T(lang, "order_success")
	text += fmt.Sprintf("\n\n%s: #%d", i18n.T(lang, "order_number"), orderID)
	text += fmt.Sprintf("\n%s: $%.2f", i18n.T(lang, "total"), state.Checkout.FinalAmount)

	_, err = b.tg.SendMessage(ctx, client.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        text,
		ReplyMarkup: mainMenuKeyboard(lang, b.isAdmin(userID)),
	})
	return err
}
