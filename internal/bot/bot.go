// Package bot routes Telegram updates through the per-user conversation
// flows: registration, catalog browsing, cart, checkout, search, order
// history and the admin panel.
package bot

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/config"
	"telegram-shop-bot/internal/i18n"
	"telegram-shop-bot/internal/service"
	"telegram-shop-bot/internal/session"
)

type Bot struct {
	tg       client.TelegramClient
	cfg      *config.Config
	logger   *slog.Logger
	sessions *session.Store

	userService      service.UserService
	catalogService   service.CatalogService
	cartService      service.CartService
	checkoutService  service.CheckoutService
	broadcastService service.BroadcastService
}

func New(
	tg client.TelegramClient,
	cfg *config.Config,
	logger *slog.Logger,
	sessions *session.Store,
	userService service.UserService,
	catalogService service.CatalogService,
	cartService service.CartService,
	checkoutService service.CheckoutService,
	broadcastService service.BroadcastService,
) *Bot {
	return &Bot{
		tg:               tg,
		cfg:              cfg,
		logger:           logger,
		sessions:         sessions,
		userService:      userService,
		catalogService:   catalogService,
		cartService:      cartService,
		checkoutService:  checkoutService,
		broadcastService: broadcastService,
	}
}

// RunPolling pulls updates via long-poll until ctx is cancelled. Each
// update is handled on its own goroutine; per-user sequencing comes from
// the session store, not from here.
func (b *Bot) RunPolling(ctx context.Context) error {
	var offset int64

	b.logger.Info("bot polling started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		updates, err := b.tg.GetUpdates(ctx, offset, 30)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b.logger.Warn("get updates failed", "error", err)
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			go b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate dispatches one update. Faults are contained to the single
// interaction that raised them.
func (b *Bot) HandleUpdate(ctx context.Context, update client.Update) {
	var err error
	switch {
	case update.CallbackQuery != nil:
		err = b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		err = b.handleMessage(ctx, update.Message)
	}
	if err != nil {
		b.logger.Error("update handling failed", "update_id", update.UpdateID, "error", err)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *client.Message) error {
	if msg.From == nil {
		return nil
	}
	userID := msg.From.ID

	if msg.Text == "/start" {
		return b.cmdStart(ctx, msg)
	}

	if code, ok := i18n.LanguageByLabel(msg.Text); ok {
		return b.languageSelected(ctx, msg, code)
	}

	// an active flow consumes the message before any menu button
	if state, ok := b.sessions.Flow(userID); ok {
		switch state.Flow {
		case session.FlowRegistration:
			return b.handleRegistrationStep(ctx, msg, state)
		case session.FlowCheckout:
			return b.handleCheckoutStep(ctx, msg, state)
		case session.FlowSearch:
			return b.handleSearchQuery(ctx, msg)
		case session.FlowBroadcast:
			return b.handleBroadcastMessage(ctx, msg)
		}
	}

	switch {
	case matchesKey(msg.Text, "catalog"):
		return b.showCatalog(ctx, msg)
	case matchesKey(msg.Text, "cart"):
		return b.showCart(ctx, msg)
	case matchesKey(msg.Text, "search"):
		return b.startSearch(ctx, msg)
	case matchesKey(msg.Text, "my_orders"):
		return b.showOrders(ctx, msg)
	case matchesKey(msg.Text, "settings"):
		return b.showSettings(ctx, msg)
	case matchesKey(msg.Text, "admin_panel"):
		return b.showAdminPanel(ctx, msg)
	}

	return nil
}

func (b *Bot) handleCallback(ctx context.Context, cb *client.CallbackQuery) error {
	if cb.From == nil || cb.Message == nil {
		return nil
	}

	data := cb.Data
	switch {
	case data == "back_to_menu":
		return b.backToMenu(ctx, cb)
	case data == "back_to_categories":
		return b.backToCategories(ctx, cb)
	case data == "checkout":
		return b.startCheckout(ctx, cb)
	case data == "clear_cart":
		return b.clearCart(ctx, cb)
	case data == "admin_orders":
		return b.showOrderCount(ctx, cb)
	case data == "admin_broadcast":
		return b.startBroadcast(ctx, cb)
	case data == "current_page":
		return b.tg.AnswerCallbackQuery(ctx, cb.ID, "", false)
	case strings.HasPrefix(data, "category_"):
		return b.showCategoryProducts(ctx, cb, strings.TrimPrefix(data, "category_"))
	case strings.HasPrefix(data, "page_"):
		return b.navigateBrowse(ctx, cb, parsePage(data, "page_"))
	case strings.HasPrefix(data, "search_page_"):
		return b.navigateSearch(ctx, cb, parsePage(data, "search_page_"))
	case strings.HasPrefix(data, "add_to_cart_"):
		return b.addToCart(ctx, cb, parseID(data, "add_to_cart_"))
	case strings.HasPrefix(data, "remove_from_cart_"):
		return b.removeFromCart(ctx, cb, parseID(data, "remove_from_cart_"))
	}

	return b.tg.AnswerCallbackQuery(ctx, cb.ID, "", false)
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.cfg.IsAdmin(userID)
}

// matchesKey reports whether text equals the key's label in any supported
// language; menu buttons arrive as plain text in the user's language.
func matchesKey(text, key string) bool {
	for code := range i18n.Languages {
		if text == i18n.T(code, key) {
			return true
		}
	}
	return false
}

func parsePage(data, prefix string) int {
	page, err := strconv.Atoi(strings.TrimPrefix(data, prefix))
	if err != nil {
		return -1
	}
	return page
}

func parseID(data, prefix string) int64 {
	id, err := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
