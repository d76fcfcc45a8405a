package handler

import (
	"context"
	"net/http"
	"telegram-shop-bot/internal/bot"
	"telegram-shop-bot/internal/client"

	"github.com/labstack/echo/v4"
)

// TelegramHandler is the webhook ingress used when BOT_MODE=webhook.
type TelegramHandler struct {
	bot *bot.Bot
}

func NewTelegramHandler(b *bot.Bot) *TelegramHandler {
	return &TelegramHandler{
		bot: b,
	}
}

func (h *TelegramHandler) Webhook(c echo.Context) error {
	var update client.Update
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed update")
	}

	// Telegram expects a fast 200; handling continues in the background
	// like the polling path, detached from the request context.
	go h.bot.HandleUpdate(context.WithoutCancel(c.Request().Context()), update)

	return c.NoContent(http.StatusOK)
}
