package handler

import (
	"net/http"
	"telegram-shop-bot/internal/service"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	checkoutService service.CheckoutService
}

func NewAdminHandler(checkoutService service.CheckoutService) *AdminHandler {
	return &AdminHandler{
		checkoutService: checkoutService,
	}
}

func (h *AdminHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := h.checkoutService.OrderCount(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total_orders": count,
	})
}
