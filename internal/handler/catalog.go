package handler

import (
	"net/http"
	"strconv"
	"telegram-shop-bot/internal/client"

	"github.com/labstack/echo/v4"
)

// CatalogHandler exposes the upstream catalog through the ops API for
// probing. Unlike the bot flows it reports real errors, so an operator can
// tell an empty catalog from an unreachable one.
type CatalogHandler struct {
	catalogClient client.CatalogClient
}

func NewCatalogHandler(catalogClient client.CatalogClient) *CatalogHandler {
	return &CatalogHandler{
		catalogClient: catalogClient,
	}
}

func (h *CatalogHandler) GetCategories(c echo.Context) error {
	categories, err := h.catalogClient.Categories(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.catalogClient.ProductByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) Search(c echo.Context) error {
	products, err := h.catalogClient.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, products)
}
