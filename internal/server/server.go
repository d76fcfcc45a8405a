package server

import (
	"telegram-shop-bot/internal/handler"
	custommw "telegram-shop-bot/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	adminToken      string
	adminHandler    *handler.AdminHandler
	catalogHandler  *handler.CatalogHandler
	telegramHandler *handler.TelegramHandler
	webhookEnabled  bool
}

func NewServer(
	adminToken string,
	adminHandler *handler.AdminHandler,
	catalogHandler *handler.CatalogHandler,
	telegramHandler *handler.TelegramHandler,
	webhookEnabled bool,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		adminToken:      adminToken,
		adminHandler:    adminHandler,
		catalogHandler:  catalogHandler,
		telegramHandler: telegramHandler,
		webhookEnabled:  webhookEnabled,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- catalog probe --------
	catalog := api.Group("/catalog")
	catalog.GET("/categories", s.catalogHandler.GetCategories)
	catalog.GET("/products/:id", s.catalogHandler.GetProduct)
	catalog.GET("/search", s.catalogHandler.Search)

	// -------- admin --------
	admin := api.Group("/admin", custommw.TokenAuth(s.adminToken))
	admin.GET("/stats", s.adminHandler.GetStats)

	if s.webhookEnabled {
		api.POST("/telegram/webhook", s.telegramHandler.Webhook)
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
