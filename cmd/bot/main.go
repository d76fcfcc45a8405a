package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"telegram-shop-bot/internal/bot"
	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/config"
	"telegram-shop-bot/internal/handler"
	"telegram-shop-bot/internal/repository"
	"telegram-shop-bot/internal/server"
	"telegram-shop-bot/internal/service"
	"telegram-shop-bot/internal/session"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	db, err := client.InitDB(cfg.DatabaseURL, cfg.DatabasePath)
	if err != nil {
		logger.Error("database init failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database initialized")

	telegramClient := client.NewTelegramClient(&cfg.Bot)
	catalogClient := client.NewCatalogClient(&cfg.Catalog)

	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(catalogClient, logger)
	cartService := service.NewCartService(cartRepo)
	checkoutService := service.NewCheckoutService(db, cfg.Promo, userRepo, cartRepo, orderRepo)
	broadcastService := service.NewBroadcastService(telegramClient, userRepo, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessions := session.NewStore(session.DefaultTTL)
	sessions.StartSweeper(ctx)

	shopBot := bot.New(
		telegramClient, cfg, logger, sessions,
		userService, catalogService, cartService, checkoutService, broadcastService,
	)

	adminHandler := handler.NewAdminHandler(checkoutService)
	catalogHandler := handler.NewCatalogHandler(catalogClient)
	telegramHandler := handler.NewTelegramHandler(shopBot)

	webhookMode := cfg.Bot.Mode == "webhook"
	srv := server.NewServer(cfg.AdminAPIToken, adminHandler, catalogHandler, telegramHandler, webhookMode)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	logger.Info("starting HTTP server", "addr", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	if !webhookMode {
		go func() {
			if err := shopBot.RunPolling(ctx); err != nil && ctx.Err() == nil {
				logger.Error("bot polling stopped", "error", err)
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")
	cancel()

	if err := srv.Shutdown(); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
}

func newLogger(logCfg config.Log) *slog.Logger {
	var level slog.Level
	switch logCfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if logCfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
