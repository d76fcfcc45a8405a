package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/repository"
)

// BroadcastResult summarizes the fan-out per recipient. Blocked counts
// recipients who stopped the bot; Failed counts every other delivery error.
type BroadcastResult struct {
	Recipients int
	Sent       int
	Blocked    int
	Failed     int
}

type BroadcastService interface {
	Broadcast(ctx context.Context, fromChatID, messageID int64) (BroadcastResult, error)
}

type broadcastServiceImpl struct {
	telegramClient client.TelegramClient
	userRepo       repository.UserRepository
	logger         *slog.Logger
	concurrency    int
}

func NewBroadcastService(
	telegramClient client.TelegramClient,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) BroadcastService {
	return &broadcastServiceImpl{
		telegramClient: telegramClient,
		userRepo:       userRepo,
		logger:         logger,
		concurrency:    8,
	}
}

// Broadcast copies the admin's message to every registered user with
// bounded concurrency. Individual failures are recorded, never retried, and
// never abort the remaining sends.
func (s *broadcastServiceImpl) Broadcast(ctx context.Context, fromChatID, messageID int64) (BroadcastResult, error) {
	ids, err := s.userRepo.AllIDs(ctx)
	if err != nil {
		return BroadcastResult{}, err
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result = BroadcastResult{Recipients: len(ids)}
	)
	sem := make(chan struct{}, s.concurrency)

	for _, userID := range ids {
		wg.Add(1)
		sem <- struct{}{}

		go func(userID int64) {
			defer wg.Done()
			defer func() { <-sem }()

			err := s.telegramClient.CopyMessage(ctx, userID, fromChatID, messageID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				result.Sent++
			case isBlocked(err):
				result.Blocked++
			default:
				result.Failed++
				s.logger.Debug("broadcast delivery failed", "user_id", userID, "error", err)
			}
		}(userID)
	}

	wg.Wait()
	return result, nil
}

func isBlocked(err error) bool {
	var apiErr *client.APIError
	return errors.As(err, &apiErr) && apiErr.Code == 403
}
