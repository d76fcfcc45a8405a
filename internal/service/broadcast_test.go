package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/model"
	"telegram-shop-bot/internal/repository"
)

type fakeTelegram struct {
	mu      sync.Mutex
	copied  []int64
	outcome func(userID int64) error
}

func (f *fakeTelegram) CopyMessage(_ context.Context, toChatID, _, _ int64) error {
	f.mu.Lock()
	f.copied = append(f.copied, toChatID)
	f.mu.Unlock()
	return f.outcome(toChatID)
}

func (f *fakeTelegram) GetUpdates(context.Context, int64, int) ([]client.Update, error) {
	return nil, nil
}
func (f *fakeTelegram) SendMessage(context.Context, client.SendMessageParams) (*client.Message, error) {
	return nil, nil
}
func (f *fakeTelegram) SendPhoto(context.Context, client.SendPhotoParams) (*client.Message, error) {
	return nil, nil
}
func (f *fakeTelegram) EditMessageText(context.Context, client.EditMessageParams) error { return nil }
func (f *fakeTelegram) DeleteMessage(context.Context, int64, int64) error               { return nil }
func (f *fakeTelegram) AnswerCallbackQuery(context.Context, string, string, bool) error { return nil }

func seedUsers(t *testing.T, userRepo repository.UserRepository, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, userRepo.Create(context.Background(), &model.User{
			UserID:    int64(i),
			FirstName: "U",
			LastName:  "S",
			Email:     "u@example.com",
			Phone:     "+1",
		}))
	}
}

func TestBroadcast_PerRecipientOutcomes(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	seedUsers(t, userRepo, 10)

	tg := &fakeTelegram{
		outcome: func(userID int64) error {
			switch {
			case userID%3 == 0:
				return &client.APIError{Code: 403, Description: "bot was blocked by the user"}
			case userID == 7:
				return errors.New("network fault")
			default:
				return nil
			}
		},
	}

	svc := NewBroadcastService(tg, userRepo, discardLogger())
	result, err := svc.Broadcast(context.Background(), 99, 1)
	require.NoError(t, err)

	assert.Equal(t, 10, result.Recipients)
	assert.Equal(t, 3, result.Blocked, "users 3, 6, 9")
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 6, result.Sent)
	assert.Len(t, tg.copied, 10, "failures never abort the remaining sends")
}

func TestBroadcast_NoRecipients(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)

	tg := &fakeTelegram{outcome: func(int64) error { return nil }}
	svc := NewBroadcastService(tg, userRepo, discardLogger())

	result, err := svc.Broadcast(context.Background(), 99, 1)
	require.NoError(t, err)
	assert.Zero(t, result.Recipients)
	assert.Zero(t, result.Sent)
}
