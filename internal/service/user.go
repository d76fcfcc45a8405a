package service

import (
	"context"
	"telegram-shop-bot/internal/model"
	"telegram-shop-bot/internal/repository"
)

const DefaultLanguage = "uz"

type UserService interface {
	Register(ctx context.Context, user *model.User) error
	Get(ctx context.Context, userID int64) (*model.User, error)
	IsRegistered(ctx context.Context, userID int64) (bool, error)
	Language(ctx context.Context, userID int64) string
	SetLanguage(ctx context.Context, userID int64, language string) error
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, user *model.User) error {
	if user.Language == "" {
		user.Language = DefaultLanguage
	}
	return s.userRepo.Create(ctx, user)
}

func (s *userServiceImpl) Get(ctx context.Context, userID int64) (*model.User, error) {
	return s.userRepo.Get(ctx, userID)
}

func (s *userServiceImpl) IsRegistered(ctx context.Context, userID int64) (bool, error) {
	return s.userRepo.Exists(ctx, userID)
}

// Language never fails: unknown users read in the default language.
func (s *userServiceImpl) Language(ctx context.Context, userID int64) string {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil || user == nil {
		return DefaultLanguage
	}
	return user.Language
}

func (s *userServiceImpl) SetLanguage(ctx context.Context, userID int64, language string) error {
	return s.userRepo.UpdateLanguage(ctx, userID, language)
}
