package repository

import (
	"context"
	"errors"
	"telegram-shop-bot/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrUserExists signals the insert-only registration constraint.
var ErrUserExists = errors.New("user already registered")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, userID int64) (*model.User, error)
	Exists(ctx context.Context, userID int64) (bool, error)
	UpdateLanguage(ctx context.Context, userID int64, language string) error
	MarkPromoUsed(ctx context.Context, userID int64) error
	HasUsedPromo(ctx context.Context, userID int64) (bool, error)
	AllIDs(ctx context.Context) ([]int64, error)
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{
		db: db,
	}
}

func (r *userRepoImpl) Create(ctx context.Context, user *model.User) error {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(user)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserExists
	}
	return nil
}

func (r *userRepoImpl) Get(ctx context.Context, userID int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// absent user is a normal result, not a fault
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepoImpl) Exists(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	return count > 0, err
}

func (r *userRepoImpl) UpdateLanguage(ctx context.Context, userID int64, language string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("language", language).Error
}

func (r *userRepoImpl) MarkPromoUsed(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("promo_used", true).Error
}

func (r *userRepoImpl) HasUsedPromo(ctx context.Context, userID int64) (bool, error) {
	user, err := r.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.PromoUsed, nil
}

func (r *userRepoImpl) AllIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
