package repository

import (
	"context"
	"telegram-shop-bot/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	Add(ctx context.Context, item *model.CartItem) error
	Items(ctx context.Context, userID int64) ([]*model.CartItem, error)
	Remove(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, tx *gorm.DB, userID int64) error
	Total(ctx context.Context, userID int64) (float64, error)
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

// Add inserts the line or, when the (user, product) pair is already there,
// bumps its quantity by one. The increment is a single row-atomic statement
// so rapid double-taps cannot corrupt the row.
func (r *cartRepoImpl) Add(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart.quantity + 1"),
		}),
	}).Create(item).Error
}

func (r *cartRepoImpl) Items(ctx context.Context, userID int64) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// Remove deletes the matching line; removing an absent line is a no-op.
func (r *cartRepoImpl) Remove(ctx context.Context, userID, productID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItem{}).Error
}

// Clear runs on tx when given so checkout can pair it with order creation;
// nil tx falls back to the base connection.
func (r *cartRepoImpl) Clear(ctx context.Context, tx *gorm.DB, userID int64) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}

func (r *cartRepoImpl) Total(ctx context.Context, userID int64) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Select("SUM(price * quantity)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		// empty cart sums to 0, never null
		return 0, nil
	}

	return *total, nil
}
