package service

import (
	"context"
	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/model"
	"telegram-shop-bot/internal/repository"
)

type CartService interface {
	AddProduct(ctx context.Context, userID int64, product *client.Product) error
	Items(ctx context.Context, userID int64) ([]*model.CartItem, error)
	Remove(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, userID int64) error
	Total(ctx context.Context, userID int64) (float64, error)
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
	}
}

// AddProduct snapshots the discounted unit price into the cart line.
// Catalog price changes after this point do not touch the line.
func (s *cartServiceImpl) AddProduct(ctx context.Context, userID int64, product *client.Product) error {
	return s.cartRepo.Add(ctx, &model.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.FinalPrice(),
		Quantity:  1,
		Image:     product.Image(),
	})
}

func (s *cartServiceImpl) Items(ctx context.Context, userID int64) ([]*model.CartItem, error) {
	return s.cartRepo.Items(ctx, userID)
}

func (s *cartServiceImpl) Remove(ctx context.Context, userID, productID int64) error {
	return s.cartRepo.Remove(ctx, userID, productID)
}

func (s *cartServiceImpl) Clear(ctx context.Context, userID int64) error {
	return s.cartRepo.Clear(ctx, nil, userID)
}

func (s *cartServiceImpl) Total(ctx context.Context, userID int64) (float64, error) {
	return s.cartRepo.Total(ctx, userID)
}
