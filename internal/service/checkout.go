package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"telegram-shop-bot/internal/config"
	"telegram-shop-bot/internal/model"
	"telegram-shop-bot/internal/repository"

	"gorm.io/gorm"
)

// ErrEmptyCart rejects checkout before any other step runs.
var ErrEmptyCart = errors.New("cart is empty")

type PromoOutcome int

const (
	PromoSkipped PromoOutcome = iota
	PromoApplied
	PromoAlreadyUsed
	PromoInvalid
)

// PromoResult carries the amounts for the rest of the checkout. Already-used
// and invalid codes both leave the discount at zero; only the message shown
// to the user differs.
type PromoResult struct {
	Outcome        PromoOutcome
	Percent        float64
	TotalAmount    float64
	DiscountAmount float64
	FinalAmount    float64
}

type OrderRequest struct {
	UserID         int64
	TotalAmount    float64
	DiscountAmount float64
	FinalAmount    float64
	PaymentMethod  string
	Latitude       *float64
	Longitude      *float64
}

type CheckoutService interface {
	Start(ctx context.Context, userID int64) (float64, error)
	ApplyPromo(ctx context.Context, userID int64, code string, total float64) (PromoResult, error)
	SkipPromo(total float64) PromoResult
	PlaceOrder(ctx context.Context, req OrderRequest) (uint, error)
	Orders(ctx context.Context, userID int64) ([]*model.Order, error)
	OrderCount(ctx context.Context) (int64, error)
}

type checkoutServiceImpl struct {
	db        *gorm.DB
	promoCfg  config.Promo
	userRepo  repository.UserRepository
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
}

func NewCheckoutService(
	db *gorm.DB,
	promoCfg config.Promo,
	userRepo repository.UserRepository,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		db:        db,
		promoCfg:  promoCfg,
		userRepo:  userRepo,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
	}
}

// Start validates the cart and returns its total, the basis for every later
// checkout amount.
func (s *checkoutServiceImpl) Start(ctx context.Context, userID int64) (float64, error) {
	items, err := s.cartRepo.Items(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("read cart: %w", err)
	}
	if len(items) == 0 {
		return 0, ErrEmptyCart
	}

	total, err := s.cartRepo.Total(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("cart total: %w", err)
	}
	return total, nil
}

// ApplyPromo grants the configured discount at most once per user lifetime.
// The promo_used flag is checked first and set immediately on success.
func (s *checkoutServiceImpl) ApplyPromo(ctx context.Context, userID int64, code string, total float64) (PromoResult, error) {
	result := PromoResult{
		Outcome:     PromoInvalid,
		TotalAmount: total,
		FinalAmount: total,
	}

	if !strings.EqualFold(strings.TrimSpace(code), s.promoCfg.Code) {
		return result, nil
	}

	used, err := s.userRepo.HasUsedPromo(ctx, userID)
	if err != nil {
		return result, fmt.Errorf("check promo flag: %w", err)
	}
	if used {
		result.Outcome = PromoAlreadyUsed
		return result, nil
	}

	if err := s.userRepo.MarkPromoUsed(ctx, userID); err != nil {
		return result, fmt.Errorf("mark promo used: %w", err)
	}

	discount := total * (s.promoCfg.Discount / 100)
	result.Outcome = PromoApplied
	result.Percent = s.promoCfg.Discount
	result.DiscountAmount = discount
	result.FinalAmount = total - discount
	return result, nil
}

func (s *checkoutServiceImpl) SkipPromo(total float64) PromoResult {
	return PromoResult{
		Outcome:     PromoSkipped,
		TotalAmount: total,
		FinalAmount: total,
	}
}

// PlaceOrder persists the order and a snapshot of every current cart line in
// one transaction, then clears the cart. A failed transaction leaves the
// cart untouched so the user can retry.
func (s *checkoutServiceImpl) PlaceOrder(ctx context.Context, req OrderRequest) (uint, error) {
	items, err := s.cartRepo.Items(ctx, req.UserID)
	if err != nil {
		return 0, fmt.Errorf("read cart: %w", err)
	}
	if len(items) == 0 {
		return 0, ErrEmptyCart
	}

	order := &model.Order{
		UserID:         req.UserID,
		TotalAmount:    req.TotalAmount,
		DiscountAmount: req.DiscountAmount,
		FinalAmount:    req.FinalAmount,
		PaymentMethod:  req.PaymentMethod,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Status:         "pending",
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		orderItems := make([]*model.OrderItem, len(items))
		for i, item := range items {
			orderItems[i] = &model.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Title:     item.Title,
				Price:     item.Price,
				Quantity:  item.Quantity,
			}
		}
		if err := s.orderRepo.CreateItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// clearing is deliberately outside the transaction: a failure above
	// must leave the cart intact
	if err := s.cartRepo.Clear(ctx, nil, req.UserID); err != nil {
		return order.ID, fmt.Errorf("clear cart after order %d: %w", order.ID, err)
	}

	return order.ID, nil
}

func (s *checkoutServiceImpl) Orders(ctx context.Context, userID int64) ([]*model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *checkoutServiceImpl) OrderCount(ctx context.Context) (int64, error) {
	return s.orderRepo.CountAll(ctx)
}
