package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"telegram-shop-bot/internal/config"
	"telegram-shop-bot/internal/model"
	"telegram-shop-bot/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.CartItem{}, &model.Order{}, &model.OrderItem{}))
	return db
}

func testPromo() config.Promo {
	return config.Promo{Code: "HELLO", Discount: 10}
}

func newTestCheckout(t *testing.T) (CheckoutService, *gorm.DB, repository.CartRepository, repository.UserRepository) {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	svc := NewCheckoutService(db, testPromo(), userRepo, cartRepo, orderRepo)
	return svc, db, cartRepo, userRepo
}

func seedUser(t *testing.T, userRepo repository.UserRepository, userID int64) {
	t.Helper()
	require.NoError(t, userRepo.Create(context.Background(), &model.User{
		UserID:    userID,
		FirstName: "Test",
		LastName:  "User",
		Email:     "test@example.com",
		Phone:     "+100000000",
	}))
}

func seedCart(t *testing.T, cartRepo repository.CartRepository, userID int64, prices ...float64) {
	t.Helper()
	for i, price := range prices {
		require.NoError(t, cartRepo.Add(context.Background(), &model.CartItem{
			UserID:    userID,
			ProductID: int64(i + 1),
			Title:     fmt.Sprintf("Product %d", i+1),
			Price:     price,
			Quantity:  1,
		}))
	}
}

func TestCheckout_StartRejectsEmptyCart(t *testing.T) {
	svc, _, _, userRepo := newTestCheckout(t)
	seedUser(t, userRepo, 1)

	_, err := svc.Start(context.Background(), 1)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_StartReturnsCartTotal(t *testing.T) {
	svc, _, cartRepo, userRepo := newTestCheckout(t)
	seedUser(t, userRepo, 1)
	seedCart(t, cartRepo, 1, 10, 20, 30)

	total, err := svc.Start(context.Background(), 1)
	require.NoError(t, err)
	assert.InDelta(t, 60.0, total, 1e-9)
}

func TestCheckout_PromoAppliedOncePerLifetime(t *testing.T) {
	svc, _, _, userRepo := newTestCheckout(t)
	seedUser(t, userRepo, 1)
	ctx := context.Background()

	first, err := svc.ApplyPromo(ctx, 1, "HELLO", 60)
	require.NoError(t, err)
	assert.Equal(t, PromoApplied, first.Outcome)
	assert.InDelta(t, 6.0, first.DiscountAmount, 1e-9)
	assert.InDelta(t, 54.0, first.FinalAmount, 1e-9)

	// the second attempt finds the flag set and grants nothing
	second, err := svc.ApplyPromo(ctx, 1, "HELLO", 60)
	require.NoError(t, err)
	assert.Equal(t, PromoAlreadyUsed, second.Outcome)
	assert.Zero(t, second.DiscountAmount)
	assert.InDelta(t, 60.0, second.FinalAmount, 1e-9)

	used, err := userRepo.HasUsedPromo(ctx, 1)
	require.NoError(t, err)
	assert.True(t, used, "flag stays set")
}

func TestCheckout_PromoCaseInsensitive(t *testing.T) {
	svc, _, _, userRepo := newTestCheckout(t)
	seedUser(t, userRepo, 1)

	result, err := svc.ApplyPromo(context.Background(), 1, "  hello ", 100)
	require.NoError(t, err)
	assert.Equal(t, PromoApplied, result.Outcome)
}

func TestCheckout_UnrecognizedPromo(t *testing.T) {
	svc, _, _, userRepo := newTestCheckout(t)
	seedUser(t, userRepo, 1)

	result, err := svc.ApplyPromo(context.Background(), 1, "NOPE", 60)
	require.NoError(t, err)
	assert.Equal(t, PromoInvalid, result.Outcome)
	assert.Zero(t, result.DiscountAmount)
	assert.InDelta(t, 60.0, result.FinalAmount, 1e-9)

	// an invalid code must not burn the one-time flag
	used, err := userRepo.HasUsedPromo(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, used)
}

func TestCheckout_SkipPromo(t *testing.T) {
	svc, _, _, _ := newTestCheckout(t)

	result := svc.SkipPromo(60)
	assert.Equal(t, PromoSkipped, result.Outcome)
	assert.Zero(t, result.DiscountAmount)
	assert.InDelta(t, 60.0, result.FinalAmount, 1e-9)
}

func TestCheckout_PlaceOrderSnapshotsAndClearsCart(t *testing.T) {
	svc, db, cartRepo, userRepo := newTestCheckout(t)
	seedUser(t, userRepo, 1)
	seedCart(t, cartRepo, 1, 10, 20, 30)
	ctx := context.Background()

	lat, lon := 41.3, 69.2
	orderID, err := svc.PlaceOrder(ctx, OrderRequest{
		UserID:         1,
		TotalAmount:    60,
		DiscountAmount: 6,
		FinalAmount:    54,
		PaymentMethod:  "cash",
		Latitude:       &lat,
		Longitude:      &lon,
	})
	require.NoError(t, err)
	require.NotZero(t, orderID)

	var order model.Order
	require.NoError(t, db.First(&order, orderID).Error)
	assert.Equal(t, "pending", order.Status)
	assert.InDelta(t, 54.0, order.FinalAmount, 1e-9)

	var items []model.OrderItem
	require.NoError(t, db.Where("order_id = ?", orderID).Find(&items).Error)
	assert.Len(t, items, 3)

	cart, err := cartRepo.Items(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart, "cart is cleared after a successful order")
}

func TestCheckout_PlaceOrderRejectsEmptyCart(t *testing.T) {
	svc, _, _, userRepo := newTestCheckout(t)
	seedUser(t, userRepo, 1)

	_, err := svc.PlaceOrder(context.Background(), OrderRequest{UserID: 1, PaymentMethod: "cash"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

type failingOrderRepo struct {
	repository.OrderRepository
}

var errStorage = errors.New("disk full")

func (failingOrderRepo) CreateItems(context.Context, *gorm.DB, []*model.OrderItem) error {
	return errStorage
}

func TestCheckout_PlaceOrderFailureLeavesCartIntact(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := failingOrderRepo{repository.NewOrderRepository(db)}
	svc := NewCheckoutService(db, testPromo(), userRepo, cartRepo, orderRepo)

	seedUser(t, userRepo, 1)
	seedCart(t, cartRepo, 1, 10, 20)
	ctx := context.Background()

	_, err := svc.PlaceOrder(ctx, OrderRequest{
		UserID:        1,
		TotalAmount:   30,
		FinalAmount:   30,
		PaymentMethod: "card",
	})
	require.ErrorIs(t, err, errStorage)

	// the transaction rolled back: no half-written order, cart untouched
	var orderCount int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)

	cart, err := cartRepo.Items(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, cart, 2)
}
