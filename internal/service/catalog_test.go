package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"telegram-shop-bot/internal/client"
)

type failingCatalogClient struct{}

var errCatalogDown = errors.New("connection refused")

func (failingCatalogClient) Categories(context.Context) ([]client.Category, error) {
	return nil, errCatalogDown
}
func (failingCatalogClient) Products(context.Context, int, int) ([]client.Product, error) {
	return nil, errCatalogDown
}
func (failingCatalogClient) ProductsByCategory(context.Context, string, int) ([]client.Product, error) {
	return nil, errCatalogDown
}
func (failingCatalogClient) ProductByID(context.Context, int64) (*client.Product, error) {
	return nil, errCatalogDown
}
func (failingCatalogClient) Search(context.Context, string) ([]client.Product, error) {
	return nil, errCatalogDown
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Catalog unavailability degrades to empty results instead of failing the
// flow.
func TestCatalogService_DegradesToEmpty(t *testing.T) {
	s := NewCatalogService(failingCatalogClient{}, discardLogger())
	ctx := context.Background()

	assert.Empty(t, s.Categories(ctx))
	assert.Empty(t, s.Products(ctx, 10, 0))
	assert.Empty(t, s.ProductsByCategory(ctx, "phones", 10))
	assert.Nil(t, s.ProductByID(ctx, 1))
	assert.Empty(t, s.Search(ctx, "phone"))
}

type staticCatalogClient struct {
	failingCatalogClient
	products []client.Product
}

func (c staticCatalogClient) Search(context.Context, string) ([]client.Product, error) {
	return c.products, nil
}

func TestCatalogService_PassesThroughResults(t *testing.T) {
	s := NewCatalogService(staticCatalogClient{
		products: []client.Product{{ID: 1, Title: "Phone"}},
	}, discardLogger())

	got := s.Search(context.Background(), "phone")
	assert.Len(t, got, 1)
	assert.Equal(t, "Phone", got[0].Title)
}
