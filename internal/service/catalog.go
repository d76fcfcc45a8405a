package service

import (
	"context"
	"log/slog"
	"telegram-shop-bot/internal/client"
)

// CatalogService applies the best-effort policy over the catalog client:
// any fault degrades to an empty result so the flow shows "no results"
// instead of failing. The client underneath still reports real errors for
// callers that want them.
type CatalogService interface {
	Categories(ctx context.Context) []client.Category
	Products(ctx context.Context, limit, skip int) []client.Product
	ProductsByCategory(ctx context.Context, slug string, limit int) []client.Product
	ProductByID(ctx context.Context, id int64) *client.Product
	Search(ctx context.Context, query string) []client.Product
}

type catalogServiceImpl struct {
	catalogClient client.CatalogClient
	logger        *slog.Logger
}

func NewCatalogService(catalogClient client.CatalogClient, logger *slog.Logger) CatalogService {
	return &catalogServiceImpl{
		catalogClient: catalogClient,
		logger:        logger,
	}
}

func (s *catalogServiceImpl) Categories(ctx context.Context) []client.Category {
	categories, err := s.catalogClient.Categories(ctx)
	if err != nil {
		s.logger.Warn("catalog categories unavailable", "error", err)
		return nil
	}
	return categories
}

func (s *catalogServiceImpl) Products(ctx context.Context, limit, skip int) []client.Product {
	products, err := s.catalogClient.Products(ctx, limit, skip)
	if err != nil {
		s.logger.Warn("catalog products unavailable", "error", err)
		return nil
	}
	return products
}

func (s *catalogServiceImpl) ProductsByCategory(ctx context.Context, slug string, limit int) []client.Product {
	products, err := s.catalogClient.ProductsByCategory(ctx, slug, limit)
	if err != nil {
		s.logger.Warn("catalog category unavailable", "category", slug, "error", err)
		return nil
	}
	return products
}

func (s *catalogServiceImpl) ProductByID(ctx context.Context, id int64) *client.Product {
	product, err := s.catalogClient.ProductByID(ctx, id)
	if err != nil {
		s.logger.Warn("catalog product unavailable", "product_id", id, "error", err)
		return nil
	}
	return product
}

func (s *catalogServiceImpl) Search(ctx context.Context, query string) []client.Product {
	products, err := s.catalogClient.Search(ctx, query)
	if err != nil {
		s.logger.Warn("catalog search unavailable", "query", query, "error", err)
		return nil
	}
	return products
}
