package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"telegram-shop-bot/internal/config"
	"time"
)

// CatalogClient reads product data from the remote catalog API. Every call
// returns an explicit error; the best-effort empty-result policy lives in
// the catalog service, not here.
type CatalogClient interface {
	Categories(ctx context.Context) ([]Category, error)
	Products(ctx context.Context, limit, skip int) ([]Product, error)
	ProductsByCategory(ctx context.Context, slug string, limit int) ([]Product, error)
	ProductByID(ctx context.Context, id int64) (*Product, error)
	Search(ctx context.Context, query string) ([]Product, error)
}

type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type Product struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

// FinalPrice is the unit price after the catalog discount. Cart lines
// snapshot this value at add time.
func (p *Product) FinalPrice() float64 {
	return p.Price * (1 - p.DiscountPercentage/100)
}

// Image returns the best available image reference, empty when the product
// carries none.
func (p *Product) Image() string {
	if p.Thumbnail != "" {
		return p.Thumbnail
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

type productPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

type catalogClientImpl struct {
	httpClient *http.Client
	baseURL    string
}

func NewCatalogClient(catalogCfg *config.Catalog) CatalogClient {
	return &catalogClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: catalogCfg.BaseURL,
	}
}

func (c *catalogClientImpl) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("catalog api status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}
	return nil
}

func (c *catalogClientImpl) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *catalogClientImpl) Products(ctx context.Context, limit, skip int) ([]Product, error) {
	var page productPage
	path := fmt.Sprintf("/products?limit=%d&skip=%d", limit, skip)
	if err := c.getJSON(ctx, path, &page); err != nil {
		return nil, err
	}
	return page.Products, nil
}

func (c *catalogClientImpl) ProductsByCategory(ctx context.Context, slug string, limit int) ([]Product, error) {
	var page productPage
	path := "/products/category/" + url.PathEscape(slug) + "?limit=" + strconv.Itoa(limit)
	if err := c.getJSON(ctx, path, &page); err != nil {
		return nil, err
	}
	return page.Products, nil
}

func (c *catalogClientImpl) ProductByID(ctx context.Context, id int64) (*Product, error) {
	var product Product
	if err := c.getJSON(ctx, "/products/"+strconv.FormatInt(id, 10), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *catalogClientImpl) Search(ctx context.Context, query string) ([]Product, error) {
	var page productPage
	if err := c.getJSON(ctx, "/products/search?q="+url.QueryEscape(query), &page); err != nil {
		return nil, err
	}
	return page.Products, nil
}
