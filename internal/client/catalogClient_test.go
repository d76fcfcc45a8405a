package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-shop-bot/internal/config"
)

func newTestCatalog(t *testing.T, handler http.HandlerFunc) CatalogClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewCatalogClient(&config.Catalog{BaseURL: srv.URL})
}

func TestCatalogClient_Products(t *testing.T) {
	c := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "10", r.URL.Query().Get("skip"))
		w.Write([]byte(`{"products":[{"id":1,"title":"Phone","price":100,"discountPercentage":10}],"total":1}`))
	})

	products, err := c.Products(context.Background(), 5, 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Phone", products[0].Title)
	assert.InDelta(t, 90.0, products[0].FinalPrice(), 1e-9)
}

func TestCatalogClient_MissingFieldsDefault(t *testing.T) {
	c := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7}`))
	})

	product, err := c.ProductByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Zero(t, product.Price)
	assert.Empty(t, product.Title)
	assert.Zero(t, product.FinalPrice())
	assert.Empty(t, product.Image())
}

func TestCatalogClient_NonSuccessStatus(t *testing.T) {
	c := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Categories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestCatalogClient_MalformedPayload(t *testing.T) {
	c := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": not json`))
	})

	_, err := c.Search(context.Background(), "phone")
	require.Error(t, err)
}

func TestCatalogClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewCatalogClient(&config.Catalog{BaseURL: srv.URL})

	_, err := c.Products(context.Background(), 10, 0)
	require.Error(t, err)
}

func TestCatalogClient_SearchEscapesQuery(t *testing.T) {
	var gotQuery string
	c := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{"products":[]}`))
	})

	_, err := c.Search(context.Background(), "red phone & case")
	require.NoError(t, err)
	assert.Equal(t, "red phone & case", gotQuery)
}

func TestProduct_Image(t *testing.T) {
	p := Product{Thumbnail: "thumb.png", Images: []string{"a.png"}}
	assert.Equal(t, "thumb.png", p.Image())

	p = Product{Images: []string{"a.png"}}
	assert.Equal(t, "a.png", p.Image())
}
