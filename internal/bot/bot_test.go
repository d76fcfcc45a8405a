package bot

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/model"
)

func TestMatchesKey(t *testing.T) {
	assert.True(t, matchesKey("🛍 Katalog", "catalog"))
	assert.True(t, matchesKey("🛍 Каталог", "catalog"))
	assert.True(t, matchesKey("🛍 Catalog", "catalog"))
	assert.False(t, matchesKey("catalog", "catalog"), "raw key is not a button label")
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 3, parsePage("page_3", "page_"))
	assert.Equal(t, 0, parsePage("search_page_0", "search_page_"))
	assert.Equal(t, -1, parsePage("page_x", "page_"), "garbage maps to an out-of-range page")
}

func TestParseID(t *testing.T) {
	assert.EqualValues(t, 42, parseID("add_to_cart_42", "add_to_cart_"))
	assert.EqualValues(t, 0, parseID("add_to_cart_", "add_to_cart_"))
}

func TestEmailRegex(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.org"}
	invalid := []string{"", "plainaddress", "a@b", "a b@c.de", "@example.com"}

	for _, email := range valid {
		assert.True(t, emailRegex.MatchString(email), email)
	}
	for _, email := range invalid {
		assert.False(t, emailRegex.MatchString(email), email)
	}
}

func TestProductText(t *testing.T) {
	p := &client.Product{
		Title:              "Phone",
		Description:        "A phone",
		Price:              100,
		DiscountPercentage: 10,
		Rating:             4.5,
	}

	text := productText(p, "en")
	assert.Contains(t, text, "<b>Phone</b>")
	assert.Contains(t, text, "$90.00", "final price reflects the discount")
	assert.Contains(t, text, "⭐⭐⭐⭐")
}

func TestCartText_Total(t *testing.T) {
	items := []*model.CartItem{
		{Title: "A", Price: 10, Quantity: 2},
		{Title: "B", Price: 5.5, Quantity: 1},
	}

	text := cartText(items, "en")
	assert.Contains(t, text, "$25.50")
	assert.Contains(t, text, "x 2")
}

func TestOrdersText_CapsAtTen(t *testing.T) {
	orders := make([]*model.Order, 15)
	for i := range orders {
		orders[i] = &model.Order{ID: uint(i + 1), Status: "pending", PaymentMethod: "cash"}
	}

	text := ordersText(orders, "en")
	assert.Contains(t, text, "#10")
	assert.NotContains(t, text, "#11")
}

func TestProductKeyboard_Pagination(t *testing.T) {
	kb := productKeyboard(1, "en", "page_", 1, 3)

	var callbacks []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			callbacks = append(callbacks, btn.CallbackData)
		}
	}
	assert.Contains(t, callbacks, "page_0")
	assert.Contains(t, callbacks, "page_2")
	assert.Contains(t, callbacks, "add_to_cart_1")

	// first page has no previous button
	kb = productKeyboard(1, "en", "page_", 0, 3)
	callbacks = callbacks[:0]
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			callbacks = append(callbacks, btn.CallbackData)
		}
	}
	assert.NotContains(t, callbacks, fmt.Sprintf("page_%d", -1))
	assert.Contains(t, callbacks, "page_1")
}
