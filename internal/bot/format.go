package bot

import (
	"fmt"
	"strings"
	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/i18n"
	"telegram-shop-bot/internal/model"
)

func productText(p *client.Product, lang string) string {
	title := p.Title
	if title == "" {
		title = "N/A"
	}
	description := p.Description
	if description == "" {
		description = "No description"
	}

	stars := strings.Repeat("⭐", int(p.Rating))

	var sb strings.Builder
	fmt.Fprintf(&sb, "🛍 <b>%s</b>\n\n", title)
	fmt.Fprintf(&sb, "%s: %s\n\n", i18n.T(lang, "description"), description)
	fmt.Fprintf(&sb, "%s: $%g\n", i18n.T(lang, "price"), p.Price)
	fmt.Fprintf(&sb, "%s: %g%%\n", i18n.T(lang, "discount"), p.DiscountPercentage)
	fmt.Fprintf(&sb, "%s: <b>$%.2f</b>\n\n", i18n.T(lang, "final_price"), p.FinalPrice())
	fmt.Fprintf(&sb, "%s: %s (%g/5)\n", i18n.T(lang, "rating"), stars, p.Rating)
	return sb.String()
}

func cartText(items []*model.CartItem, lang string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🛒 <b>%s</b>\n\n", i18n.T(lang, "your_cart"))

	total := 0.0
	for _, item := range items {
		lineTotal := item.Price * float64(item.Quantity)
		total += lineTotal
		fmt.Fprintf(&sb, "• <b>%s</b>\n", item.Title)
		fmt.Fprintf(&sb, "  %s: %d\n", i18n.T(lang, "quantity"), item.Quantity)
		fmt.Fprintf(&sb, "  %s: $%.2f x %d = $%.2f\n\n", i18n.T(lang, "price"), item.Price, item.Quantity, lineTotal)
	}

	fmt.Fprintf(&sb, "\n<b>%s: $%.2f</b>", i18n.T(lang, "total"), total)
	return sb.String()
}

func ordersText(orders []*model.Order, lang string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📦 <b>%s</b>\n\n", i18n.T(lang, "my_orders"))

	shown := orders
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, order := range shown {
		statusEmoji := "⏳"
		if order.Status == "completed" {
			statusEmoji = "✅"
		}
		fmt.Fprintf(&sb, "%s <b>#%d</b>\n", statusEmoji, order.ID)
		fmt.Fprintf(&sb, "💰 $%.2f\n", order.FinalAmount)
		fmt.Fprintf(&sb, "💳 %s\n", order.PaymentMethod)
		fmt.Fprintf(&sb, "📅 %s\n\n", order.CreatedAt.Format("2006-01-02"))
	}
	return sb.String()
}
