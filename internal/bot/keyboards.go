package bot

import (
	"fmt"
	"telegram-shop-bot/internal/client"
	"telegram-shop-bot/internal/i18n"
	"telegram-shop-bot/internal/model"
)

func languageKeyboard() *client.ReplyKeyboardMarkup {
	rows := make([][]client.KeyboardButton, 0, len(i18n.Languages))
	for _, code := range []string{"uz", "ru", "en"} {
		rows = append(rows, []client.KeyboardButton{{Text: i18n.Languages[code]}})
	}
	return &client.ReplyKeyboardMarkup{Keyboard: rows, ResizeKeyboard: true}
}

func mainMenuKeyboard(lang string, isAdmin bool) *client.ReplyKeyboardMarkup {
	rows := [][]client.KeyboardButton{
		{{Text: i18n.T(lang, "catalog")}, {Text: i18n.T(lang, "cart")}},
		{{Text: i18n.T(lang, "search")}, {Text: i18n.T(lang, "my_orders")}},
		{{Text: i18n.T(lang, "settings")}},
	}
	if isAdmin {
		rows = append(rows, []client.KeyboardButton{{Text: i18n.T(lang, "admin_panel")}})
	}
	return &client.ReplyKeyboardMarkup{Keyboard: rows, ResizeKeyboard: true}
}

func contactKeyboard(lang string) *client.ReplyKeyboardMarkup {
	return &client.ReplyKeyboardMarkup{
		Keyboard: [][]client.KeyboardButton{
			{{Text: i18n.T(lang, "share_contact_btn"), RequestContact: true}},
		},
		ResizeKeyboard: true,
	}
}

func locationKeyboard(lang string) *client.ReplyKeyboardMarkup {
	return &client.ReplyKeyboardMarkup{
		Keyboard: [][]client.KeyboardButton{
			{{Text: i18n.T(lang, "send_location_btn"), RequestLocation: true}},
			{{Text: i18n.T(lang, "back")}},
		},
		ResizeKeyboard: true,
	}
}

func paymentKeyboard(lang string) *client.ReplyKeyboardMarkup {
	return &client.ReplyKeyboardMarkup{
		Keyboard: [][]client.KeyboardButton{
			{{Text: i18n.T(lang, "cash")}, {Text: i18n.T(lang, "card")}},
			{{Text: i18n.T(lang, "back")}},
		},
		ResizeKeyboard: true,
	}
}

func promoKeyboard(lang string) *client.ReplyKeyboardMarkup {
	return &client.ReplyKeyboardMarkup{
		Keyboard: [][]client.KeyboardButton{
			{{Text: i18n.T(lang, "skip")}},
		},
		ResizeKeyboard: true,
	}
}

func categoriesKeyboard(categories []client.Category, lang string) *client.InlineKeyboardMarkup {
	rows := [][]client.InlineKeyboardButton{
		{{Text: i18n.T(lang, "all_products"), CallbackData: "category_all"}},
	}

	row := []client.InlineKeyboardButton{}
	for _, category := range categories {
		if category.Slug == "" {
			continue
		}
		row = append(row, client.InlineKeyboardButton{
			Text:         "📂 " + category.Name,
			CallbackData: "category_" + category.Slug,
		})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, []client.InlineKeyboardButton{
		{Text: i18n.T(lang, "back"), CallbackData: "back_to_menu"},
	})
	return &client.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// productKeyboard builds the product-card keyboard. pagePrefix selects
// between browse ("page_") and search ("search_page_") cursors.
func productKeyboard(productID int64, lang, pagePrefix string, page, total int) *client.InlineKeyboardMarkup {
	rows := [][]client.InlineKeyboardButton{
		{{Text: i18n.T(lang, "add_to_cart"), CallbackData: fmt.Sprintf("add_to_cart_%d", productID)}},
	}

	if total > 1 {
		nav := []client.InlineKeyboardButton{}
		if page > 0 {
			nav = append(nav, client.InlineKeyboardButton{
				Text:         i18n.T(lang, "previous"),
				CallbackData: fmt.Sprintf("%s%d", pagePrefix, page-1),
			})
		}
		nav = append(nav, client.InlineKeyboardButton{
			Text:         fmt.Sprintf("%d/%d", page+1, total),
			CallbackData: "current_page",
		})
		if page < total-1 {
			nav = append(nav, client.InlineKeyboardButton{
				Text:         i18n.T(lang, "next"),
				CallbackData: fmt.Sprintf("%s%d", pagePrefix, page+1),
			})
		}
		rows = append(rows, nav)
	}

	rows = append(rows, []client.InlineKeyboardButton{
		{Text: i18n.T(lang, "back"), CallbackData: "back_to_categories"},
	})
	return &client.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func cartKeyboard(items []*model.CartItem, lang string) *client.InlineKeyboardMarkup {
	rows := [][]client.InlineKeyboardButton{}

	for _, item := range items {
		rows = append(rows, []client.InlineKeyboardButton{{
			Text:         fmt.Sprintf("🗑 %s (x%d)", item.Title, item.Quantity),
			CallbackData: fmt.Sprintf("remove_from_cart_%d", item.ProductID),
		}})
	}
	if len(items) > 0 {
		rows = append(rows,
			[]client.InlineKeyboardButton{{Text: i18n.T(lang, "clear_cart"), CallbackData: "clear_cart"}},
			[]client.InlineKeyboardButton{{Text: i18n.T(lang, "checkout"), CallbackData: "checkout"}},
		)
	}

	rows = append(rows, []client.InlineKeyboardButton{
		{Text: i18n.T(lang, "back"), CallbackData: "back_to_menu"},
	})
	return &client.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func adminKeyboard(lang string) *client.InlineKeyboardMarkup {
	return &client.InlineKeyboardMarkup{
		InlineKeyboard: [][]client.InlineKeyboardButton{
			{{Text: i18n.T(lang, "total_orders"), CallbackData: "admin_orders"}},
			{{Text: i18n.T(lang, "broadcast"), CallbackData: "admin_broadcast"}},
			{{Text: i18n.T(lang, "back"), CallbackData: "back_to_menu"}},
		},
	}
}
