// Package i18n holds the user-facing strings for the three display
// languages. Placeholders use {name} tokens filled by Tf.
package i18n

import "strings"

// Languages maps language codes to the labels shown on the picker keyboard.
var Languages = map[string]string{
	"uz": "🇺🇿 O'zbekcha",
	"ru": "🇷🇺 Русский",
	"en": "🇬🇧 English",
}

// LanguageByLabel resolves a picker button press back to a language code.
func LanguageByLabel(label string) (string, bool) {
	for code, name := range Languages {
		if name == label {
			return code, true
		}
	}
	return "", false
}

// T returns the translation for key in lang, falling back to English, then
// to the key itself.
func T(lang, key string) string {
	entry, ok := translations[key]
	if !ok {
		return key
	}
	if text, ok := entry[lang]; ok {
		return text
	}
	if text, ok := entry["en"]; ok {
		return text
	}
	return key
}

// Tf is T with {placeholder} substitution from name/value pairs.
func Tf(lang, key string, kv ...string) string {
	text := T(lang, key)
	pairs := make([]string, 0, len(kv))
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, "{"+kv[i]+"}", kv[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

var translations = map[string]map[string]string{
	"select_language": {
		"uz": "🌐 Tilni tanlang:",
		"ru": "🌐 Выберите язык:",
		"en": "🌐 Select language:",
	},
	"language_changed": {
		"uz": "✅ Til o'zgartirildi!",
		"ru": "✅ Язык изменён!",
		"en": "✅ Language changed!",
	},
	"welcome_register": {
		"uz": "👋 Xush kelibsiz! Do'konimizdan foydalanish uchun ro'yxatdan o'ting.",
		"ru": "👋 Добро пожаловать! Пройдите регистрацию для использования магазина.",
		"en": "👋 Welcome! Please register to use our shop.",
	},
	"enter_first_name": {
		"uz": "📝 Ismingizni kiriting:",
		"ru": "📝 Введите ваше имя:",
		"en": "📝 Enter your first name:",
	},
	"enter_last_name": {
		"uz": "📝 Familiyangizni kiriting:",
		"ru": "📝 Введите вашу фамилию:",
		"en": "📝 Enter your last name:",
	},
	"enter_email": {
		"uz": "📧 Emailingizni kiriting:",
		"ru": "📧 Введите ваш email:",
		"en": "📧 Enter your email:",
	},
	"share_contact": {
		"uz": "📱 Telefon raqamingizni yuboring:",
		"ru": "📱 Отправьте ваш номер телефона:",
		"en": "📱 Share your phone number:",
	},
	"share_contact_btn": {
		"uz": "📱 Raqamni yuborish",
		"ru": "📱 Отправить номер",
		"en": "📱 Share contact",
	},
	"registration_complete": {
		"uz": "✅ Ro'yxatdan o'tdingiz! Endi do'kondan foydalanishingiz mumkin.",
		"ru": "✅ Регистрация завершена! Теперь вы можете пользоваться магазином.",
		"en": "✅ Registration complete! You can now use the shop.",
	},
	"registration_failed": {
		"uz": "❌ Ro'yxatdan o'tib bo'lmadi. /start bilan qayta urining.",
		"ru": "❌ Регистрация не удалась. Попробуйте снова через /start.",
		"en": "❌ Registration failed. Please try again with /start.",
	},
	"invalid_email": {
		"uz": "❌ Noto'g'ri email format. Qaytadan kiriting:",
		"ru": "❌ Неверный формат email. Введите снова:",
		"en": "❌ Invalid email format. Please try again:",
	},
	"main_menu": {
		"uz": "🏠 Asosiy menyu",
		"ru": "🏠 Главное меню",
		"en": "🏠 Main menu",
	},
	"catalog": {
		"uz": "🛍 Katalog",
		"ru": "🛍 Каталог",
		"en": "🛍 Catalog",
	},
	"cart": {
		"uz": "🛒 Savatcha",
		"ru": "🛒 Корзина",
		"en": "🛒 Cart",
	},
	"my_orders": {
		"uz": "📦 Mening buyurtmalarim",
		"ru": "📦 Мои заказы",
		"en": "📦 My orders",
	},
	"no_orders": {
		"uz": "Sizda hali buyurtmalar yo'q.",
		"ru": "У вас пока нет заказов.",
		"en": "You have no orders yet.",
	},
	"settings": {
		"uz": "⚙️ Sozlamalar",
		"ru": "⚙️ Настройки",
		"en": "⚙️ Settings",
	},
	"search": {
		"uz": "🔍 Qidirish",
		"ru": "🔍 Поиск",
		"en": "🔍 Search",
	},
	"categories": {
		"uz": "📂 Kategoriyalar",
		"ru": "📂 Категории",
		"en": "📂 Categories",
	},
	"all_products": {
		"uz": "🛍 Barcha mahsulotlar",
		"ru": "🛍 Все товары",
		"en": "🛍 All products",
	},
	"loading": {
		"uz": "⏳ Yuklanmoqda...",
		"ru": "⏳ Загрузка...",
		"en": "⏳ Loading...",
	},
	"description": {
		"uz": "📝 Tavsif",
		"ru": "📝 Описание",
		"en": "📝 Description",
	},
	"price": {
		"uz": "💰 Narx",
		"ru": "💰 Цена",
		"en": "💰 Price",
	},
	"discount": {
		"uz": "🎁 Chegirma",
		"ru": "🎁 Скидка",
		"en": "🎁 Discount",
	},
	"final_price": {
		"uz": "✨ Yakuniy narx",
		"ru": "✨ Итоговая цена",
		"en": "✨ Final price",
	},
	"rating": {
		"uz": "⭐ Reyting",
		"ru": "⭐ Рейтинг",
		"en": "⭐ Rating",
	},
	"add_to_cart": {
		"uz": "➕ Savatga qo'shish",
		"ru": "➕ Добавить в корзину",
		"en": "➕ Add to cart",
	},
	"back": {
		"uz": "◀️ Orqaga",
		"ru": "◀️ Назад",
		"en": "◀️ Back",
	},
	"next": {
		"uz": "▶️ Keyingisi",
		"ru": "▶️ Следующий",
		"en": "▶️ Next",
	},
	"previous": {
		"uz": "◀️ Oldingi",
		"ru": "◀️ Предыдущий",
		"en": "◀️ Previous",
	},
	"cart_empty": {
		"uz": "🛒 Savatingiz bo'sh",
		"ru": "🛒 Ваша корзина пуста",
		"en": "🛒 Your cart is empty",
	},
	"your_cart": {
		"uz": "🛒 Sizning savatingiz",
		"ru": "🛒 Ваша корзина",
		"en": "🛒 Your cart",
	},
	"total": {
		"uz": "💵 Jami",
		"ru": "💵 Итого",
		"en": "💵 Total",
	},
	"quantity": {
		"uz": "Soni",
		"ru": "Количество",
		"en": "Quantity",
	},
	"clear_cart": {
		"uz": "🗑 Savatni tozalash",
		"ru": "🗑 Очистить корзину",
		"en": "🗑 Clear cart",
	},
	"checkout": {
		"uz": "✅ Buyurtma berish",
		"ru": "✅ Оформить заказ",
		"en": "✅ Checkout",
	},
	"added_to_cart": {
		"uz": "✅ Savatga qo'shildi!",
		"ru": "✅ Добавлено в корзину!",
		"en": "✅ Added to cart!",
	},
	"removed_from_cart": {
		"uz": "✅ Savatdan o'chirildi",
		"ru": "✅ Удалено из корзины",
		"en": "✅ Removed from cart",
	},
	"product_not_found": {
		"uz": "❌ Mahsulot topilmadi",
		"ru": "❌ Товар не найден",
		"en": "❌ Product not found",
	},
	"enter_promo": {
		"uz": "🎁 Promo kodni kiriting (yoki o'tkazib yuborish uchun \"Yo'q\" bosing):",
		"ru": "🎁 Введите промокод (или нажмите \"Нет\" чтобы пропустить):",
		"en": "🎁 Enter promo code (or press \"Skip\" to continue):",
	},
	"skip": {
		"uz": "Yo'q",
		"ru": "Нет",
		"en": "Skip",
	},
	"promo_applied": {
		"uz": "✅ Promo kod qo'llandi! {percent}% chegirma",
		"ru": "✅ Промокод применён! Скидка {percent}%",
		"en": "✅ Promo code applied! {percent}% discount",
	},
	"promo_invalid": {
		"uz": "❌ Noto'g'ri promo kod",
		"ru": "❌ Неверный промокод",
		"en": "❌ Invalid promo code",
	},
	"promo_used": {
		"uz": "❌ Siz bu promo kodni allaqachon ishlatgansiz",
		"ru": "❌ Вы уже использовали этот промокод",
		"en": "❌ You have already used this promo code",
	},
	"send_location": {
		"uz": "📍 Yetkazib berish manzilini yuboring:",
		"ru": "📍 Отправьте адрес доставки:",
		"en": "📍 Send delivery location:",
	},
	"send_location_btn": {
		"uz": "📍 Manzilni yuborish",
		"ru": "📍 Отправить локацию",
		"en": "📍 Send location",
	},
	"select_payment": {
		"uz": "💳 To'lov turini tanlang:",
		"ru": "💳 Выберите способ оплаты:",
		"en": "💳 Select payment method:",
	},
	"cash": {
		"uz": "💵 Naqd pul",
		"ru": "💵 Наличные",
		"en": "💵 Cash",
	},
	"card": {
		"uz": "💳 Karta",
		"ru": "💳 Карта",
		"en": "💳 Credit Card",
	},
	"order_success": {
		"uz": "✅ Buyurtma qabul qilindi! Tez orada siz bilan bog'lanamiz.",
		"ru": "✅ Заказ принят! Мы свяжемся с вами в ближайшее время.",
		"en": "✅ Order placed successfully! We will contact you soon.",
	},
	"order_failed": {
		"uz": "❌ Buyurtma amalga oshmadi. Qaytadan urining.",
		"ru": "❌ Не удалось оформить заказ. Попробуйте снова.",
		"en": "❌ Order failed. Please try again.",
	},
	"order_number": {
		"uz": "📋 Buyurtma raqami",
		"ru": "📋 Номер заказа",
		"en": "📋 Order number",
	},
	"enter_search": {
		"uz": "🔍 Qidirmoqchi bo'lgan mahsulot nomini kiriting:",
		"ru": "🔍 Введите название товара для поиска:",
		"en": "🔍 Enter product name to search:",
	},
	"search_results": {
		"uz": "🔍 Qidiruv natijalari",
		"ru": "🔍 Результаты поиска",
		"en": "🔍 Search results",
	},
	"no_results": {
		"uz": "❌ Hech narsa topilmadi",
		"ru": "❌ Ничего не найдено",
		"en": "❌ No results found",
	},
	"admin_panel": {
		"uz": "👨‍💼 Admin panel",
		"ru": "👨‍💼 Админ панель",
		"en": "👨‍💼 Admin panel",
	},
	"access_denied": {
		"uz": "❌ Ruxsat yo'q",
		"ru": "❌ Доступ запрещён",
		"en": "❌ Access denied",
	},
	"total_orders": {
		"uz": "📊 Jami buyurtmalar",
		"ru": "📊 Всего заказов",
		"en": "📊 Total orders",
	},
	"broadcast": {
		"uz": "📢 Xabar yuborish",
		"ru": "📢 Рассылка",
		"en": "📢 Broadcast",
	},
	"enter_broadcast": {
		"uz": "📝 Barcha foydalanuvchilarga yuborilishi kerak bo'lgan xabarni kiriting:",
		"ru": "📝 Введите сообщение для рассылки всем пользователям:",
		"en": "📝 Enter message to broadcast to all users:",
	},
	"broadcast_success": {
		"uz": "✅ Xabar {count} foydalanuvchiga yuborildi",
		"ru": "✅ Сообщение отправлено {count} пользователям",
		"en": "✅ Message sent to {count} users",
	},
	"broadcast_report": {
		"uz": "📢 Qabul qiluvchilar: {recipients}\n✅ Yuborildi: {sent}\n🚫 Bloklangan: {blocked}\n❌ Xato: {failed}",
		"ru": "📢 Получателей: {recipients}\n✅ Отправлено: {sent}\n🚫 Заблокировали: {blocked}\n❌ Ошибок: {failed}",
		"en": "📢 Recipients: {recipients}\n✅ Sent: {sent}\n🚫 Blocked: {blocked}\n❌ Errors: {failed}",
	},
}
