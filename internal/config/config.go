package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Bot     Bot     `envPrefix:"BOT_"`
	Catalog Catalog `envPrefix:"CATALOG_"`
	Promo   Promo   `envPrefix:"PROMO_"`

	AdminIDs     []int64 `env:"ADMIN_IDS" envSeparator:","`
	DatabasePath string  `env:"DATABASE_PATH" envDefault:"shop.db"`
	DatabaseURL  string  `env:"DATABASE_URL"`

	AdminAPIToken string `env:"ADMIN_API_TOKEN"`
}

type Bot struct {
	Token string `env:"TOKEN,required"`
	// poll pulls updates via getUpdates; webhook expects Telegram to POST
	// them to the ops server instead.
	Mode   string `env:"MODE" envDefault:"poll"`
	APIURL string `env:"API_URL" envDefault:"https://api.telegram.org"`
}

type Catalog struct {
	BaseURL string `env:"API_URL" envDefault:"https://dummyjson.com"`
}

type Promo struct {
	Code     string  `env:"CODE" envDefault:"HELLO"`
	Discount float64 `env:"DISCOUNT" envDefault:"10"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
