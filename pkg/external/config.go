package external

import "time"

// Config holds provider endpoints and client settings loaded from the environment.
type Config struct {
	WeatherURL    string        `env:"EXTERNAL_WEATHER_URL" envDefault:"https://api.open-meteo.com"`
	QuoteURL      string        `env:"EXTERNAL_QUOTE_URL" envDefault:"https://api.quotable.io"`
	ArtURL        string        `env:"EXTERNAL_ART_URL" envDefault:"https://api.artic.edu"`
	MealURL       string        `env:"EXTERNAL_MEAL_URL" envDefault:"https://www.themealdb.com"`
	CryptoURL     string        `env:"EXTERNAL_CRYPTO_URL" envDefault:"https://api.coingecko.com"`
	Timeout       time.Duration `env:"EXTERNAL_TIMEOUT" envDefault:"5s"`
	CacheCapacity int           `env:"EXTERNAL_CACHE_CAPACITY" envDefault:"64"` // 0 disables the daily cache
}

// Endpoints are the base URLs of every provider, without trailing slash.
type Endpoints struct {
	Weather string
	Quote   string
	Art     string
	Meal    string
	Crypto  string
}

// DefaultEndpoints points at the public APIs.
var DefaultEndpoints = Endpoints{
	Weather: "https://api.open-meteo.com",
	Quote:   "https://api.quotable.io",
	Art:     "https://api.artic.edu",
	Meal:    "https://www.themealdb.com",
	Crypto:  "https://api.coingecko.com",
}

// NewFromConfig creates a Client from cfg. Empty URLs keep their defaults.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	ep := DefaultEndpoints
	setIf := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setIf(&ep.Weather, cfg.WeatherURL)
	setIf(&ep.Quote, cfg.QuoteURL)
	setIf(&ep.Art, cfg.ArtURL)
	setIf(&ep.Meal, cfg.MealURL)
	setIf(&ep.Crypto, cfg.CryptoURL)

	configOpts := make([]Option, 0, 3+len(opts))
	configOpts = append(configOpts, WithEndpoints(ep))
	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithTimeout(cfg.Timeout))
	}
	if cfg.CacheCapacity > 0 {
		configOpts = append(configOpts, WithCache(cfg.CacheCapacity))
	}
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
