// Package config loads typed configuration from environment variables and
// optional dotenv files using caarlos0/env and joho/godotenv.
//
// Structs describe their variables with env tags; nested structs such as
// httpserver.Config are parsed in place:
//
//	type Config struct {
//		Env  string            `env:"APP_ENV" envDefault:"development"`
//		HTTP httpserver.Config
//	}
//
//	cfg, err := config.Load[Config]()
//
// When the config type implements Validator its Validate method runs after
// parsing and a failure is reported as ErrInvalidConfig.
package config
