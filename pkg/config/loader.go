package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by config structs that check themselves after parsing.
type Validator interface {
	Validate() error
}

type loadOptions struct {
	files       []string
	prefix      string
	environment map[string]string
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithEnvFiles reads the given dotenv files before parsing. Missing files are
// skipped and variables already set in the process environment win.
func WithEnvFiles(paths ...string) LoadOption {
	return func(o *loadOptions) { o.files = append(o.files, paths...) }
}

// WithPrefix only considers variables starting with prefix, e.g. "LUNA_".
func WithPrefix(prefix string) LoadOption {
	return func(o *loadOptions) { o.prefix = prefix }
}

// WithEnvironment parses from env instead of the process environment.
// Dotenv files are ignored in this mode.
func WithEnvironment(env map[string]string) LoadOption {
	return func(o *loadOptions) { o.environment = env }
}

// Load parses environment variables into a new T according to its env tags.
// By default a .env file in the working directory is read when present.
//
//	type Config struct {
//		Env  string `env:"APP_ENV" envDefault:"development"`
//		Port int    `env:"PORT" envDefault:"8080"`
//	}
//
//	cfg, err := config.Load[Config]()
func Load[T any](opts ...LoadOption) (T, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	var cfg T
	if o.environment == nil {
		files := o.files
		if len(files) == 0 {
			files = []string{".env"}
		}
		for _, f := range files {
			if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return cfg, errors.Join(ErrReadEnvFile, fmt.Errorf("%s: %w", f, err))
			}
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.environment != nil {
		envOpts.Environment = o.environment
	}
	if err := env.ParseWithOptions(&cfg, envOpts); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}

	if v, ok := any(&cfg).(Validator); ok {
		if err := v.Validate(); err != nil {
			return cfg, errors.Join(ErrInvalidConfig, err)
		}
	}
	return cfg, nil
}

// MustLoad is Load for startup code; it panics on error.
func MustLoad[T any](opts ...LoadOption) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}
