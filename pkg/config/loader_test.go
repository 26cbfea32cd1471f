package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunahq/luna/pkg/config"
)

type appConfig struct {
	Env     string        `env:"APP_ENV" envDefault:"development"`
	Port    int           `env:"PORT" envDefault:"8080"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

type strictConfig struct {
	Name string `env:"NAME"`
}

func (c *strictConfig) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[appConfig](config.WithEnvironment(map[string]string{}))
	require.NoError(t, err)
	assert.Equal(t, appConfig{Env: "development", Port: 8080, Timeout: 5 * time.Second}, cfg)
}

func TestLoad_Environment(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[appConfig](config.WithEnvironment(map[string]string{
		"APP_ENV": "production",
		"TIMEOUT": "250ms",
	}))
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
}

func TestLoad_Prefix(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[appConfig](
		config.WithPrefix("LUNA_"),
		config.WithEnvironment(map[string]string{"LUNA_PORT": "9090", "PORT": "1"}),
	)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_ParseError(t *testing.T) {
	t.Parallel()

	_, err := config.Load[appConfig](config.WithEnvironment(map[string]string{"PORT": "eighty"}))
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Validate(t *testing.T) {
	t.Parallel()

	_, err := config.Load[strictConfig](config.WithEnvironment(map[string]string{}))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg, err := config.Load[strictConfig](config.WithEnvironment(map[string]string{"NAME": "luna"}))
	require.NoError(t, err)
	assert.Equal(t, "luna", cfg.Name)
}

// Not parallel: dotenv files write to the process environment.
func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LUNA_TEST_DOTENV_PORT=7070\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("LUNA_TEST_DOTENV_PORT") })

	cfg, err := config.Load[appConfig](
		config.WithEnvFiles(path, filepath.Join(t.TempDir(), "missing.env")),
		config.WithPrefix("LUNA_TEST_DOTENV_"),
	)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
}

func TestMustLoad_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		config.MustLoad[appConfig](config.WithEnvironment(map[string]string{"PORT": "x"}))
	})
}
