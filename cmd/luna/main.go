// Command luna serves the LUNA subscription API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lunahq/luna/modules/api"
	"github.com/lunahq/luna/pkg/config"
	"github.com/lunahq/luna/pkg/dashboard"
	"github.com/lunahq/luna/pkg/environment"
	"github.com/lunahq/luna/pkg/external"
	"github.com/lunahq/luna/pkg/httpserver"
	"github.com/lunahq/luna/pkg/logger"
	"github.com/lunahq/luna/pkg/mockdata"
	"github.com/lunahq/luna/pkg/requestid"
	"github.com/lunahq/luna/pkg/subscription"
)

type appConfig struct {
	Env         string  `env:"APP_ENV" envDefault:"development"`
	ServiceName string  `env:"SERVICE_NAME" envDefault:"luna"`
	LogLevel    string  `env:"LOG_LEVEL"` // overrides the environment preset when set
	Latitude    float64 `env:"DASHBOARD_LATITUDE" envDefault:"40.7128"`
	Longitude   float64 `env:"DASHBOARD_LONGITUDE" envDefault:"-74.0060"`

	HTTP     httpserver.Config
	External external.Config
}

func (c appConfig) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("DASHBOARD_LATITUDE out of range: %v", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("DASHBOARD_LONGITUDE out of range: %v", c.Longitude)
	}
	return nil
}

func main() {
	cfg, err := config.Load[appConfig]()
	if err != nil {
		logger.New().Error("failed to load config", logger.Error(err))
		os.Exit(1)
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LogExtractor),
		logger.WithAttr(slog.Int("pid", os.Getpid())),
	}
	if cfg.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)
	if environment.Parse(cfg.Env).IsProduction() {
		log.Warn("checkout is a mock, no payment is taken", logger.Component("checkout"))
	}

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	seed := mockdata.NewSeedAccount()
	store := subscription.NewInMemStore(seed)
	subs := subscription.NewService(store,
		subscription.WithLogger(log.With(logger.Component("subscription"))),
	)

	providers := external.NewFromConfig(cfg.External,
		external.WithLogger(log.With(logger.Component("external"))),
		external.WithRegisterer(prometheus.DefaultRegisterer),
	)
	suggestions := mockdata.NewSuggestionBoard(mockdata.Suggestions()...)
	loader := dashboard.NewLoader(providers,
		dashboard.WithCoordinates(cfg.Latitude, cfg.Longitude),
		dashboard.WithSuggestions(suggestions),
		dashboard.WithLogger(log.With(logger.Component("dashboard"))),
	)

	router := api.Router(api.RouterOptions{
		Subscriptions: subs,
		Dashboard:     loader,
		Prices:        providers,
		Meals:         providers,
		Suggestions:   suggestions,
		Family:        mockdata.NewFamilyCircle(mockdata.FamilyMembers(time.Now())...),
		AccountID:     seed.ID,
		Logger:        log,
		Metrics:       promhttp.Handler(),
		ReadyChecks: []httpserver.Check{{
			Name: "account_store",
			Fn: func(ctx context.Context) error {
				_, err := store.Get(ctx, seed.ID)
				return err
			},
		}},
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}
