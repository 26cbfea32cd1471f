package dashboard

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/lunahq/luna/pkg/async"
	"github.com/lunahq/luna/pkg/bioinsight"
	"github.com/lunahq/luna/pkg/external"
	"github.com/lunahq/luna/pkg/logger"
	"github.com/lunahq/luna/pkg/mockdata"
	"github.com/lunahq/luna/pkg/subscription"
)

// DataSource is the subset of the provider client the dashboard needs.
type DataSource interface {
	Weather(ctx context.Context, lat, long float64) external.Result[bioinsight.Weather]
	DailyQuote(ctx context.Context) external.Result[external.Quote]
	DailyArt(ctx context.Context) external.Result[external.Artwork]
}

// SuggestionSource lists the suggestions still waiting for a decision.
type SuggestionSource interface {
	List() []mockdata.Suggestion
}

type staticSuggestions struct{}

func (staticSuggestions) List() []mockdata.Suggestion { return mockdata.Suggestions() }

// Dashboard is the home screen aggregate for one account.
type Dashboard struct {
	Greeting         string
	Subscription     subscription.EffectiveSubscription
	Phase            bioinsight.Phase
	PhaseInfo        bioinsight.PhaseInfo
	Weather          external.Result[bioinsight.Weather]
	Conditions       string
	Quote            external.Result[external.Quote]
	Art              external.Result[external.Artwork]
	Insight          bioinsight.Insight
	Events           []mockdata.Event
	Suggestions      []mockdata.Suggestion
	OnboardingPrompt *OnboardingPrompt // nil once onboarding is complete
}

type OnboardingPrompt struct {
	Step int
}

// Degraded reports whether any provider slot is showing fallback data.
func (d Dashboard) Degraded() bool {
	return d.Weather.Fallback() || d.Quote.Fallback() || d.Art.Fallback()
}

// Loader builds dashboards.
type Loader struct {
	source      DataSource
	suggestions SuggestionSource
	now         func() time.Time
	location    *time.Location
	lat         float64
	long        float64
	logger      *slog.Logger
}

// NewLoader creates a Loader reading provider data from source.
// Panics if source is nil.
func NewLoader(source DataSource, opts ...Option) *Loader {
	if source == nil {
		panic("dashboard: DataSource is required")
	}
	l := &Loader{
		source:      source,
		suggestions: staticSuggestions{},
		now:         time.Now,
		location:    time.Local,
		lat:         external.DefaultLatitude,
		long:        external.DefaultLongitude,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches weather, quote and art concurrently and assembles the dashboard.
// Each provider fills its own slot; a slow or failed provider only degrades that slot.
func (l *Loader) Load(ctx context.Context, account subscription.Account) Dashboard {
	weatherF := async.Go(ctx, func(ctx context.Context) (external.Result[bioinsight.Weather], error) {
		return l.source.Weather(ctx, l.lat, l.long), nil
	})
	quoteF := async.Go(ctx, func(ctx context.Context) (external.Result[external.Quote], error) {
		return l.source.DailyQuote(ctx), nil
	})
	artF := async.Go(ctx, func(ctx context.Context) (external.Result[external.Artwork], error) {
		return l.source.DailyArt(ctx), nil
	})

	now := l.now().In(l.location)
	phase := account.Phase.OrDefault()

	d := Dashboard{
		Greeting:     Greeting(now.Hour(), account.Name),
		Subscription: subscription.Resolve(account, now),
		Phase:        phase,
		PhaseInfo:    phase.Info(),
		Weather:      awaitSlot(ctx, weatherF, external.FallbackWeather),
		Quote:        awaitSlot(ctx, quoteF, external.FallbackQuotes[0]),
		Art:          awaitSlot(ctx, artF, external.FallbackArtwork),
		Events:       mockdata.Events(now),
		Suggestions:  l.suggestions.List(),
	}
	d.Conditions = bioinsight.Conditions(d.Weather.Value.WeatherCode)
	d.Insight = bioinsight.Generate(phase, d.Weather.Value)

	if !account.OnboardingComplete {
		step := account.OnboardingStep
		if step < 1 {
			step = 1
		}
		d.OnboardingPrompt = &OnboardingPrompt{Step: step}
	}

	if d.Degraded() {
		l.logger.InfoContext(ctx, "dashboard served with fallback data",
			logger.AccountID(account.ID),
			logger.Group("live",
				slog.Bool("weather", !d.Weather.Fallback()),
				slog.Bool("quote", !d.Quote.Fallback()),
				slog.Bool("art", !d.Art.Fallback()),
			),
			logger.Errors(d.Weather.Err, d.Quote.Err, d.Art.Err),
		)
	}
	return d
}

// awaitSlot turns an abandoned or failed future into the slot's fallback value.
func awaitSlot[T any](ctx context.Context, f *async.Future[external.Result[T]], fallback T) external.Result[T] {
	r, err := f.Await(ctx)
	if err != nil {
		return external.Result[T]{Value: fallback, Source: external.SourceFallback, Err: err}
	}
	return r
}

// Greeting picks the salutation for hour (0-23) and addresses name by its first word.
func Greeting(hour int, name string) string {
	var g string
	switch {
	case hour < 12:
		g = "Good morning"
	case hour < 18:
		g = "Good afternoon"
	default:
		g = "Good evening"
	}
	if first, _, _ := strings.Cut(strings.TrimSpace(name), " "); first != "" {
		g += ", " + first
	}
	return g
}
