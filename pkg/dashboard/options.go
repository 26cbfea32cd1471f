package dashboard

import (
	"log/slog"
	"time"
)

// Option configures a Loader.
type Option func(*Loader)

func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLocation sets the time zone used for the greeting and the event times.
func WithLocation(loc *time.Location) Option {
	return func(l *Loader) {
		if loc != nil {
			l.location = loc
		}
	}
}

// WithCoordinates sets where the weather is read.
func WithCoordinates(lat, long float64) Option {
	return func(l *Loader) {
		l.lat = lat
		l.long = long
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.logger = log
		}
	}
}

// WithSuggestions sets where open suggestions come from. Defaults to the static fixtures.
func WithSuggestions(src SuggestionSource) Option {
	return func(l *Loader) {
		if src != nil {
			l.suggestions = src
		}
	}
}
