package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lunahq/luna/pkg/async"
	"github.com/lunahq/luna/pkg/logger"
)

// Check is a named readiness probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// LivenessHandler always answers 200 "ALIVE".
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}

// ReadinessHandler runs every check concurrently with the request context and
// answers 200 "READY", or 503 "NOT_READY" logging the first failing check.
func ReadinessHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		futures := make([]*async.Future[struct{}], 0, len(checks))
		for _, c := range checks {
			futures = append(futures, async.Go(r.Context(), func(ctx context.Context) (struct{}, error) {
				if err := c.Fn(ctx); err != nil {
					return struct{}{}, fmt.Errorf("%s: %w", c.Name, err)
				}
				return struct{}{}, nil
			}))
		}

		if _, err := async.AwaitAll(r.Context(), futures...); err != nil {
			log.WarnContext(r.Context(), "readiness check failed",
				logger.Component("readiness"),
				logger.Error(err),
			)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
