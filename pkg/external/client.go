package external

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lunahq/luna/pkg/cache"
	"github.com/lunahq/luna/pkg/logger"
)

// Provider names used in logs, metrics and cache keys.
const (
	ProviderWeather = "weather"
	ProviderQuote   = "quote"
	ProviderArt     = "art"
	ProviderMeal    = "meal"
	ProviderCrypto  = "crypto"
)

const defaultTimeout = 5 * time.Second

// Client fetches data from the public providers. Every method returns a usable
// value, falling back to built-in data when the provider cannot be reached.
// A Client is safe for concurrent use.
type Client struct {
	http      *http.Client
	endpoints Endpoints
	logger    *slog.Logger
	daily     *cache.LRU[string, any]
	dayMu     sync.Mutex
	cacheDay  string // UTC date of the entries in daily
	metrics   *metrics
	intn      func(n int) int
	now       func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its timeout is kept as is.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithTimeout sets the per-request timeout. There are no retries.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.http.Timeout = d
		}
	}
}

func WithEndpoints(ep Endpoints) Option {
	return func(cl *Client) {
		cl.endpoints = ep
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// WithCache keeps once-a-day values (quote, artwork, meal per phase) in memory
// until the next UTC midnight. Only live values are cached.
func WithCache(capacity int) Option {
	return func(cl *Client) {
		if capacity > 0 {
			cl.daily = cache.New[string, any](capacity,
				cache.WithClock[string, any](cl.nowFn),
				cache.WithEvictCallback(cl.evicted),
			)
		}
	}
}

// WithRegisterer registers the fetch counter with reg.
// Registration errors other than a duplicate counter are logged and ignored.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(cl *Client) {
		if reg == nil {
			return
		}
		if err := cl.metrics.register(reg); err != nil {
			cl.logger.Warn("failed to register external metrics", logger.Error(err))
		}
	}
}

// WithRandom replaces the random source used to pick among candidates.
// fn must return a value in [0, n).
func WithRandom(fn func(n int) int) Option {
	return func(cl *Client) {
		if fn != nil {
			cl.intn = fn
		}
	}
}

// WithClock replaces time.Now for daily cache keys and expiry.
func WithClock(now func() time.Time) Option {
	return func(cl *Client) {
		if now != nil {
			cl.now = now
		}
	}
}

// New creates a Client talking to the public endpoints.
func New(opts ...Option) *Client {
	cl := &Client{
		http:      &http.Client{Timeout: defaultTimeout},
		endpoints: DefaultEndpoints,
		logger:    logger.Discard(),
		metrics:   newMetrics(),
		intn:      rand.IntN,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// nowFn defers to the current clock so WithCache and WithClock can come in any order.
func (c *Client) nowFn() time.Time {
	return c.now()
}

// getJSON performs a GET and decodes a 2xx JSON body into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Join(ErrBuildRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrDecodeResponse, err)
	}
	return nil
}

// settle records the outcome of a fetch and logs fallbacks.
func settle[T any](ctx context.Context, c *Client, provider string, r Result[T]) Result[T] {
	c.metrics.observe(provider, string(r.Source))
	if r.Fallback() {
		c.logger.WarnContext(ctx, "provider unavailable, using fallback",
			logger.Provider(provider),
			logger.Error(r.Err),
		)
	}
	return r
}

func (c *Client) evicted(key string, _ any) {
	c.logger.Debug("daily cache entry evicted", slog.String("key", key))
}

// rollover purges the daily cache the first time it is used on a new UTC date.
func (c *Client) rollover() {
	day := c.now().UTC().Format(time.DateOnly)

	c.dayMu.Lock()
	defer c.dayMu.Unlock()
	if c.cacheDay == day {
		return
	}
	if c.cacheDay != "" {
		c.daily.Purge()
	}
	c.cacheDay = day
}

// dailyKey scopes key to the current UTC date.
func (c *Client) dailyKey(key string) string {
	return key + ":" + c.now().UTC().Format(time.DateOnly)
}

// untilMidnight is the time left in the current UTC day.
func (c *Client) untilMidnight() time.Duration {
	now := c.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	return midnight.Sub(now)
}

// cachedDaily serves provider from the daily cache when enabled, otherwise calls fetch
// and stores live results.
func cachedDaily[T any](ctx context.Context, c *Client, provider, key string, fetch func(context.Context) Result[T]) Result[T] {
	if c.daily == nil {
		return settle(ctx, c, provider, fetch(ctx))
	}

	c.rollover()
	k := c.dailyKey(key)
	if v, ok := c.daily.Get(k); ok {
		if typed, ok := v.(T); ok {
			c.metrics.observe(provider, sourceCache)
			return live(typed)
		}
	}

	r := settle(ctx, c, provider, fetch(ctx))
	if !r.Fallback() {
		c.daily.Set(k, r.Value, c.untilMidnight())
	}
	return r
}
