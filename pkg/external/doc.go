// Package external talks to the free public APIs behind the LUNA dashboard:
// Open-Meteo for weather, Quotable for the daily mantra, the Art Institute of
// Chicago for the daily muse, TheMealDB for cycle-synced meals and CoinGecko for
// the BTC price used at crypto checkout.
//
// No method returns an error. Every call yields a Result whose Value is always
// safe to render; when the provider fails (transport error, non-2xx status,
// malformed or empty body) the Value is a fixed fallback, Source is
// SourceFallback and Err carries the cause:
//
//	client := external.New(
//		external.WithTimeout(5*time.Second),
//		external.WithLogger(log),
//		external.WithCache(64),
//		external.WithRegisterer(prometheus.DefaultRegisterer),
//	)
//
//	w := client.Weather(ctx, external.DefaultLatitude, external.DefaultLongitude)
//	if w.Fallback() {
//		// show a "live data unavailable" hint
//	}
//
// Requests have a single static timeout and are never retried.
//
// # Daily cache
//
// With WithCache, the quote, artwork and meal are remembered per UTC day so the
// dashboard does not change on every reload. Weather and BTC price are always
// fetched live. Fallback values are never cached.
//
// # Metrics
//
// The counter luna_external_fetch_total{provider,source} counts every call, with
// source one of live, fallback or cache.
package external
