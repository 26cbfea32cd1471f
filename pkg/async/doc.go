// Package async runs functions in the background and hands back a typed Future
// for their outcome.
//
// It is used to fan out independent calls, such as the dashboard provider
// fetches, and collect each result into its own variable:
//
//	weather := async.Go(ctx, func(ctx context.Context) (external.Result[bioinsight.Weather], error) {
//		return client.Weather(ctx, lat, long), nil
//	})
//	quote := async.Go(ctx, func(ctx context.Context) (external.Result[external.Quote], error) {
//		return client.DailyQuote(ctx), nil
//	})
//
//	w, _ := weather.Await(ctx)
//	q, _ := quote.Await(ctx)
//
// Futures never share state, so one slow or failing call does not affect the others.
// Await honours the caller's context; giving up on a future does not stop the
// goroutine behind it, that is up to the context passed to Go.
//
// A panic inside the function is recovered and surfaces as ErrPanicked.
package async
