// Package httpserver runs the LUNA HTTP API with graceful shutdown and
// liveness/readiness handlers.
//
// A Server serves until its context is canceled or the process receives
// SIGINT or SIGTERM, then drains in-flight requests within the shutdown
// timeout:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Configuration comes from Config (HTTP_* environment variables) or from Option
// helpers. Errors are wrapped with ErrStart and ErrShutdown.
//
// LivenessHandler and ReadinessHandler back the /health endpoints.
package httpserver
