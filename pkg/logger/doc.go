// Package logger builds *slog.Logger instances for LUNA services.
//
// New applies Option functions (format, level, output, static attributes) and wraps the
// resulting handler with LogHandlerDecorator, which copies request-scoped values such as the
// request ID from context.Context into every record. WithEnvironment picks the preset for
// production, staging or development.
//
// Attribute helpers in attr.go (AccountID, Plan, Provider, Error, ...) keep key names
// consistent across packages.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "luna"),
//	    logger.WithContextExtractors(requestid.LogExtractor),
//	)
//	log.InfoContext(ctx, "trial started", logger.AccountID(acc.ID), logger.Plan("PRO_MONTHLY"))
//
// Discard returns a logger that drops everything; packages use it when the caller
// supplies no logger.
package logger
