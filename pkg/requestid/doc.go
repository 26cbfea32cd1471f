// Package requestid tags every HTTP request with a correlation id.
//
// Middleware keeps a client-supplied X-Request-ID when it is 1-128 characters
// of letters, digits, dash or underscore, and otherwise generates a UUID. The
// id is echoed in the response header and stored in the request context.
//
// Register LogExtractor with the logger so every record written with the
// request context carries request_id:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor))
package requestid
