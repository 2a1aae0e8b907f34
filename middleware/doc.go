// Package middleware provides net/http middleware for request IDs, access
// logging and panic recovery.
//
// Every middleware has the shape func(http.Handler) http.Handler, so they
// compose with any handler:
//
//	handler := middleware.Chain(files,
//		middleware.RequestID(),
//		middleware.Logging(log),
//		middleware.Recover(log),
//	)
//
// Chain runs middlewares in the order listed. Put RequestID first so later
// ones can read the ID with GetRequestID, and Recover last so it sits
// closest to the handler and the access log still records the 500.
//
// # Request IDs
//
// RequestID sets X-Request-ID on the response and stores the value in the
// request context. Register RequestIDExtractor with the logger to attach it
// to every *Context log call:
//
//	log := logger.New(
//		logger.WithProduction("webroot"),
//		logger.WithContextExtractors(middleware.RequestIDExtractor),
//	)
//
// # Access Logging
//
// Logging emits one "HTTP request completed" record per request. Status 5xx
// logs at error level. Status 4xx and requests slower than
// SlowRequestThreshold log at warning level.
package middleware
