// Package logger provides structured logging utilities built on Go's standard slog package.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/webroot/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("webroot"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("webroot"))
//
//	log.Info("Server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// # Context-Aware Logging
//
// Extractors add request-scoped attributes to every *Context call:
//
//	log := logger.New(
//		logger.WithProduction("webroot"),
//		logger.WithContextExtractors(middleware.RequestIDExtractor),
//	)
//
//	log.InfoContext(r.Context(), "Serving file", logger.Path(r.URL.Path))
//	// {"level":"INFO","msg":"Serving file","path":"/index.html","request_id":"..."}
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil errors and empty strings, which
// slog drops, so they can be passed unconditionally:
//
//	log.Error("Failed to serve file",
//		logger.Component("static"),
//		logger.Path(r.URL.Path),
//		logger.Error(err),
//	)
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
