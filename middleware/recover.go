package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/webroot/core/logger"
)

// Recover converts a panic in next into a 500 response and logs it with
// its stack. If the handler already wrote headers only the log is emitted.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recover(log *slog.Logger) Middleware {
	if log == nil {
		log = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := newResponseWriter(w)

			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				attrs := []slog.Attr{
					logger.Component("http"),
					logger.Event("panic"),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					slog.String("panic", fmt.Sprint(p)),
					logger.Stack(),
				}

				if ww.written {
					log.LogAttrs(r.Context(), slog.LevelError, "panic after response written",
						append(attrs, logger.StatusCode(ww.status))...)
					return
				}

				log.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				h := ww.Header()
				for _, key := range []string{"Content-Encoding", "Content-Length", "ETag", "Cache-Control", "Vary"} {
					h.Del(key)
				}

				body := strconv.Itoa(http.StatusInternalServerError) + " " + http.StatusText(http.StatusInternalServerError) + "\n"
				h.Set("Content-Type", "text/plain; charset=utf-8")
				h.Set("X-Content-Type-Options", "nosniff")
				h.Set("Content-Length", strconv.Itoa(len(body)))
				ww.WriteHeader(http.StatusInternalServerError)
				_, _ = io.WriteString(ww, body)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
