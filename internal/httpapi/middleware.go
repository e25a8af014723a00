package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/specialistvlad/jmxforge/internal/ctxlog"
)

// LoggingMiddleware injects the logger into the request context and logs one
// line per completed request.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger.With("method", r.Method, "path", r.URL.Path)
			ctx := ctxlog.WithLogger(r.Context(), reqLogger)
			next.ServeHTTP(w, r.WithContext(ctx))
			reqLogger.Debug("Request handled.", "duration", time.Since(start))
		})
	}
}

// RecoverMiddleware converts a handler panic into a 500 instead of tearing
// down the connection.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				ctxlog.FromContext(r.Context()).Error("Handler panicked.", "panic", rec)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
