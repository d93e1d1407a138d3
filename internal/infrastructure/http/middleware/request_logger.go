package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"gh-pr-mirror/internal/infrastructure/logger"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestLoggerMiddleware logs one line per request once the handler returns.
func RequestLoggerMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				attrs := []any{
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", status),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Duration("duration", time.Since(start)),
					slog.String("request_id", chiMiddleware.GetReqID(r.Context())),
				}
				if status >= http.StatusInternalServerError {
					log.Error("request completed", attrs...)
					return
				}
				log.Info("request completed", attrs...)
			}()
			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}
