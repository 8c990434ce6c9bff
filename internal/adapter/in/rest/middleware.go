package rest

import (
	"log/slog"
	"net/http"
	"time"
	"tweetfeed/pkg/logger"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// requestLogger puts a request-scoped logger into the context and writes
// one access line per request once the handler returns.
func requestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			log := base.With(
				"request_id", chiMiddleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
			)
			ctx := logger.WithLogger(r.Context(), log)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			log.Info("request served",
				"status", status,
				"bytes", ww.BytesWritten(),
				"remote", r.RemoteAddr,
				"referer", r.Referer(),
				"user_agent", r.UserAgent(),
				"duration", time.Since(start),
			)
		})
	}
}
