package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/TonySyv/yshstob/internal/app/logger"
)

// RequestLogger logs one line per processed request through the global zap logger.
func RequestLogger(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.Log.Infow(
			"Processed request",
			"uri", r.RequestURI,
			"method", r.Method,
			"status", ww.Status(),
			"duration", time.Since(start),
			"size", ww.BytesWritten(),
		)
	}
	return http.HandlerFunc(fn)
}
