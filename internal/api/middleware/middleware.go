package middleware

import (
	"net/http"
	"time"

	"github.com/dom/league-item-advisor/internal/config"
	"github.com/dom/league-item-advisor/internal/logging"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// RequestIDHeader carries the correlation ID back to the caller.
const RequestIDHeader = "X-Request-ID"

// CORS allows the configured origins to call the API from a browser overlay.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.Origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
}

// RateLimit limits requests per client IP. A non-positive request count disables it.
func RateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.Requests <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	return httprate.Limit(cfg.Requests, window, httprate.WithKeyFuncs(httprate.KeyByIP))
}

// RequestID copies chi's request ID into the logging context and echoes it in the
// response headers. It must run after chi's RequestID middleware.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chiMiddleware.GetReqID(r.Context())
		if id == "" {
			id = logging.NewRequestID()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logging.ContextWithRequestID(r.Context(), id)))
	})
}
