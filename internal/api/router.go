package api

import (
	"net/http"

	"github.com/dom/league-item-advisor/internal/api/handlers"
	"github.com/dom/league-item-advisor/internal/api/middleware"
	"github.com/dom/league-item-advisor/internal/config"
	"github.com/dom/league-item-advisor/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	recommendationHandler := handlers.NewRecommendationHandler(services.Recommendation)
	championHandler := handlers.NewChampionHandler(services.Champion)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/health", recommendationHandler.Health)
			r.With(middleware.RateLimit(cfg.RateLimit)).Post("/items", recommendationHandler.Recommend)
		})

		r.Route("/champions", func(r chi.Router) {
			r.Get("/", championHandler.GetAll)
			r.Get("/{id}", championHandler.Get)
			r.Get("/{id}/profile", championHandler.Profile)
		})
	})

	return r
}
