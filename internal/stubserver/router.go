package stubserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/health"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/middleware"
)

// NewRouter creates a chi router with all stub backend routes registered.
func NewRouter(store *Store, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("stub-backend"))

	healthHandler := health.NewHandler()
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	h := NewHandler(store, logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Login)
		r.Post("/auth/register", h.Register)

		r.Get("/events", h.ListEvents)
		r.Get("/events/{id}", h.GetEvent)
		r.Get("/menus/event/{eventId}", h.ListEventMenus)
		r.Get("/menus/{id}", h.GetMenuItem)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireAuth)

			r.Post("/orders", h.CreateOrder)
			r.Get("/orders/{id}", h.GetOrder)
			r.Post("/orders/{id}/pay", h.MarkOrderPaid)
			r.Post("/payments/create-intent", h.CreateIntent)
		})
	})

	return r
}
