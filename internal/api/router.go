package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/neexbeast/tourguide/internal/observability"
)

// NewRouter builds and returns the Chi router with all routes configured.
// The /guideplus routes additionally disable caching and allow any origin.
// A nil metrics disables recording and the /metrics route.
func NewRouter(handlers *Handlers, metrics *observability.Metrics, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(Metrics(metrics))

	r.Get("/health", handlers.Health)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Route("/guide/lieu", func(r chi.Router) {
		r.Get("/", handlers.GetGuide)
		r.Get("/{destination}", handlers.GetGuide)
	})

	r.Route("/guideplus/lieu", func(r chi.Router) {
		r.Use(NoCache, AllowAnyOrigin)
		r.Get("/", handlers.GetGuide)
		r.Get("/{destination}", handlers.GetGuide)
		r.Get("/{destination}/{nb}", handlers.GetGuideByPath)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
