package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/TalentMatch/internal/events"
	"github.com/MikeSquared-Agency/TalentMatch/internal/match"
	"github.com/MikeSquared-Agency/TalentMatch/internal/metrics"
	"github.com/MikeSquared-Agency/TalentMatch/internal/narrative"
	"github.com/MikeSquared-Agency/TalentMatch/internal/store"
)

func NewRouter(s store.Store, runner *match.Runner, narr narrative.Client, ev events.Client, m *metrics.Metrics, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	employees := NewEmployeesHandler(s)
	matches := NewMatchHandler(runner)
	narratives := NewNarrativeHandler(runner, narr, ev, m)
	admin := NewAdminHandler(s)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/employees", employees.List)
		r.Get("/employees/{id}", employees.Get)

		r.Post("/match/runs", matches.Run)
		r.Post("/match/compare", matches.Compare)
		r.Post("/match/explain", matches.Explain)

		r.Post("/profiles/narrative", narratives.Generate)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
