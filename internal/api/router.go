package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/droplaunch/waitlist/internal/api/handlers"
	mw "github.com/droplaunch/waitlist/internal/api/middleware"
	"github.com/droplaunch/waitlist/internal/services"
)

type Dependencies struct {
	Guard               *services.AccessGuard
	RegistrationHandler *handlers.RegistrationHandler
	AdminHandler        *handlers.AdminHandler
	HealthHandler       *handlers.HealthHandler
	// StaticDir holds the landing page. Empty disables static serving.
	StaticDir      string
	MetricsEnabled bool
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.Metrics)
	r.Use(mw.CORS)
	r.Use(chimid.Compress(5))

	r.Get("/healthz", dep.HealthHandler.Liveness)
	r.Get("/health", dep.HealthHandler.Health)
	if dep.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Post("/register", dep.RegistrationHandler.Register)

	r.Group(func(admin chi.Router) {
		admin.Use(mw.RequireAdmin(dep.Guard))

		admin.Get("/emails", dep.AdminHandler.List)
		admin.Get("/export", dep.AdminHandler.ExportJSON)
		admin.Get("/export.json", dep.AdminHandler.ExportJSON)
		admin.Get("/export.csv", dep.AdminHandler.ExportCSV)
		admin.Get("/stats", dep.AdminHandler.Stats)
	})

	if dep.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(dep.StaticDir)))
	}

	return r
}
