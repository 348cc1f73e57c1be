// Package httptransport is the thin HTTP layer. Handlers decode, delegate to
// domain services, and encode; business logic stays out of this package.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"evidence-vault/internal/notify"
	"evidence-vault/internal/platform/metrics"
	"evidence-vault/internal/platform/middleware"
	"evidence-vault/internal/requests"
	"evidence-vault/internal/vault"
)

// Handler bundles the services behind the public endpoints.
type Handler struct {
	logger        *slog.Logger
	vault         *vault.Service
	requests      *requests.Service
	notifications *notify.InMemorySink
}

func NewHandler(logger *slog.Logger, vaultSvc *vault.Service, requestSvc *requests.Service, notifications *notify.InMemorySink) *Handler {
	return &Handler{
		logger:        logger,
		vault:         vaultSvc,
		requests:      requestSvc,
		notifications: notifications,
	}
}

// NewRouter wires all public endpoints behind the shared middleware chain.
func NewRouter(h *Handler, m *metrics.Metrics, defaultActor string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Actor(defaultActor))
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Latency(m))

	r.Route("/vault", func(r chi.Router) {
		r.Get("/evidence", h.handleListEvidence)
		r.Get("/evidence/export", h.handleExportEvidence)
		r.Get("/evidence/{id}", h.handleGetEvidence)
		r.Post("/evidence/{id}/versions", h.handleUploadVersion)
		r.Post("/packs", h.handleBuildPack)
	})

	r.Route("/requests", func(r chi.Router) {
		r.Get("/", h.handleListRequests)
		r.Get("/{id}/matches", h.handleRequestMatches)
		r.Post("/{id}/fulfill", h.handleFulfillRequest)
	})

	r.Get("/notifications", h.handleListNotifications)
	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
