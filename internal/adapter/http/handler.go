package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crowdfund/internal/core/port"
)

// CallerHeader carries the identity of the party issuing a request. The
// service trusts it as given; signature checks belong to the host.
const CallerHeader = "X-Caller"

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 16

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a CrowdfundingUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.CrowdfundingUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. When limiter is
// non-nil every API route is rate limited per client; /metrics never is.
func NewHandler(svc port.CrowdfundingUseCase, logger *slog.Logger, limiter *RateLimiter) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api/v1", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Wrap)
		}

		r.Route("/admin", func(r chi.Router) {
			r.Get("/", h.handleGetRegistry)
			r.Post("/initialize", h.handleInitialize)
			r.Post("/toggle-pause", h.handleTogglePause)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/{id}", h.handleGetCampaign)
			r.Post("/{id}/donations", h.handleDonate)
			r.Post("/{id}/withdrawals", h.handleWithdraw)
		})

		r.Get("/accounts/{account}", h.handleGetBalance)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
