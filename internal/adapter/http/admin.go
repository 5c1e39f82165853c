package httpadapter

import (
	"net/http"

	"crowdfund/internal/core/domain"
)

type registryResponse struct {
	Authority string `json:"authority"`
	Paused    bool   `json:"paused"`
}

func newRegistryResponse(reg *domain.AdminRegistry) registryResponse {
	return registryResponse{Authority: string(reg.Authority), Paused: reg.Paused}
}

// handleInitialize creates the admin registry with the caller as its
// authority. It answers 201 on success and 409 when the registry exists.
func (h *Handler) handleInitialize(w http.ResponseWriter, r *http.Request) {
	reg, err := h.svc.Initialize(r.Context(), caller(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newRegistryResponse(reg))
}

// handleTogglePause flips the pause switch and returns the new state.
func (h *Handler) handleTogglePause(w http.ResponseWriter, r *http.Request) {
	reg, err := h.svc.TogglePause(r.Context(), caller(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newRegistryResponse(reg))
}

func (h *Handler) handleGetRegistry(w http.ResponseWriter, r *http.Request) {
	reg, err := h.svc.GetRegistry(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newRegistryResponse(reg))
}

func caller(r *http.Request) domain.Identity {
	return domain.Identity(r.Header.Get(CallerHeader))
}
