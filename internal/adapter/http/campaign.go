package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"crowdfund/internal/core/port"
)

type createCampaignRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Goal        uint64 `json:"goal"`
	// Deadline is a unix timestamp in seconds.
	Deadline int64 `json:"deadline"`
}

type createCampaignResponse struct {
	ID uuid.UUID `json:"id"`
}

type campaignResponse struct {
	ID           uuid.UUID `json:"id"`
	Creator      string    `json:"creator"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Goal         uint64    `json:"goal"`
	RaisedAmount uint64    `json:"raised_amount"`
	Deadline     int64     `json:"deadline"`
	CreatedAt    int64     `json:"created_at"`
	Custody      uint64    `json:"custody"`
	Withdrawn    bool      `json:"withdrawn"`
	State        string    `json:"state"`
}

// handleCreateCampaign validates and stores a campaign owned by the caller.
// It answers 201 with the new campaign id.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body createCampaignRequest
	if !h.decode(w, r, &body) {
		return
	}
	id, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Creator:     caller(r),
		Title:       body.Title,
		Description: body.Description,
		Goal:        body.Goal,
		Deadline:    time.Unix(body.Deadline, 0).UTC(),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, createCampaignResponse{ID: id})
}

// handleGetCampaign returns a campaign with its custodied balance and
// lifecycle state. Unknown ids result in 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c := view.Campaign
	h.writeJSON(w, http.StatusOK, campaignResponse{
		ID:           c.ID,
		Creator:      string(c.Creator),
		Title:        c.Title,
		Description:  c.Description,
		Goal:         c.Goal,
		RaisedAmount: c.RaisedAmount,
		Deadline:     c.Deadline.Unix(),
		CreatedAt:    c.CreatedAt.Unix(),
		Custody:      view.Custody,
		Withdrawn:    c.Withdrawn,
		State:        string(view.State),
	})
}

func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, codeInvalidRequest, "invalid campaign id")
		return uuid.Nil, false
	}
	return id, true
}
