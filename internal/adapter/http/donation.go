package httpadapter

import (
	"net/http"

	"github.com/google/uuid"

	"crowdfund/internal/core/port"
)

type donateRequest struct {
	Amount uint64 `json:"amount"`
}

type feeResponse struct {
	Base     uint64 `json:"base"`
	Ratio    uint64 `json:"ratio"`
	Step     uint64 `json:"step"`
	Variable uint64 `json:"variable"`
	Total    uint64 `json:"total"`
}

type donationResponse struct {
	CampaignID   uuid.UUID   `json:"campaign_id"`
	Amount       uint64      `json:"amount"`
	Fee          feeResponse `json:"fee"`
	Net          uint64      `json:"net"`
	RaisedAmount uint64      `json:"raised_amount"`
}

// handleDonate donates the requested amount from the caller's account to
// the campaign. The response carries the fee breakdown.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	var body donateRequest
	if !h.decode(w, r, &body) {
		return
	}
	receipt, err := h.svc.Donate(r.Context(), port.DonateReq{
		CampaignID: id,
		Donor:      caller(r),
		Amount:     body.Amount,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	fee := receipt.Fee
	h.writeJSON(w, http.StatusOK, donationResponse{
		CampaignID: receipt.CampaignID,
		Amount:     receipt.Amount,
		Fee: feeResponse{
			Base:     fee.Base,
			Ratio:    fee.Ratio,
			Step:     fee.Step,
			Variable: fee.Variable,
			Total:    fee.Total,
		},
		Net:          receipt.Net,
		RaisedAmount: receipt.RaisedAmount,
	})
}
