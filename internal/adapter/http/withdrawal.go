package httpadapter

import (
	"net/http"

	"github.com/google/uuid"

	"crowdfund/internal/core/port"
)

type withdrawalResponse struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	Amount     uint64    `json:"amount"`
}

// handleWithdraw releases the campaign's custody to its creator. A repeated
// withdrawal succeeds with amount 0.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	receipt, err := h.svc.Withdraw(r.Context(), port.WithdrawReq{CampaignID: id, Caller: caller(r)})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, withdrawalResponse{CampaignID: receipt.CampaignID, Amount: receipt.Amount})
}
