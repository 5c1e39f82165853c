package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
)

type balanceResponse struct {
	Account string `json:"account"`
	Balance uint64 `json:"balance"`
}

// handleGetBalance returns the balance of an account. Unknown accounts hold
// zero.
func (h *Handler) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")
	if account == "" {
		writeProblem(w, http.StatusBadRequest, codeInvalidRequest, "missing account")
		return
	}
	balance, err := h.svc.GetBalance(r.Context(), domain.Account(account))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, balanceResponse{Account: account, Balance: balance})
}
