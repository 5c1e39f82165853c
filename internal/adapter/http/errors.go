package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"crowdfund/internal/core/domain"
)

const (
	codeInvalidRequest = "InvalidRequest"
	codeInternal       = "Internal"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusOf maps a ledger error code to an HTTP status.
func statusOf(code string) int {
	switch code {
	case domain.ErrCampaignTooShort.Code,
		domain.ErrCampaignTooLong.Code,
		domain.ErrTitleTooLong.Code,
		domain.ErrDescriptionTooLong.Code:
		return http.StatusBadRequest
	case domain.ErrInvalidIdentity.Code:
		return http.StatusUnauthorized
	case domain.ErrUnauthorized.Code:
		return http.StatusForbidden
	case domain.ErrCampaignNotFound.Code:
		return http.StatusNotFound
	case domain.ErrContractPaused.Code,
		domain.ErrCampaignEnded.Code,
		domain.ErrCampaignNotEnded.Code,
		domain.ErrGoalNotReached.Code,
		domain.ErrAlreadyInitialized.Code,
		domain.ErrNotInitialized.Code,
		domain.ErrInsufficientFunds.Code:
		return http.StatusConflict
	case domain.ErrInvalidDonationAmount.Code,
		domain.ErrMathOverflow.Code:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as a JSON problem. Errors that are not ledger
// errors are logged and reported as 500 without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var e *domain.Error
	if !errors.As(err, &e) {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeProblem(w, http.StatusInternalServerError, codeInternal, "internal error")
		return
	}
	writeProblem(w, statusOf(e.Code), e.Code, e.Message)
}

func writeProblem(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: code, Message: message})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// decode reads a JSON body into v, answering 400 itself on failure. An
// empty body leaves v untouched.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	writeProblem(w, http.StatusBadRequest, codeInvalidRequest, "invalid JSON")
	return false
}
