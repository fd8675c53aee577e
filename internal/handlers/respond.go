package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error          string                       `json:"error"`
	CurrentBalance *decimal.Decimal             `json:"current_balance,omitempty"`
	Required       *decimal.Decimal             `json:"required,omitempty"`
	Skipped        []domain.ClassifiedCandidate `json:"skipped,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps service errors to HTTP statuses.
// Unknown errors are logged and hidden behind a generic 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error, op string) {
	var (
		insufficient  *domain.InsufficientBalanceError
		rejected      *domain.ProviderRejectedError
		batchRejected *domain.BatchRejectedError
	)

	switch {
	case errors.As(err, &insufficient):
		writeJSON(w, http.StatusPaymentRequired, errorResponse{
			Error:          "insufficient balance",
			CurrentBalance: &insufficient.Current,
			Required:       &insufficient.Required,
		})
	case errors.Is(err, domain.ErrInsufficientBalance):
		writeError(w, http.StatusPaymentRequired, "insufficient balance")
	case errors.As(err, &rejected):
		writeError(w, http.StatusUnprocessableEntity, rejected.Reason)
	case errors.As(err, &batchRejected):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "none of the orders can be placed",
			Skipped: batchRejected.Skipped,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrDuplicateReference),
		errors.Is(err, domain.ErrIdempotencyMismatch),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrStatusConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrBatchNotFound),
		errors.Is(err, domain.ErrInventoryNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		logger.Error(op,
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
