package handlers

import (
	"net/http"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"go.uber.org/zap"
)

type WalletHandler struct {
	walletService domain.WalletService
	logger        *zap.Logger
}

func NewWalletHandler(walletService domain.WalletService, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		logger:        logger,
	}
}

func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	account, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, h.logger, err, "failed to get balance")
		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	entries, err := h.walletService.ListEntries(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, h.logger, err, "failed to get transactions")
		return
	}

	if len(entries) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
