package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AdminHandler serves the administrator endpoints
type AdminHandler struct {
	admin     domain.AdminService
	inventory domain.InventoryService
	wallet    domain.WalletService
	logger    *zap.Logger
}

func NewAdminHandler(admin domain.AdminService, inventory domain.InventoryService, wallet domain.WalletService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		admin:     admin,
		inventory: inventory,
		wallet:    wallet,
		logger:    logger,
	}
}

type overrideStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

func (h *AdminHandler) OverrideStatus(w http.ResponseWriter, r *http.Request) {
	adminID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || orderID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req overrideStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status := domain.OrderStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	order, err := h.admin.OverrideStatus(r.Context(), orderID, status, domain.AdminActor(adminID), req.Note)
	if err != nil {
		writeDomainError(w, r, h.logger, err, "failed to override order status")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *AdminHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	records, err := h.inventory.List(r.Context())
	if err != nil {
		writeDomainError(w, r, h.logger, err, "failed to list inventory")
		return
	}

	writeJSON(w, http.StatusOK, records)
}

type inventoryRequest struct {
	InStock      bool `json:"in_stock"`
	SkipProvider bool `json:"skip_provider"`
}

func (h *AdminHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	network, ok := domain.ParseNetwork(chi.URLParam(r, "network"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported network")
		return
	}

	var req inventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.inventory.Update(r.Context(), &domain.InventoryRecord{
		Network:      network,
		InStock:      req.InStock,
		SkipProvider: req.SkipProvider,
	})
	if err != nil {
		writeDomainError(w, r, h.logger, err, "failed to update inventory")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

type creditRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

func (h *AdminHandler) CreditWallet(w http.ResponseWriter, r *http.Request) {
	adminID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req creditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.wallet.AdminCredit(r.Context(), userID, req.Amount, req.Reason, domain.AdminActor(adminID))
	if err != nil {
		writeDomainError(w, r, h.logger, err, "failed to credit wallet")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}
