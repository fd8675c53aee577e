package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"go.uber.org/zap"
)

// maxIdempotencyKeyLen bounds the Idempotency-Key header
const maxIdempotencyKeyLen = 128

type PurchaseHandler struct {
	purchases domain.PurchaseService
	batches   domain.BatchService
	prices    domain.PriceLookup
	logger    *zap.Logger
}

func NewPurchaseHandler(purchases domain.PurchaseService, batches domain.BatchService, prices domain.PriceLookup, logger *zap.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchases: purchases,
		batches:   batches,
		prices:    prices,
		logger:    logger,
	}
}

type purchaseRequest struct {
	Phone    string `json:"phone_number"`
	Network  string `json:"network"`
	Capacity int    `json:"capacity"`
	Gateway  string `json:"gateway"`
}

func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	key := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if len(key) > maxIdempotencyKeyLen {
		writeError(w, http.StatusBadRequest, "Idempotency-Key is too long")
		return
	}

	network, _ := domain.ParseNetwork(req.Network)
	result, err := h.purchases.Purchase(r.Context(), domain.PurchaseRequest{
		UserID:         userID,
		Phone:          req.Phone,
		Network:        network,
		Capacity:       req.Capacity,
		Gateway:        domain.Provider(strings.ToLower(strings.TrimSpace(req.Gateway))),
		IdempotencyKey: key,
	})
	if err != nil {
		writeDomainError(w, r, h.logger, err, "failed to purchase data")
		return
	}

	writeJSON(w, purchaseStatus(result), result)
}

func purchaseStatus(result *domain.PurchaseResult) int {
	switch {
	case result.Replayed:
		return http.StatusOK
	case result.Outcome == domain.PurchasePendingReview:
		return http.StatusAccepted
	default:
		return http.StatusCreated
	}
}

type bulkPurchaseRequest struct {
	Gateway string                  `json:"gateway"`
	Orders  []domain.BatchCandidate `json:"orders"`
}

func (h *PurchaseHandler) BulkPurchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req bulkPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	for i := range req.Orders {
		req.Orders[i].Network, _ = domain.ParseNetwork(string(req.Orders[i].Network))
	}

	result, err := h.batches.Submit(r.Context(), domain.BatchRequest{
		UserID:  userID,
		Gateway: domain.Provider(strings.ToLower(strings.TrimSpace(req.Gateway))),
		Orders:  req.Orders,
	})
	if err != nil {
		writeDomainError(w, r, h.logger, err, "failed to process bulk purchase")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *PurchaseHandler) Prices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.prices.Entries())
}
