package handlers

import (
	"net/http"
	"strconv"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrdersHandler struct {
	orderService domain.OrderService
	logger       *zap.Logger
}

func NewOrdersHandler(orderService domain.OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
		logger:       logger,
	}
}

type orderDetailResponse struct {
	*domain.Order
	History []*domain.StatusChange `json:"history"`
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orders, err := h.orderService.ListOrders(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, h.logger, err, "failed to get orders")
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || orderID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, history, err := h.orderService.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		writeDomainError(w, r, h.logger, err, "failed to get order")
		return
	}

	writeJSON(w, http.StatusOK, orderDetailResponse{Order: order, History: history})
}
