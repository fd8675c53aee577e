package service

import (
	"context"
	"fmt"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
)

// orderListLimit caps the orders returned to a user
const orderListLimit = 100

// OrderQueryService implements domain.OrderService
type OrderQueryService struct {
	orders domain.OrderRepository
}

// NewOrderQueryService creates an OrderQueryService
func NewOrderQueryService(orders domain.OrderRepository) *OrderQueryService {
	return &OrderQueryService{orders: orders}
}

// ListOrders returns the newest orders of a user
func (s *OrderQueryService) ListOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID, orderListLimit)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get orders for user %d: %w", userID, err)
	}

	return orders, nil
}

// GetOrder returns one of the user's orders with its status history.
// Orders of other users are reported as not found.
func (s *OrderQueryService) GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, []*domain.StatusChange, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if order.UserID != userID {
		return nil, nil, domain.ErrOrderNotFound
	}

	history, err := s.orders.History(ctx, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("order service: failed to get history of order %d: %w", orderID, err)
	}

	return order, history, nil
}
