package service

import (
	"context"
	"fmt"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"go.uber.org/zap"
)

// AdminOrderService implements domain.AdminService
type AdminOrderService struct {
	orders      domain.OrderRepository
	compensator domain.Compensator
	notifier    domain.Notifier
	logger      *zap.Logger
}

// NewAdminOrderService creates an AdminOrderService
func NewAdminOrderService(orders domain.OrderRepository, compensator domain.Compensator, notifier domain.Notifier, logger *zap.Logger) *AdminOrderService {
	return &AdminOrderService{orders: orders, compensator: compensator, notifier: notifier, logger: logger}
}

// OverrideStatus sets an order's status on behalf of an administrator.
// Moving an order to failed or refunded credits the buyer through the refund engine.
// Compensated orders are final.
func (s *AdminOrderService) OverrideStatus(ctx context.Context, orderID int64, status domain.OrderStatus, actor, note string) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status.Compensated() {
		return nil, fmt.Errorf("%w: order %s is already %s", domain.ErrInvalidTransition, order.Reference, order.Status)
	}
	if order.Status == status {
		return order, nil
	}

	if status.Compensated() {
		reason := note
		if reason == "" {
			reason = "status changed to " + string(status) + " by administrator"
		}
		_, err := s.compensator.Compensate(ctx, domain.Compensation{
			Order:  order,
			Amount: order.Price,
			Reason: reason,
			Target: status,
			Actor:  actor,
		})
		if err != nil {
			return nil, err
		}
		order.Status = status
		return order, nil
	}

	err = s.orders.Transition(ctx, domain.StatusTransition{
		OrderID: order.ID,
		From:    order.Status,
		To:      status,
		Actor:   actor,
		Note:    note,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status overridden",
		zap.String("reference", order.Reference),
		zap.String("from", string(order.Status)),
		zap.String("to", string(status)),
		zap.String("actor", actor),
	)

	order.Status = status
	s.notifier.Publish(ctx, domain.NewOrderEvent(order, note))

	return order, nil
}
