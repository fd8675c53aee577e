package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/metrics"
	"go.uber.org/zap"
)

// RefundEngine implements domain.Compensator
type RefundEngine struct {
	orders   domain.OrderRepository
	notifier domain.Notifier
	logger   *zap.Logger
}

// NewRefundEngine creates a RefundEngine
func NewRefundEngine(orders domain.OrderRepository, notifier domain.Notifier, logger *zap.Logger) *RefundEngine {
	return &RefundEngine{orders: orders, notifier: notifier, logger: logger}
}

// Compensate credits the order's price back to its owner and moves the order
// to the target status. A second attempt on the same order returns nil, nil.
func (e *RefundEngine) Compensate(ctx context.Context, c domain.Compensation) (*domain.LedgerEntry, error) {
	if c.Order == nil {
		return nil, domain.NewValidationError("order", "missing order")
	}
	if c.Amount.IsZero() {
		c.Amount = c.Order.Price
	}
	if c.Target == "" {
		c.Target = domain.OrderStatusRefunded
	}
	if c.Actor == "" {
		c.Actor = domain.ActorSystem
	}

	entry, err := e.orders.Refund(ctx, c)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyCompensated) {
			e.logger.Info("order already compensated",
				zap.String("reference", c.Order.Reference),
				zap.String("actor", c.Actor),
			)
			return nil, nil
		}
		return nil, fmt.Errorf("refund engine: failed to compensate order %s: %w", c.Order.Reference, err)
	}

	c.Order.Status = c.Target
	metrics.ObserveRefund(string(c.Target))

	e.logger.Info("order compensated",
		zap.String("reference", c.Order.Reference),
		zap.Int64("user_id", c.Order.UserID),
		zap.Stringer("amount", c.Amount),
		zap.String("status", string(c.Target)),
		zap.String("actor", c.Actor),
	)

	e.notifier.Publish(ctx, domain.NewOrderEvent(c.Order, c.Reason))

	return entry, nil
}
