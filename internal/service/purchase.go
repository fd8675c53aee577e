package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/metrics"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/utils/msisdn"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Messages returned with non-failed purchase outcomes
const (
	MessagePendingReview = "order submitted, awaiting provider confirmation"
	MessageWaiting       = "order received and queued for delivery"
)

// SagaDeps are the collaborators shared by PurchaseSaga and BatchProcessor
type SagaDeps struct {
	Orders      domain.OrderRepository
	Prices      domain.PriceLookup
	Router      domain.ProviderRouter
	Inventory   domain.InventoryResolver
	Compensator domain.Compensator
	Guard       domain.CooldownGuard
	Notifier    domain.Notifier
	Dispatcher  *Dispatcher
	Logger      *zap.Logger
}

// PurchaseSaga implements domain.PurchaseService
type PurchaseSaga struct {
	SagaDeps
}

// NewPurchaseSaga creates a PurchaseSaga
func NewPurchaseSaga(deps SagaDeps) *PurchaseSaga {
	return &PurchaseSaga{SagaDeps: deps}
}

// newReference generates the internal order reference sent to providers
func newReference() string {
	return "DATA-" + uuid.NewString()
}

// Purchase validates the request, debits the wallet together with the order,
// dispatches it to the provider and reconciles the outcome.
func (s *PurchaseSaga) Purchase(ctx context.Context, req domain.PurchaseRequest) (*domain.PurchaseResult, error) {
	if req.IdempotencyKey != "" {
		existing, err := s.Orders.GetByIdempotencyKey(ctx, req.UserID, req.IdempotencyKey)
		if err == nil {
			return replayFor(existing, req)
		}
		if !errors.Is(err, domain.ErrOrderNotFound) {
			return nil, fmt.Errorf("purchase: failed to look up idempotency key: %w", err)
		}
	}

	order, client, err := s.prepare(ctx, req)
	if err != nil {
		metrics.ObservePurchase(string(req.Network), string(domain.PurchaseFailed))
		return nil, err
	}

	created, err := s.Orders.CreateWithReservation(ctx, order, domain.ActorSystem)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateReference) && req.IdempotencyKey != "" {
			existing, getErr := s.Orders.GetByIdempotencyKey(ctx, req.UserID, req.IdempotencyKey)
			if getErr == nil {
				return replayFor(existing, req)
			}
		}
		metrics.ObservePurchase(string(req.Network), string(domain.PurchaseFailed))
		if errors.Is(err, domain.ErrInsufficientBalance) || errors.Is(err, domain.ErrAccountNotFound) ||
			errors.Is(err, domain.ErrDuplicateReference) || errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("purchase: failed to reserve order: %w", err)
	}

	if created.Status == domain.OrderStatusWaiting {
		s.Logger.Info("order recorded without provider call",
			zap.String("reference", created.Reference),
			zap.String("network", string(created.Network)),
		)
		s.Notifier.Publish(ctx, domain.NewOrderEvent(created, ""))
		metrics.ObservePurchase(string(created.Network), string(domain.PurchaseCompleted))
		return &domain.PurchaseResult{Order: created, Outcome: domain.PurchaseCompleted, Message: MessageWaiting}, nil
	}

	// The wallet is already debited: the rest of the saga must run to the end
	// even if the caller goes away.
	return s.dispatch(context.WithoutCancel(ctx), created, client)
}

// prepare runs every check that must pass before the wallet is touched
func (s *PurchaseSaga) prepare(ctx context.Context, req domain.PurchaseRequest) (*domain.Order, domain.ProviderClient, error) {
	phone, err := msisdn.Normalize(req.Phone)
	if err != nil {
		return nil, nil, domain.NewValidationError("phone_number", "invalid Ghana mobile number")
	}
	if !req.Network.Valid() {
		return nil, nil, domain.NewValidationError("network", fmt.Sprintf("unsupported network %q", req.Network))
	}
	if req.Capacity <= 0 {
		return nil, nil, domain.NewValidationError("capacity", "must be positive")
	}

	price, ok := s.Prices.Lookup(req.Network, req.Capacity)
	if !ok {
		return nil, nil, domain.NewValidationError("capacity", fmt.Sprintf("no %dGB bundle for %s", req.Capacity, req.Network))
	}

	client, err := s.Router.Route(req.Network, req.Gateway)
	if err != nil {
		return nil, nil, err
	}

	policy := s.Inventory.Resolve(ctx, req.Network)
	if !policy.InStock {
		return nil, nil, domain.ErrOutOfStock
	}

	status := domain.OrderStatusPending
	skip := policy.SkipProvider && !req.Network.AlwaysLive()
	if skip {
		status = domain.OrderStatusWaiting
	}

	order := &domain.Order{
		UserID:         req.UserID,
		Reference:      newReference(),
		IdempotencyKey: req.IdempotencyKey,
		Phone:          phone,
		Network:        req.Network,
		Capacity:       req.Capacity,
		Price:          price,
		Gateway:        client.Name(),
		Status:         status,
		SkipProvider:   skip,
	}

	return order, client, nil
}

func (s *PurchaseSaga) dispatch(ctx context.Context, order *domain.Order, client domain.ProviderClient) (*domain.PurchaseResult, error) {
	err := s.Orders.Transition(ctx, domain.StatusTransition{
		OrderID: order.ID,
		From:    domain.OrderStatusPending,
		To:      domain.OrderStatusProcessing,
		Actor:   domain.ActorSystem,
		Note:    "dispatching to " + string(client.Name()),
	})
	if err != nil {
		// Not sent to the provider: the reconciliation sweep refunds the pending order
		s.Logger.Error("failed to mark order processing",
			zap.String("reference", order.Reference),
			zap.Int64("user_id", order.UserID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: order %s could not be dispatched", domain.ErrPersistence, order.Reference)
	}
	order.Status = domain.OrderStatusProcessing

	res := s.Dispatcher.Dispatch(ctx, client, order.ProviderOrder())

	switch res.Outcome {
	case domain.OutcomeAccepted:
		return s.complete(ctx, order, client.Name(), res)
	case domain.OutcomeRejected:
		return nil, s.reject(ctx, order, res)
	default:
		s.markCooldown(ctx, order.Phone)
		s.Logger.Warn("order awaiting provider confirmation",
			zap.String("reference", order.Reference),
			zap.String("provider", string(client.Name())),
			zap.String("detail", res.Detail),
		)
		s.Notifier.Publish(ctx, domain.NewOrderEvent(order, ""))
		metrics.ObservePurchase(string(order.Network), string(domain.PurchasePendingReview))
		return &domain.PurchaseResult{Order: order, Outcome: domain.PurchasePendingReview, Message: MessagePendingReview}, nil
	}
}

func (s *PurchaseSaga) complete(ctx context.Context, order *domain.Order, provider domain.Provider, res domain.ProviderResult) (*domain.PurchaseResult, error) {
	s.markCooldown(ctx, order.Phone)

	err := s.Orders.Transition(ctx, domain.StatusTransition{
		OrderID:     order.ID,
		From:        domain.OrderStatusProcessing,
		To:          domain.OrderStatusCompleted,
		ProviderRef: res.ProviderRef,
		Actor:       domain.ActorSystem,
		Note:        "accepted by " + string(provider),
	})
	if err != nil {
		s.Logger.Error("provider accepted order but completion was not recorded",
			zap.String("provider", string(provider)),
			zap.String("provider_ref", res.ProviderRef),
			zap.String("reference", order.Reference),
			zap.Int64("user_id", order.UserID),
			zap.Stringer("amount", order.Price),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: order %s accepted by provider but not recorded", domain.ErrPersistence, order.Reference)
	}

	order.Status = domain.OrderStatusCompleted
	order.ProviderRef = res.ProviderRef

	s.Notifier.Publish(ctx, domain.NewOrderEvent(order, ""))
	metrics.ObservePurchase(string(order.Network), string(domain.PurchaseCompleted))

	return &domain.PurchaseResult{Order: order, Outcome: domain.PurchaseCompleted}, nil
}

func (s *PurchaseSaga) reject(ctx context.Context, order *domain.Order, res domain.ProviderResult) error {
	metrics.ObservePurchase(string(order.Network), string(domain.PurchaseFailed))

	_, err := s.Compensator.Compensate(ctx, domain.Compensation{
		Order:  order,
		Amount: order.Price,
		Reason: res.Reason,
		Target: domain.OrderStatusFailed,
		Actor:  domain.ActorSystem,
	})
	if err != nil {
		s.Logger.Error("failed to refund rejected order",
			zap.String("reference", order.Reference),
			zap.Int64("user_id", order.UserID),
			zap.Stringer("amount", order.Price),
			zap.Error(err),
		)
		return fmt.Errorf("%w: refund of order %s failed", domain.ErrPersistence, order.Reference)
	}

	return &domain.ProviderRejectedError{Reference: order.Reference, Reason: res.Reason}
}

func (d *SagaDeps) markCooldown(ctx context.Context, phones ...string) {
	if len(phones) == 0 {
		return
	}
	if err := d.Guard.Mark(ctx, phones); err != nil {
		d.Logger.Warn("failed to record provider cooldown", zap.Strings("phones", phones), zap.Error(err))
	}
}

// replayFor replays the stored order only when req asks for the same bundle
// to the same number. Reusing a key for a different purchase is a conflict.
func replayFor(order *domain.Order, req domain.PurchaseRequest) (*domain.PurchaseResult, error) {
	if !sameRequest(order, req) {
		return nil, fmt.Errorf("%w: key %q belongs to order %s", domain.ErrIdempotencyMismatch, req.IdempotencyKey, order.Reference)
	}
	return replay(order), nil
}

func sameRequest(order *domain.Order, req domain.PurchaseRequest) bool {
	phone, err := msisdn.Normalize(req.Phone)
	if err != nil || phone != order.Phone {
		return false
	}
	if req.Gateway != "" && req.Gateway != order.Gateway {
		return false
	}
	return req.Network == order.Network && req.Capacity == order.Capacity
}

// replay reports the stored outcome of an earlier request with the same idempotency key
func replay(order *domain.Order) *domain.PurchaseResult {
	result := &domain.PurchaseResult{Order: order, Replayed: true}

	switch order.Status {
	case domain.OrderStatusCompleted, domain.OrderStatusDelivered:
		result.Outcome = domain.PurchaseCompleted
	case domain.OrderStatusWaiting:
		result.Outcome = domain.PurchaseCompleted
		result.Message = MessageWaiting
	case domain.OrderStatusFailed, domain.OrderStatusRefunded:
		result.Outcome = domain.PurchaseFailed
		result.Message = "order failed and was refunded"
	default:
		result.Outcome = domain.PurchasePendingReview
		result.Message = MessagePendingReview
	}

	return result
}
