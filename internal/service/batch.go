package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/utils/msisdn"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Batch defaults
const (
	DefaultMaxBatchSize     = 100
	DefaultPurchaseCooldown = 30 * time.Minute
)

// BatchConfig limits bulk purchases
type BatchConfig struct {
	MaxBatchSize     int
	PurchaseCooldown time.Duration
}

// BatchProcessor implements domain.BatchService
type BatchProcessor struct {
	SagaDeps
	batches domain.BatchRepository
	cfg     BatchConfig
	now     func() time.Time
}

// NewBatchProcessor creates a BatchProcessor
func NewBatchProcessor(deps SagaDeps, batches domain.BatchRepository, cfg BatchConfig) *BatchProcessor {
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = DefaultMaxBatchSize
	}
	if cfg.PurchaseCooldown <= 0 {
		cfg.PurchaseCooldown = DefaultPurchaseCooldown
	}
	return &BatchProcessor{SagaDeps: deps, batches: batches, cfg: cfg, now: time.Now}
}

// plannedOrder is a validated candidate with its provider
type plannedOrder struct {
	candidate domain.ClassifiedCandidate
	client    domain.ProviderClient
	skip      bool
}

// Submit reserves the total cost of all valid candidates in one debit,
// dispatches them and refunds every order that did not go through.
func (p *BatchProcessor) Submit(ctx context.Context, req domain.BatchRequest) (*domain.BatchResult, error) {
	if len(req.Orders) == 0 {
		return nil, domain.NewValidationError("orders", "batch is empty")
	}
	if len(req.Orders) > p.cfg.MaxBatchSize {
		return nil, domain.NewValidationError("orders", fmt.Sprintf("at most %d orders per batch", p.cfg.MaxBatchSize))
	}

	planned, skipped, err := p.classify(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(planned) == 0 {
		sort.Slice(skipped, func(i, j int) bool { return skipped[i].Index < skipped[j].Index })
		return nil, &domain.BatchRejectedError{Skipped: skipped}
	}

	batch, orders, clients, err := p.reserve(ctx, req.UserID, planned)
	if err != nil {
		return nil, err
	}

	result := &domain.BatchResult{Batch: batch, Skipped: skipped}

	// Phase B runs to completion even if the caller goes away
	ctx = context.WithoutCancel(ctx)

	if err := p.batches.MarkDispatched(ctx, batch.ID); err != nil {
		p.Logger.Error("failed to mark batch dispatched",
			zap.String("batch_id", batch.ID),
			zap.Int64("user_id", batch.UserID),
			zap.Stringer("amount", batch.TotalCost),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: batch %s could not be dispatched", domain.ErrPersistence, batch.Reference)
	}

	groups := make(map[domain.Provider][]*domain.Order)
	var providers []domain.Provider
	for _, o := range orders {
		if o.Status == domain.OrderStatusWaiting {
			result.Waiting = append(result.Waiting, o)
			continue
		}
		o.Status = domain.OrderStatusProcessing
		if _, ok := groups[o.Gateway]; !ok {
			providers = append(providers, o.Gateway)
		}
		groups[o.Gateway] = append(groups[o.Gateway], o)
	}

	refunded := decimal.Zero
	for _, name := range providers {
		results := p.dispatchGroup(ctx, clients[name], groups[name])
		for _, o := range groups[name] {
			refunded = refunded.Add(p.reconcile(ctx, result, o, results[o.Reference]))
		}
	}

	if err := p.batches.Finish(ctx, batch.ID, domain.BatchStatusReconciled, refunded); err != nil {
		p.Logger.Error("failed to close batch",
			zap.String("batch_id", batch.ID),
			zap.Stringer("refunded", refunded),
			zap.Error(err),
		)
	}

	batch.Status = domain.BatchStatusReconciled
	batch.RefundedAmount = refunded
	result.Charged = batch.TotalCost.Sub(refunded)

	p.Logger.Info("batch processed",
		zap.String("batch_id", batch.ID),
		zap.Int("completed", len(result.Completed)),
		zap.Int("refunded", len(result.Refunded)),
		zap.Int("pending", len(result.Pending)),
		zap.Int("waiting", len(result.Waiting)),
		zap.Int("skipped", len(result.Skipped)),
		zap.Stringer("charged", result.Charged),
	)

	return result, nil
}

// classify validates each candidate and drops duplicates and numbers in cooldown
func (p *BatchProcessor) classify(ctx context.Context, req domain.BatchRequest) ([]plannedOrder, []domain.ClassifiedCandidate, error) {
	var (
		planned []plannedOrder
		skipped []domain.ClassifiedCandidate
	)

	policies := make(map[domain.Network]domain.InventoryRecord)
	seen := make(map[string]bool)

	for i, c := range req.Orders {
		cand := domain.ClassifiedCandidate{Index: i, Phone: c.Phone, Network: c.Network, Capacity: c.Capacity}

		invalid := func(reason string) {
			cand.Class = domain.CandidateInvalid
			cand.Reason = reason
			skipped = append(skipped, cand)
		}

		phone, err := msisdn.Normalize(c.Phone)
		if err != nil {
			invalid("invalid Ghana mobile number")
			continue
		}
		cand.Phone = phone

		if !c.Network.Valid() {
			invalid(fmt.Sprintf("unsupported network %q", c.Network))
			continue
		}

		price, ok := p.Prices.Lookup(c.Network, c.Capacity)
		if !ok {
			invalid(fmt.Sprintf("no %dGB bundle for %s", c.Capacity, c.Network))
			continue
		}
		cand.Price = price
		if c.Price != nil && !c.Price.Equal(price) {
			invalid("price does not match the current price list")
			continue
		}

		client, err := p.Router.Route(c.Network, req.Gateway)
		if err != nil {
			invalid(err.Error())
			continue
		}

		policy, ok := policies[c.Network]
		if !ok {
			policy = p.Inventory.Resolve(ctx, c.Network)
			policies[c.Network] = policy
		}
		if !policy.InStock {
			invalid(fmt.Sprintf("%s is out of stock", c.Network))
			continue
		}

		if seen[phone] {
			cand.Class = domain.CandidateDuplicate
			cand.Reason = "number appears more than once in the batch"
			skipped = append(skipped, cand)
			continue
		}
		seen[phone] = true

		cand.Class = domain.CandidateValidated
		planned = append(planned, plannedOrder{
			candidate: cand,
			client:    client,
			skip:      policy.SkipProvider && !c.Network.AlwaysLive(),
		})
	}

	if len(planned) == 0 {
		return nil, skipped, nil
	}

	phones := make([]string, len(planned))
	for i, po := range planned {
		phones[i] = po.candidate.Phone
	}

	recent, err := p.Orders.RecentByPhones(ctx, phones, p.now().Add(-p.cfg.PurchaseCooldown))
	if err != nil {
		return nil, nil, fmt.Errorf("batch: failed to check recent purchases: %w", err)
	}

	active, err := p.Guard.Active(ctx, phones)
	if err != nil {
		p.Logger.Warn("provider cooldown check failed, relying on order history", zap.Error(err))
		active = nil
	}

	kept := planned[:0]
	for _, po := range planned {
		phone := po.candidate.Phone
		if _, ok := recent[phone]; ok {
			po.candidate.Class = domain.CandidateRecentlyPurchased
			po.candidate.Reason = "number received a bundle recently, try again later"
			skipped = append(skipped, po.candidate)
			continue
		}
		if active[phone] {
			po.candidate.Class = domain.CandidateRecentlyPurchased
			po.candidate.Reason = "duplicate order, wait 5 minutes before retrying this number"
			skipped = append(skipped, po.candidate)
			continue
		}
		kept = append(kept, po)
	}

	return kept, skipped, nil
}

// reserve persists the batch, its orders and the single debit
func (p *BatchProcessor) reserve(ctx context.Context, userID int64, planned []plannedOrder) (*domain.BatchReservation, []*domain.Order, map[domain.Provider]domain.ProviderClient, error) {
	total := decimal.Zero
	orders := make([]*domain.Order, 0, len(planned))
	clients := make(map[domain.Provider]domain.ProviderClient)

	for _, po := range planned {
		status := domain.OrderStatusPending
		if po.skip {
			status = domain.OrderStatusWaiting
		}

		orders = append(orders, &domain.Order{
			UserID:       userID,
			Reference:    newReference(),
			Phone:        po.candidate.Phone,
			Network:      po.candidate.Network,
			Capacity:     po.candidate.Capacity,
			Price:        po.candidate.Price,
			Gateway:      po.client.Name(),
			Status:       status,
			SkipProvider: po.skip,
		})
		clients[po.client.Name()] = po.client
		total = total.Add(po.candidate.Price)
	}

	batch := &domain.BatchReservation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Reference: "BATCH-" + uuid.NewString(),
		TotalCost: total,
	}

	batch, orders, err := p.batches.CreateWithReservation(ctx, batch, orders)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) || errors.Is(err, domain.ErrAccountNotFound) ||
			errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrDuplicateReference) {
			return nil, nil, nil, err
		}
		return nil, nil, nil, fmt.Errorf("batch: failed to reserve batch: %w", err)
	}

	return batch, orders, clients, nil
}

// dispatchGroup sends the orders of one provider. A failed bulk call marks
// every order of the group rejected.
func (p *BatchProcessor) dispatchGroup(ctx context.Context, client domain.ProviderClient, orders []*domain.Order) map[string]domain.ProviderResult {
	results := make(map[string]domain.ProviderResult, len(orders))

	if placer, ok := client.(domain.BulkPlacer); ok && len(orders) > 1 {
		req := make([]domain.ProviderOrder, len(orders))
		for i, o := range orders {
			req[i] = o.ProviderOrder()
		}

		bulk, err := p.Dispatcher.DispatchBulk(ctx, client.Name(), placer, req)
		for _, o := range orders {
			switch {
			case err != nil:
				results[o.Reference] = domain.Rejected("could not complete purchase, try again later", err.Error())
			default:
				res, ok := bulk.Results[o.Reference]
				if !ok {
					res = domain.Rejected("could not complete purchase, try again later", "missing from provider response")
				}
				results[o.Reference] = res
			}
		}
		return results
	}

	for _, o := range orders {
		results[o.Reference] = p.Dispatcher.Dispatch(ctx, client, o.ProviderOrder())
	}

	return results
}

// reconcile applies one provider result and returns the amount refunded
func (p *BatchProcessor) reconcile(ctx context.Context, result *domain.BatchResult, o *domain.Order, res domain.ProviderResult) decimal.Decimal {
	switch res.Outcome {
	case domain.OutcomeAccepted:
		p.markCooldown(ctx, o.Phone)
		err := p.Orders.Transition(ctx, domain.StatusTransition{
			OrderID:     o.ID,
			From:        domain.OrderStatusProcessing,
			To:          domain.OrderStatusCompleted,
			ProviderRef: res.ProviderRef,
			Actor:       domain.ActorSystem,
			Note:        "accepted by " + string(o.Gateway),
		})
		if err != nil {
			p.Logger.Error("provider accepted order but completion was not recorded",
				zap.String("provider", string(o.Gateway)),
				zap.String("provider_ref", res.ProviderRef),
				zap.String("reference", o.Reference),
				zap.Int64("user_id", o.UserID),
				zap.Stringer("amount", o.Price),
				zap.Error(err),
			)
			result.Pending = append(result.Pending, o)
			return decimal.Zero
		}
		o.Status = domain.OrderStatusCompleted
		o.ProviderRef = res.ProviderRef
		result.Completed = append(result.Completed, o)
		p.Notifier.Publish(ctx, domain.NewOrderEvent(o, ""))
		return decimal.Zero

	case domain.OutcomeRejected:
		_, err := p.Compensator.Compensate(ctx, domain.Compensation{
			Order:  o,
			Amount: o.Price,
			Reason: res.Reason,
			Target: domain.OrderStatusRefunded,
			Actor:  domain.ActorSystem,
		})
		if err != nil {
			p.Logger.Error("failed to refund rejected batch order",
				zap.String("reference", o.Reference),
				zap.Int64("user_id", o.UserID),
				zap.Stringer("amount", o.Price),
				zap.Error(err),
			)
			result.Pending = append(result.Pending, o)
			return decimal.Zero
		}
		o.Status = domain.OrderStatusRefunded
		result.Refunded = append(result.Refunded, o)
		return o.Price

	default:
		p.markCooldown(ctx, o.Phone)
		result.Pending = append(result.Pending, o)
		p.Notifier.Publish(ctx, domain.NewOrderEvent(o, ""))
		return decimal.Zero
	}
}
