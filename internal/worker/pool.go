package worker

import (
	"context"
	"sync"
	"time"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"go.uber.org/zap"
)

// Pool defaults
const (
	DefaultWorkers        = 4
	DefaultQueueSize      = 100
	DefaultScanInterval   = time.Minute
	DefaultReconcileAfter = 15 * time.Minute
)

// PoolConfig sizes the reconciliation pool
type PoolConfig struct {
	Workers        int
	QueueSize      int
	ScanInterval   time.Duration
	ReconcileAfter time.Duration
}

// Pool reconciles orders left in pending or processing and batches
// left reserved after a crash or an unknown provider outcome.
type Pool struct {
	cfg         PoolConfig
	queue       chan *domain.Order
	orders      domain.OrderRepository
	batches     domain.BatchRepository
	router      domain.ProviderRouter
	compensator domain.Compensator
	notifier    domain.Notifier
	logger      *zap.Logger
	wg          sync.WaitGroup
	now         func() time.Time
}

// NewPool creates a worker pool
func NewPool(
	cfg PoolConfig,
	orders domain.OrderRepository,
	batches domain.BatchRepository,
	router domain.ProviderRouter,
	compensator domain.Compensator,
	notifier domain.Notifier,
	logger *zap.Logger,
) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.ScanInterval <= 0 {
		cfg.ScanInterval = DefaultScanInterval
	}
	if cfg.ReconcileAfter <= 0 {
		cfg.ReconcileAfter = DefaultReconcileAfter
	}

	return &Pool{
		cfg:         cfg,
		queue:       make(chan *domain.Order, cfg.QueueSize),
		orders:      orders,
		batches:     batches,
		router:      router,
		compensator: compensator,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// Start runs the workers and the scanner until ctx is cancelled
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop waits for the workers to exit. Cancel the Start context first.
func (p *Pool) Stop() {
	p.wg.Wait()
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case order := <-p.queue:
			p.processOrder(ctx, order)
		}
	}
}

func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanStaleOrders(ctx)
			p.scanStaleBatches(ctx)
		}
	}
}

// scanStaleOrders queues orders that have not moved for ReconcileAfter.
// Pending orders are listed on their own so processing orders the provider
// cannot settle never crowd them out of the scan.
func (p *Pool) scanStaleOrders(ctx context.Context) {
	olderThan := p.now().Add(-p.cfg.ReconcileAfter)

	for _, status := range []domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusProcessing} {
		orders, err := p.orders.ListStale(ctx, []domain.OrderStatus{status}, olderThan, p.cfg.QueueSize)
		if err != nil {
			p.logger.Error("failed to get stale orders", zap.String("status", string(status)), zap.Error(err))
			continue
		}

		for _, order := range orders {
			select {
			case p.queue <- order:
			case <-ctx.Done():
				return
			default:
				p.logger.Warn("queue is full, skipping order", zap.String("reference", order.Reference))
			}
		}
	}
}

// scanStaleBatches closes batches that were reserved but never dispatched.
// Their orders are still pending and get refunded one by one.
func (p *Pool) scanStaleBatches(ctx context.Context) {
	batches, err := p.batches.ListStale(ctx, domain.BatchStatusReserved, p.now().Add(-p.cfg.ReconcileAfter), p.cfg.QueueSize)
	if err != nil {
		p.logger.Error("failed to get stale batches", zap.Error(err))
		return
	}

	for _, b := range batches {
		if err := p.batches.Finish(ctx, b.ID, domain.BatchStatusAbandoned, b.RefundedAmount); err != nil {
			p.logger.Error("failed to abandon batch", zap.String("batch_id", b.ID), zap.Error(err))
			continue
		}
		p.logger.Warn("batch abandoned",
			zap.String("batch_id", b.ID),
			zap.Int64("user_id", b.UserID),
			zap.Stringer("amount", b.TotalCost),
		)
	}
}

// processOrder settles one stale order
func (p *Pool) processOrder(ctx context.Context, order *domain.Order) {
	p.logger.Debug("reconciling order", zap.String("reference", order.Reference), zap.String("status", string(order.Status)))

	switch order.Status {
	case domain.OrderStatusPending:
		// never handed to a provider
		p.compensate(ctx, order, domain.OrderStatusFailed, "order was not sent to the provider")
	case domain.OrderStatusProcessing:
		p.checkProvider(ctx, order)
	}
}

func (p *Pool) checkProvider(ctx context.Context, order *domain.Order) {
	client, ok := p.router.Get(order.Gateway)
	if !ok {
		p.logger.Warn("order has unknown gateway", zap.String("reference", order.Reference), zap.String("provider", string(order.Gateway)))
		p.postpone(ctx, order)
		return
	}
	checker, ok := client.(domain.StatusChecker)
	if !ok {
		p.postpone(ctx, order)
		return
	}

	ref := order.ProviderRef
	if ref == "" {
		ref = order.Reference
	}

	res := checker.CheckStatus(ctx, ref)
	switch res.Outcome {
	case domain.OutcomeAccepted:
		if res.ProviderRef == "" {
			res.ProviderRef = order.ProviderRef
		}
		err := p.orders.Transition(ctx, domain.StatusTransition{
			OrderID:     order.ID,
			From:        domain.OrderStatusProcessing,
			To:          domain.OrderStatusCompleted,
			ProviderRef: res.ProviderRef,
			Actor:       domain.ActorReconciler,
			Note:        "confirmed by " + string(order.Gateway),
		})
		if err != nil {
			p.logger.Error("failed to complete confirmed order",
				zap.String("reference", order.Reference),
				zap.Error(err),
			)
			return
		}
		order.Status = domain.OrderStatusCompleted
		order.ProviderRef = res.ProviderRef
		p.notifier.Publish(ctx, domain.NewOrderEvent(order, ""))
		p.logger.Info("order confirmed by provider", zap.String("reference", order.Reference))

	case domain.OutcomeRejected:
		p.compensate(ctx, order, domain.OrderStatusRefunded, res.Reason)

	default:
		p.logger.Debug("order outcome still unknown", zap.String("reference", order.Reference), zap.String("detail", res.Detail))
		p.postpone(ctx, order)
	}
}

// postpone sends an unresolved order to the back of the next scans.
// It stays processing until the provider or an admin settles it.
func (p *Pool) postpone(ctx context.Context, order *domain.Order) {
	if err := p.orders.Postpone(ctx, order.ID); err != nil {
		p.logger.Error("failed to postpone order", zap.String("reference", order.Reference), zap.Error(err))
	}
}

func (p *Pool) compensate(ctx context.Context, order *domain.Order, target domain.OrderStatus, reason string) {
	_, err := p.compensator.Compensate(ctx, domain.Compensation{
		Order:  order,
		Amount: order.Price,
		Reason: reason,
		Target: target,
		Actor:  domain.ActorReconciler,
	})
	if err != nil {
		p.logger.Error("failed to refund stale order",
			zap.String("reference", order.Reference),
			zap.Int64("user_id", order.UserID),
			zap.Stringer("amount", order.Price),
			zap.Error(err),
		)
	}
}
