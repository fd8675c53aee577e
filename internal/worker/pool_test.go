package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	domainmocks "github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type poolMocks struct {
	orders      *domainmocks.OrderRepositoryMock
	batches     *domainmocks.BatchRepositoryMock
	router      *domainmocks.ProviderRouterMock
	compensator *domainmocks.CompensatorMock
	notifier    *domainmocks.NotifierMock
}

func newTestPool(t *testing.T) (*poolMocks, *Pool) {
	m := &poolMocks{
		orders:      domainmocks.NewOrderRepositoryMock(t),
		batches:     domainmocks.NewBatchRepositoryMock(t),
		router:      domainmocks.NewProviderRouterMock(t),
		compensator: domainmocks.NewCompensatorMock(t),
		notifier:    domainmocks.NewNotifierMock(t),
	}
	logger, _ := zap.NewDevelopment()

	pool := NewPool(PoolConfig{Workers: 1, QueueSize: 10}, m.orders, m.batches, m.router, m.compensator, m.notifier, logger)
	return m, pool
}

func staleOrder(status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:        1,
		UserID:    1,
		Reference: "DATA-1",
		Network:   domain.NetworkTelecel,
		Price:     decimal.RequireFromString("24.00"),
		Gateway:   domain.ProviderTelecel,
		Status:    status,
	}
}

func TestPool_ProcessOrder_Pending(t *testing.T) {
	m, pool := newTestPool(t)
	order := staleOrder(domain.OrderStatusPending)

	m.compensator.EXPECT().Compensate(mock.Anything, mock.MatchedBy(func(c domain.Compensation) bool {
		return c.Order == order && c.Target == domain.OrderStatusFailed && c.Actor == domain.ActorReconciler
	})).Return(&domain.LedgerEntry{}, nil).Once()

	pool.processOrder(context.Background(), order)
}

func TestPool_ProcessOrder_Processing(t *testing.T) {
	ctx := context.Background()

	t.Run("Confirmed", func(t *testing.T) {
		m, pool := newTestPool(t)
		client := domainmocks.NewReconcilableProviderClientMock(t)
		order := staleOrder(domain.OrderStatusProcessing)

		m.router.EXPECT().Get(domain.ProviderTelecel).Return(client, true).Once()
		client.EXPECT().CheckStatus(mock.Anything, "DATA-1").Return(domain.Accepted("TC-9")).Once()
		m.orders.EXPECT().Transition(mock.Anything, domain.StatusTransition{
			OrderID:     1,
			From:        domain.OrderStatusProcessing,
			To:          domain.OrderStatusCompleted,
			ProviderRef: "TC-9",
			Actor:       domain.ActorReconciler,
			Note:        "confirmed by telecel",
		}).Return(nil).Once()
		m.notifier.EXPECT().Publish(mock.Anything, mock.Anything).Return().Once()

		pool.processOrder(ctx, order)
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	})

	t.Run("Rejected", func(t *testing.T) {
		m, pool := newTestPool(t)
		client := domainmocks.NewReconcilableProviderClientMock(t)
		order := staleOrder(domain.OrderStatusProcessing)
		order.ProviderRef = "TC-9"

		m.router.EXPECT().Get(domain.ProviderTelecel).Return(client, true).Once()
		client.EXPECT().CheckStatus(mock.Anything, "TC-9").Return(domain.Rejected("order failed", "cancelled")).Once()
		m.compensator.EXPECT().Compensate(mock.Anything, mock.MatchedBy(func(c domain.Compensation) bool {
			return c.Target == domain.OrderStatusRefunded && c.Reason == "order failed"
		})).Return(&domain.LedgerEntry{}, nil).Once()

		pool.processOrder(ctx, order)
	})

	t.Run("Still unknown", func(t *testing.T) {
		m, pool := newTestPool(t)
		client := domainmocks.NewReconcilableProviderClientMock(t)

		m.router.EXPECT().Get(domain.ProviderTelecel).Return(client, true).Once()
		client.EXPECT().CheckStatus(mock.Anything, "DATA-1").Return(domain.Transient("processing")).Once()
		m.orders.EXPECT().Postpone(mock.Anything, int64(1)).Return(nil).Once()

		pool.processOrder(ctx, staleOrder(domain.OrderStatusProcessing))
	})

	t.Run("Provider without status endpoint", func(t *testing.T) {
		m, pool := newTestPool(t)
		client := domainmocks.NewProviderClientMock(t)

		m.router.EXPECT().Get(domain.ProviderTelecel).Return(client, true).Once()
		m.orders.EXPECT().Postpone(mock.Anything, int64(1)).Return(nil).Once()

		pool.processOrder(ctx, staleOrder(domain.OrderStatusProcessing))
	})

	t.Run("Unknown gateway", func(t *testing.T) {
		m, pool := newTestPool(t)

		m.router.EXPECT().Get(domain.ProviderTelecel).Return(nil, false).Once()
		m.orders.EXPECT().Postpone(mock.Anything, int64(1)).Return(errors.New("db error")).Once()

		pool.processOrder(ctx, staleOrder(domain.OrderStatusProcessing))
	})

	t.Run("Refund failure is logged", func(t *testing.T) {
		m, pool := newTestPool(t)
		client := domainmocks.NewReconcilableProviderClientMock(t)

		m.router.EXPECT().Get(domain.ProviderTelecel).Return(client, true).Once()
		client.EXPECT().CheckStatus(mock.Anything, mock.Anything).Return(domain.Rejected("order failed", "")).Once()
		m.compensator.EXPECT().Compensate(mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()

		pool.processOrder(ctx, staleOrder(domain.OrderStatusProcessing))
	})
}

func TestPool_ScanStaleOrders(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-DefaultReconcileAfter)
	pending := []domain.OrderStatus{domain.OrderStatusPending}
	processing := []domain.OrderStatus{domain.OrderStatusProcessing}

	t.Run("Pending then processing", func(t *testing.T) {
		m, pool := newTestPool(t)
		pool.now = func() time.Time { return now }

		m.orders.EXPECT().ListStale(mock.Anything, pending, cutoff, 10).
			Return([]*domain.Order{{ID: 1, Reference: "DATA-1", Status: domain.OrderStatusPending}}, nil).Once()
		m.orders.EXPECT().ListStale(mock.Anything, processing, cutoff, 10).
			Return([]*domain.Order{{ID: 2, Reference: "DATA-2", Status: domain.OrderStatusProcessing}}, nil).Once()

		pool.scanStaleOrders(context.Background())

		select {
		case order := <-pool.queue:
			assert.Equal(t, "DATA-1", order.Reference)
		case <-time.After(100 * time.Millisecond):
			t.Error("expected order in queue, got timeout")
		}
		assert.Len(t, pool.queue, 1)
	})

	t.Run("Unsettled processing orders do not crowd out pending ones", func(t *testing.T) {
		m, pool := newTestPool(t)
		pool.now = func() time.Time { return now }

		stuck := make([]*domain.Order, 10)
		for i := range stuck {
			stuck[i] = &domain.Order{ID: int64(100 + i), Reference: "DATA-HUB", Gateway: domain.ProviderHubnet, Status: domain.OrderStatusProcessing}
		}

		m.orders.EXPECT().ListStale(mock.Anything, pending, cutoff, 10).
			Return([]*domain.Order{{ID: 1, Reference: "DATA-1", Status: domain.OrderStatusPending}}, nil).Once()
		m.orders.EXPECT().ListStale(mock.Anything, processing, cutoff, 10).Return(stuck, nil).Once()

		pool.scanStaleOrders(context.Background())

		require.Len(t, pool.queue, 10)
		assert.Equal(t, "DATA-1", (<-pool.queue).Reference)
	})

	t.Run("Pending list failure still scans processing", func(t *testing.T) {
		m, pool := newTestPool(t)
		pool.now = func() time.Time { return now }

		m.orders.EXPECT().ListStale(mock.Anything, pending, cutoff, 10).Return(nil, errors.New("db error")).Once()
		m.orders.EXPECT().ListStale(mock.Anything, processing, cutoff, 10).
			Return([]*domain.Order{{ID: 2, Reference: "DATA-2", Status: domain.OrderStatusProcessing}}, nil).Once()

		pool.scanStaleOrders(context.Background())

		assert.Len(t, pool.queue, 1)
	})
}

// Unsettled processing orders are postponed on every check, so a scan
// limited to the oldest rows eventually reaches newer stale orders.
func TestPool_UnsettledOrdersArePostponed(t *testing.T) {
	m, pool := newTestPool(t)
	client := domainmocks.NewProviderClientMock(t)

	m.router.EXPECT().Get(domain.ProviderHubnet).Return(client, true).Times(3)
	for id := int64(100); id < 103; id++ {
		m.orders.EXPECT().Postpone(mock.Anything, id).Return(nil).Once()
	}

	for id := int64(100); id < 103; id++ {
		pool.processOrder(context.Background(), &domain.Order{ID: id, Reference: "DATA-HUB", Gateway: domain.ProviderHubnet, Status: domain.OrderStatusProcessing})
	}
}

func TestPool_ScanStaleBatches(t *testing.T) {
	m, pool := newTestPool(t)

	refunded := decimal.RequireFromString("10.00")
	m.batches.EXPECT().ListStale(mock.Anything, domain.BatchStatusReserved, mock.Anything, 10).
		Return([]*domain.BatchReservation{
			{ID: "b1", TotalCost: decimal.RequireFromString("30.00"), RefundedAmount: refunded},
			{ID: "b2"},
		}, nil).Once()
	m.batches.EXPECT().Finish(mock.Anything, "b1", domain.BatchStatusAbandoned, refunded).Return(nil).Once()
	m.batches.EXPECT().Finish(mock.Anything, "b2", domain.BatchStatusAbandoned, decimal.Decimal{}).Return(domain.ErrBatchNotFound).Once()

	pool.scanStaleBatches(context.Background())
}

func TestPool_StartStop(t *testing.T) {
	m, pool := newTestPool(t)
	pool.cfg.ScanInterval = 10 * time.Millisecond

	m.orders.EXPECT().ListStale(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	m.batches.EXPECT().ListStale(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool did not stop")
	}
}
