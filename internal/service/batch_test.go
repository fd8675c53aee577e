package service

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

type batchMocks struct {
	*sagaMocks
	batches *domainmocks.BatchRepositoryMock
	bulk    *domainmocks.BulkProviderClientMock
}

func newBatchMocks(t *testing.T) (*batchMocks, *BatchProcessor) {
	m, deps := newSagaMocks(t)
	bm := &batchMocks{
		sagaMocks: m,
		batches:   domainmocks.NewBatchRepositoryMock(t),
		bulk:      domainmocks.NewBulkProviderClientMock(t),
	}
	bm.bulk.EXPECT().Name().Return(domain.ProviderGeonettech).Maybe()

	p := NewBatchProcessor(deps, bm.batches, BatchConfig{MaxBatchSize: 5, PurchaseCooldown: 30 * time.Minute})
	return bm, p
}

func decimalEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

// expectCatalog makes every MTN 2GB candidate valid and routed to client
func (m *batchMocks) expectCatalog(client domain.ProviderClient) {
	m.prices.EXPECT().Lookup(domain.NetworkMTN, 2).Return(decimal.RequireFromString("10.00"), true).Maybe()
	m.router.EXPECT().Route(domain.NetworkMTN, domain.Provider("")).Return(client, nil).Maybe()
	m.inventory.EXPECT().Resolve(mock.Anything, domain.NetworkMTN).Return(domain.DefaultInventoryPolicy(domain.NetworkMTN)).Maybe()
}

func (m *batchMocks) expectNoHistory() {
	m.orders.EXPECT().RecentByPhones(mock.Anything, mock.Anything, mock.Anything).Return(map[string]time.Time{}, nil).Once()
	m.guard.EXPECT().Active(mock.Anything, mock.Anything).Return(map[string]bool{}, nil).Once()
}

func (m *batchMocks) expectReserve(total string) {
	m.batches.EXPECT().CreateWithReservation(mock.Anything, mock.MatchedBy(func(b *domain.BatchReservation) bool {
		return b.TotalCost.Equal(decimal.RequireFromString(total)) && b.UserID == 1
	}), mock.Anything).RunAndReturn(func(_ context.Context, b *domain.BatchReservation, orders []*domain.Order) (*domain.BatchReservation, []*domain.Order, error) {
		b.Status = domain.BatchStatusReserved
		b.OrderCount = len(orders)
		for i, o := range orders {
			o.ID = int64(i + 1)
			o.BatchID = b.ID
		}
		return b, orders, nil
	}).Once()
}

func mtnCandidates(phones ...string) []domain.BatchCandidate {
	out := make([]domain.BatchCandidate, len(phones))
	for i, p := range phones {
		out[i] = domain.BatchCandidate{Phone: p, Network: domain.NetworkMTN, Capacity: 2}
	}
	return out
}

func TestBatchProcessor_Submit_Bulk(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial success", func(t *testing.T) {
		m, p := newBatchMocks(t)
		m.expectCatalog(m.bulk)
		m.expectNoHistory()
		m.expectReserve("30.00")
		m.batches.EXPECT().MarkDispatched(mock.Anything, mock.Anything).Return(nil).Once()

		m.bulk.EXPECT().PlaceBulk(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, orders []domain.ProviderOrder) (*domain.BulkResult, error) {
				require.Len(t, orders, 3)
				return &domain.BulkResult{Results: map[string]domain.ProviderResult{
					orders[0].Reference: domain.Accepted("GT-1"),
					orders[1].Reference: domain.Rejected("invalid recipient number", "invalid number"),
				}}, nil
			}).Once()

		m.guard.EXPECT().Mark(mock.Anything, []string{"0241111111"}).Return(nil).Once()
		m.orders.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.StatusTransition) bool {
			return tr.OrderID == 1 && tr.To == domain.OrderStatusCompleted && tr.ProviderRef == "GT-1"
		})).Return(nil).Once()
		m.notifier.EXPECT().Publish(mock.Anything, mock.Anything).Return().Once()
		m.compensator.EXPECT().Compensate(mock.Anything, mock.MatchedBy(func(c domain.Compensation) bool {
			return c.Target == domain.OrderStatusRefunded && c.Amount.Equal(decimal.RequireFromString("10.00"))
		})).Return(&domain.LedgerEntry{}, nil).Twice()
		m.batches.EXPECT().Finish(mock.Anything, mock.Anything, domain.BatchStatusReconciled, decimalEq("20.00")).Return(nil).Once()

		result, err := p.Submit(ctx, domain.BatchRequest{UserID: 1, Orders: mtnCandidates("0241111111", "0242222222", "0243333333")})
		require.NoError(t, err)
		assert.Len(t, result.Completed, 1)
		assert.Len(t, result.Refunded, 2)
		assert.True(t, result.Charged.Equal(decimal.RequireFromString("10.00")))
		assert.Equal(t, domain.BatchStatusReconciled, result.Batch.Status)
	})

	t.Run("Failed bulk call refunds every order", func(t *testing.T) {
		m, p := newBatchMocks(t)
		m.expectCatalog(m.bulk)
		m.expectNoHistory()
		m.expectReserve("20.00")
		m.batches.EXPECT().MarkDispatched(mock.Anything, mock.Anything).Return(nil).Once()
		m.bulk.EXPECT().PlaceBulk(mock.Anything, mock.Anything).Return(nil, errors.New("unexpected EOF")).Once()
		m.compensator.EXPECT().Compensate(mock.Anything, mock.Anything).Return(&domain.LedgerEntry{}, nil).Twice()
		m.batches.EXPECT().Finish(mock.Anything, mock.Anything, domain.BatchStatusReconciled, decimalEq("20.00")).Return(nil).Once()

		result, err := p.Submit(ctx, domain.BatchRequest{UserID: 1, Orders: mtnCandidates("0241111111", "0242222222")})
		require.NoError(t, err)
		assert.Empty(t, result.Completed)
		assert.Len(t, result.Refunded, 2)
		assert.True(t, result.Charged.IsZero())
	})
}

func TestBatchProcessor_Submit_Classification(t *testing.T) {
	ctx := context.Background()

	m, p := newBatchMocks(t)
	m.expectCatalog(m.client)
	m.prices.EXPECT().Lookup(domain.NetworkMTN, 7).Return(decimal.Zero, false).Once()

	wrong := decimal.RequireFromString("9.00")
	candidates := []domain.BatchCandidate{
		{Phone: "0241111111", Network: domain.NetworkMTN, Capacity: 2},
		{Phone: "233241111111", Network: domain.NetworkMTN, Capacity: 2},
		{Phone: "12", Network: domain.NetworkMTN, Capacity: 2},
		{Phone: "0244444444", Network: domain.NetworkMTN, Capacity: 2, Price: &wrong},
		{Phone: "0245555555", Network: domain.NetworkMTN, Capacity: 7},
		{Phone: "0246666666", Network: domain.NetworkMTN, Capacity: 2},
		{Phone: "0247777777", Network: domain.NetworkMTN, Capacity: 2},
	}

	m.orders.EXPECT().RecentByPhones(mock.Anything, []string{"0241111111", "0246666666", "0247777777"}, mock.Anything).
		Return(map[string]time.Time{"0246666666": time.Now()}, nil).Once()
	m.guard.EXPECT().Active(mock.Anything, mock.Anything).Return(map[string]bool{"0247777777": true}, nil).Once()

	m.expectReserve("10.00")
	m.batches.EXPECT().MarkDispatched(mock.Anything, mock.Anything).Return(nil).Once()
	m.client.EXPECT().PlaceOrder(mock.Anything, mock.MatchedBy(func(o domain.ProviderOrder) bool {
		return o.Phone == "0241111111"
	})).Return(domain.Transient("timeout")).Once()
	m.guard.EXPECT().Mark(mock.Anything, []string{"0241111111"}).Return(nil).Once()
	m.notifier.EXPECT().Publish(mock.Anything, mock.Anything).Return().Once()
	m.batches.EXPECT().Finish(mock.Anything, mock.Anything, domain.BatchStatusReconciled, decimalEq("0")).Return(nil).Once()

	p.cfg.MaxBatchSize = 10

	result, err := p.Submit(ctx, domain.BatchRequest{UserID: 1, Orders: candidates})
	require.NoError(t, err)

	classes := map[int]domain.CandidateClass{}
	for _, s := range result.Skipped {
		classes[s.Index] = s.Class
	}
	assert.Equal(t, map[int]domain.CandidateClass{
		1: domain.CandidateDuplicate,
		2: domain.CandidateInvalid,
		3: domain.CandidateInvalid,
		4: domain.CandidateInvalid,
		5: domain.CandidateRecentlyPurchased,
		6: domain.CandidateRecentlyPurchased,
	}, classes)

	require.Len(t, result.Pending, 1)
	assert.Equal(t, domain.OrderStatusProcessing, result.Pending[0].Status)
	assert.True(t, result.Charged.Equal(decimal.RequireFromString("10.00")))
}

func TestBatchProcessor_Submit_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("Insufficient balance has no side effects", func(t *testing.T) {
		m, p := newBatchMocks(t)
		m.expectCatalog(m.bulk)
		m.expectNoHistory()
		m.batches.EXPECT().CreateWithReservation(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, nil, &domain.InsufficientBalanceError{Current: decimal.RequireFromString("15"), Required: decimal.RequireFromString("20")}).Once()

		_, err := p.Submit(ctx, domain.BatchRequest{UserID: 1, Orders: mtnCandidates("0241111111", "0242222222")})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})

	t.Run("Nothing valid", func(t *testing.T) {
		_, p := newBatchMocks(t)

		_, err := p.Submit(ctx, domain.BatchRequest{UserID: 1, Orders: mtnCandidates("1", "2")})
		assert.ErrorIs(t, err, domain.ErrValidation)

		var rejected *domain.BatchRejectedError
		require.ErrorAs(t, err, &rejected)
		require.Len(t, rejected.Skipped, 2)
		for i, c := range rejected.Skipped {
			assert.Equal(t, i, c.Index)
			assert.Equal(t, domain.CandidateInvalid, c.Class)
			assert.Equal(t, "invalid Ghana mobile number", c.Reason)
		}
	})

	t.Run("Every candidate skipped keeps each reason", func(t *testing.T) {
		m, p := newBatchMocks(t)
		m.expectCatalog(m.client)

		price := decimal.RequireFromString("9.00")
		orders := mtnCandidates("0241111111", "0242222222", "0242222222")
		orders[0].Price = &price
		m.orders.EXPECT().RecentByPhones(mock.Anything, []string{"0242222222"}, mock.Anything).
			Return(map[string]time.Time{"0242222222": time.Now()}, nil).Once()
		m.guard.EXPECT().Active(mock.Anything, []string{"0242222222"}).Return(map[string]bool{}, nil).Once()

		_, err := p.Submit(ctx, domain.BatchRequest{UserID: 1, Orders: orders})

		var rejected *domain.BatchRejectedError
		require.ErrorAs(t, err, &rejected)
		require.Len(t, rejected.Skipped, 3)
		assert.Equal(t, domain.CandidateInvalid, rejected.Skipped[0].Class)
		assert.Equal(t, "price does not match the current price list", rejected.Skipped[0].Reason)
		assert.Equal(t, domain.CandidateRecentlyPurchased, rejected.Skipped[1].Class)
		assert.Equal(t, domain.CandidateDuplicate, rejected.Skipped[2].Class)
		assert.Contains(t, err.Error(), "#0 price does not match")
	})

	t.Run("Empty batch", func(t *testing.T) {
		_, p := newBatchMocks(t)

		_, err := p.Submit(ctx, domain.BatchRequest{UserID: 1})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Too many orders", func(t *testing.T) {
		_, p := newBatchMocks(t)

		_, err := p.Submit(ctx, domain.BatchRequest{UserID: 1, Orders: make([]domain.BatchCandidate, 6)})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Dispatch mark failure", func(t *testing.T) {
		m, p := newBatchMocks(t)
		m.expectCatalog(m.client)
		m.orders.EXPECT().RecentByPhones(mock.Anything, mock.Anything, mock.Anything).Return(map[string]time.Time{}, nil).Once()
		m.guard.EXPECT().Active(mock.Anything, mock.Anything).Return(nil, errors.New("redis: connection refused")).Once()
		m.expectReserve("10.00")
		m.batches.EXPECT().MarkDispatched(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		_, err := p.Submit(ctx, domain.BatchRequest{UserID: 1, Orders: mtnCandidates("0241111111")})
		assert.ErrorIs(t, err, domain.ErrPersistence)
	})
}

func TestBatchProcessor_Submit_Waiting(t *testing.T) {
	m, p := newBatchMocks(t)
	m.prices.EXPECT().Lookup(domain.NetworkMTN, 2).Return(decimal.RequireFromString("10.00"), true).Once()
	m.router.EXPECT().Route(domain.NetworkMTN, domain.Provider("")).Return(m.client, nil).Once()
	m.inventory.EXPECT().Resolve(mock.Anything, domain.NetworkMTN).
		Return(domain.InventoryRecord{Network: domain.NetworkMTN, InStock: true, SkipProvider: true}).Once()
	m.expectNoHistory()
	m.batches.EXPECT().CreateWithReservation(mock.Anything, mock.Anything, mock.MatchedBy(func(orders []*domain.Order) bool {
		return len(orders) == 1 && orders[0].Status == domain.OrderStatusWaiting && orders[0].SkipProvider
	})).RunAndReturn(func(_ context.Context, b *domain.BatchReservation, orders []*domain.Order) (*domain.BatchReservation, []*domain.Order, error) {
		return b, orders, nil
	}).Once()
	m.batches.EXPECT().MarkDispatched(mock.Anything, mock.Anything).Return(nil).Once()
	m.batches.EXPECT().Finish(mock.Anything, mock.Anything, domain.BatchStatusReconciled, decimalEq("0")).Return(nil).Once()

	result, err := p.Submit(context.Background(), domain.BatchRequest{UserID: 1, Orders: mtnCandidates("0241111111")})
	require.NoError(t, err)
	assert.Len(t, result.Waiting, 1)
	assert.True(t, result.Charged.Equal(decimal.RequireFromString("10.00")))
}

func TestNewBatchProcessor_Defaults(t *testing.T) {
	p := NewBatchProcessor(SagaDeps{Logger: zap.NewNop()}, nil, BatchConfig{})
	assert.Equal(t, DefaultMaxBatchSize, p.cfg.MaxBatchSize)
	assert.Equal(t, DefaultPurchaseCooldown, p.cfg.PurchaseCooldown)
}
