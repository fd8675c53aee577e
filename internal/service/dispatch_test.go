package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	domainmocks "github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()
	order := domain.ProviderOrder{Reference: "DATA-1", Network: domain.NetworkMTN, Phone: "0241234567", Capacity: 1}

	t.Run("Accepted", func(t *testing.T) {
		client := domainmocks.NewProviderClientMock(t)
		client.EXPECT().Name().Return(domain.ProviderGeonettech).Maybe()
		client.EXPECT().PlaceOrder(mock.Anything, order).Return(domain.Accepted("GT-1")).Once()

		d := NewDispatcher(time.Second, zap.NewNop())
		res := d.Dispatch(ctx, client, order)
		assert.Equal(t, domain.Accepted("GT-1"), res)
	})

	t.Run("Call gets a deadline", func(t *testing.T) {
		client := domainmocks.NewProviderClientMock(t)
		client.EXPECT().Name().Return(domain.ProviderHubnet).Maybe()
		client.EXPECT().PlaceOrder(mock.Anything, order).
			RunAndReturn(func(ctx context.Context, _ domain.ProviderOrder) domain.ProviderResult {
				_, ok := ctx.Deadline()
				assert.True(t, ok)
				return domain.Accepted("HN-1")
			}).Once()

		d := NewDispatcher(time.Second, zap.NewNop())
		d.Dispatch(ctx, client, order)
	})

	t.Run("Rejection after timeout is transient", func(t *testing.T) {
		client := domainmocks.NewProviderClientMock(t)
		client.EXPECT().Name().Return(domain.ProviderTelecel).Maybe()
		client.EXPECT().PlaceOrder(mock.Anything, order).
			RunAndReturn(func(ctx context.Context, _ domain.ProviderOrder) domain.ProviderResult {
				<-ctx.Done()
				return domain.Rejected("could not complete purchase, try again later", "context canceled")
			}).Once()

		d := NewDispatcher(10*time.Millisecond, zap.NewNop())
		res := d.Dispatch(ctx, client, order)
		assert.Equal(t, domain.OutcomeTransient, res.Outcome)
	})
}

func TestDispatcher_DispatchBulk(t *testing.T) {
	ctx := context.Background()
	orders := []domain.ProviderOrder{{Reference: "DATA-1"}, {Reference: "DATA-2"}}

	t.Run("Success", func(t *testing.T) {
		placer := domainmocks.NewBulkPlacerMock(t)
		expected := &domain.BulkResult{Results: map[string]domain.ProviderResult{"DATA-1": domain.Accepted("GT-1")}}
		placer.EXPECT().PlaceBulk(mock.Anything, orders).Return(expected, nil).Once()

		d := NewDispatcher(time.Second, zap.NewNop())
		res, err := d.DispatchBulk(ctx, domain.ProviderGeonettech, placer, orders)
		require.NoError(t, err)
		assert.Equal(t, expected, res)
	})

	t.Run("Error", func(t *testing.T) {
		placer := domainmocks.NewBulkPlacerMock(t)
		placer.EXPECT().PlaceBulk(mock.Anything, orders).Return(nil, errors.New("connection reset")).Once()

		d := NewDispatcher(time.Second, zap.NewNop())
		res, err := d.DispatchBulk(ctx, domain.ProviderGeonettech, placer, orders)
		assert.Error(t, err)
		assert.Nil(t, res)
	})

	t.Run("Empty response", func(t *testing.T) {
		placer := domainmocks.NewBulkPlacerMock(t)
		placer.EXPECT().PlaceBulk(mock.Anything, orders).Return(nil, nil).Once()

		d := NewDispatcher(time.Second, zap.NewNop())
		_, err := d.DispatchBulk(ctx, domain.ProviderGeonettech, placer, orders)
		assert.Error(t, err)
	})
}
