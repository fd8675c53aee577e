package service

import (
	"context"
	"errors"
	"testing"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	domainmocks "github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInventoryPolicy_Resolve(t *testing.T) {
	mockRepo := domainmocks.NewInventoryRepositoryMock(t)
	core, logs := observer.New(zapcore.WarnLevel)
	svc := NewInventoryPolicy(mockRepo, zap.New(core))
	ctx := context.Background()

	t.Run("Stored policy", func(t *testing.T) {
		rec := &domain.InventoryRecord{Network: domain.NetworkMTN, InStock: true, SkipProvider: true}

		mockRepo.EXPECT().Get(mock.Anything, domain.NetworkMTN).Return(rec, nil).Once()

		assert.Equal(t, *rec, svc.Resolve(ctx, domain.NetworkMTN))
	})

	t.Run("Missing record uses default", func(t *testing.T) {
		mockRepo.EXPECT().Get(mock.Anything, domain.NetworkTelecel).Return(nil, domain.ErrInventoryNotFound).Once()

		got := svc.Resolve(ctx, domain.NetworkTelecel)
		assert.Equal(t, domain.DefaultInventoryPolicy(domain.NetworkTelecel), got)
		assert.Zero(t, logs.Len())
	})

	t.Run("Read failure uses default and warns", func(t *testing.T) {
		mockRepo.EXPECT().Get(mock.Anything, domain.NetworkATPremium).Return(nil, errors.New("db error")).Once()

		got := svc.Resolve(ctx, domain.NetworkATPremium)
		assert.True(t, got.InStock)
		assert.False(t, got.SkipProvider)
		assert.Equal(t, 1, logs.FilterMessage("failed to read inventory, using default policy").Len())
	})
}

func TestInventoryPolicy_Update(t *testing.T) {
	mockRepo := domainmocks.NewInventoryRepositoryMock(t)
	svc := NewInventoryPolicy(mockRepo, zap.NewNop())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rec := &domain.InventoryRecord{Network: domain.NetworkATBigTime, InStock: false}

		mockRepo.EXPECT().Upsert(mock.Anything, rec).Return(rec, nil).Once()

		updated, err := svc.Update(ctx, rec)
		require.NoError(t, err)
		assert.False(t, updated.InStock)
	})

	t.Run("Unknown network", func(t *testing.T) {
		_, err := svc.Update(ctx, &domain.InventoryRecord{Network: "GLO"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Database error", func(t *testing.T) {
		rec := &domain.InventoryRecord{Network: domain.NetworkMTN}

		mockRepo.EXPECT().Upsert(mock.Anything, rec).Return(nil, errors.New("db error")).Once()

		_, err := svc.Update(ctx, rec)
		assert.Error(t, err)
	})
}

func TestInventoryPolicy_List(t *testing.T) {
	mockRepo := domainmocks.NewInventoryRepositoryMock(t)
	svc := NewInventoryPolicy(mockRepo, zap.NewNop())

	mockRepo.EXPECT().List(mock.Anything).Return([]*domain.InventoryRecord{{Network: domain.NetworkMTN}}, nil).Once()

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
