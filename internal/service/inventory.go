package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"go.uber.org/zap"
)

// InventoryPolicy implements domain.InventoryService
type InventoryPolicy struct {
	repo   domain.InventoryRepository
	logger *zap.Logger
}

// NewInventoryPolicy creates an InventoryPolicy
func NewInventoryPolicy(repo domain.InventoryRepository, logger *zap.Logger) *InventoryPolicy {
	return &InventoryPolicy{repo: repo, logger: logger}
}

// Resolve returns the routing policy of a network. Networks without a
// record, or whose record cannot be read, get domain.DefaultInventoryPolicy.
func (s *InventoryPolicy) Resolve(ctx context.Context, network domain.Network) domain.InventoryRecord {
	rec, err := s.repo.Get(ctx, network)
	if err != nil {
		if !errors.Is(err, domain.ErrInventoryNotFound) {
			s.logger.Warn("failed to read inventory, using default policy",
				zap.String("network", string(network)),
				zap.Error(err),
			)
		}
		return domain.DefaultInventoryPolicy(network)
	}

	return *rec
}

// List returns all inventory records
func (s *InventoryPolicy) List(ctx context.Context) ([]*domain.InventoryRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory service: failed to list inventory: %w", err)
	}

	return records, nil
}

// Update replaces the policy of a network
func (s *InventoryPolicy) Update(ctx context.Context, rec *domain.InventoryRecord) (*domain.InventoryRecord, error) {
	if !rec.Network.Valid() {
		return nil, domain.NewValidationError("network", fmt.Sprintf("unsupported network %q", rec.Network))
	}

	updated, err := s.repo.Upsert(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("inventory service: failed to update %s: %w", rec.Network, err)
	}

	s.logger.Info("inventory updated",
		zap.String("network", string(updated.Network)),
		zap.Bool("in_stock", updated.InStock),
		zap.Bool("skip_provider", updated.SkipProvider),
	)

	return updated, nil
}
