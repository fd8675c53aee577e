package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
)

// InventoryRepository implements domain.InventoryRepository
type InventoryRepository struct {
	db DBTX
}

// NewInventoryRepository creates an InventoryRepository
func NewInventoryRepository(db DBTX) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Get returns the inventory record of a network
func (r *InventoryRepository) Get(ctx context.Context, network domain.Network) (*domain.InventoryRecord, error) {
	rec := &domain.InventoryRecord{}

	err := r.db.QueryRow(ctx,
		`SELECT network, in_stock, skip_provider, updated_at FROM data_inventory WHERE network = $1`,
		network,
	).Scan(&rec.Network, &rec.InStock, &rec.SkipProvider, &rec.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("repository: failed to get inventory of %s: %w", network, err)
	}

	return rec, nil
}

// List returns all inventory records
func (r *InventoryRepository) List(ctx context.Context) ([]*domain.InventoryRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT network, in_stock, skip_provider, updated_at FROM data_inventory ORDER BY network`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list inventory: %w", err)
	}
	defer rows.Close()

	var records []*domain.InventoryRecord
	for rows.Next() {
		rec := &domain.InventoryRecord{}
		if err := rows.Scan(&rec.Network, &rec.InStock, &rec.SkipProvider, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan inventory: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating inventory: %w", err)
	}

	return records, nil
}

// Upsert creates or replaces the inventory record of a network
func (r *InventoryRepository) Upsert(ctx context.Context, rec *domain.InventoryRecord) (*domain.InventoryRecord, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO data_inventory (network, in_stock, skip_provider, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (network) DO UPDATE
		 SET in_stock = EXCLUDED.in_stock, skip_provider = EXCLUDED.skip_provider, updated_at = NOW()
		 RETURNING updated_at`,
		rec.Network, rec.InStock, rec.SkipProvider,
	).Scan(&rec.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to update inventory of %s: %w", rec.Network, err)
	}

	return rec, nil
}
