package postgres

import (
	"context"
	"fmt"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
)

// PriceRepository implements domain.PriceRepository
type PriceRepository struct {
	db DBTX
}

// NewPriceRepository creates a PriceRepository
func NewPriceRepository(db DBTX) *PriceRepository {
	return &PriceRepository{db: db}
}

// LoadPrices reads the whole price table
func (r *PriceRepository) LoadPrices(ctx context.Context) ([]domain.PriceEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT network, capacity, price FROM data_prices ORDER BY network, capacity`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load prices: %w", err)
	}
	defer rows.Close()

	var entries []domain.PriceEntry
	for rows.Next() {
		var e domain.PriceEntry
		if err := rows.Scan(&e.Network, &e.Capacity, &e.Price); err != nil {
			return nil, fmt.Errorf("repository: failed to scan price: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating prices: %w", err)
	}

	return entries, nil
}
