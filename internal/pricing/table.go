package pricing

import (
	"fmt"
	"sort"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

type key struct {
	network  domain.Network
	capacity int
}

// Table is an immutable price lookup built once at startup
type Table struct {
	prices  map[key]decimal.Decimal
	entries []domain.PriceEntry
}

// New builds a Table, rejecting unknown networks, non-positive prices and duplicates
func New(entries []domain.PriceEntry) (*Table, error) {
	t := &Table{
		prices:  make(map[key]decimal.Decimal, len(entries)),
		entries: make([]domain.PriceEntry, 0, len(entries)),
	}

	for _, e := range entries {
		if !e.Network.Valid() {
			return nil, fmt.Errorf("pricing: unknown network %q", e.Network)
		}
		if e.Capacity <= 0 {
			return nil, fmt.Errorf("pricing: invalid capacity %d for %s", e.Capacity, e.Network)
		}
		if !e.Price.IsPositive() {
			return nil, fmt.Errorf("pricing: non-positive price for %s %dGB", e.Network, e.Capacity)
		}

		k := key{network: e.Network, capacity: e.Capacity}
		if _, exists := t.prices[k]; exists {
			return nil, fmt.Errorf("pricing: duplicate price for %s %dGB", e.Network, e.Capacity)
		}
		t.prices[k] = e.Price
		t.entries = append(t.entries, e)
	}

	sort.Slice(t.entries, func(i, j int) bool {
		if t.entries[i].Network != t.entries[j].Network {
			return t.entries[i].Network < t.entries[j].Network
		}
		return t.entries[i].Capacity < t.entries[j].Capacity
	})

	return t, nil
}

// Lookup returns the price of a bundle
func (t *Table) Lookup(network domain.Network, capacity int) (decimal.Decimal, bool) {
	price, ok := t.prices[key{network: network, capacity: capacity}]
	return price, ok
}

// Entries returns a copy of all prices ordered by network and capacity
func (t *Table) Entries() []domain.PriceEntry {
	out := make([]domain.PriceEntry, len(t.entries))
	copy(out, t.entries)
	return out
}
