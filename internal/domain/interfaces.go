package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockery

// WalletRepository owns account balances and the ledger
type WalletRepository interface {
	GetAccount(ctx context.Context, userID int64) (*Account, error)
	Reserve(ctx context.Context, userID int64, amount decimal.Decimal, reference, counterparty string) (*LedgerEntry, error)
	Credit(ctx context.Context, userID int64, amount decimal.Decimal, kind EntryKind, reference, reason string) (*LedgerEntry, error)
	ListEntries(ctx context.Context, userID int64, limit int) ([]*LedgerEntry, error)
}

// OrderRepository persists data orders and their history
type OrderRepository interface {
	CreateWithReservation(ctx context.Context, order *Order, actor string) (*Order, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
	GetByIdempotencyKey(ctx context.Context, userID int64, key string) (*Order, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]*Order, error)
	ListStale(ctx context.Context, statuses []OrderStatus, olderThan time.Time, limit int) ([]*Order, error)
	RecentByPhones(ctx context.Context, phones []string, since time.Time) (map[string]time.Time, error)
	Transition(ctx context.Context, t StatusTransition) error
	Postpone(ctx context.Context, orderID int64) error
	Refund(ctx context.Context, c Compensation) (*LedgerEntry, error)
	History(ctx context.Context, orderID int64) ([]*StatusChange, error)
}

// BatchRepository persists bulk reservations
type BatchRepository interface {
	CreateWithReservation(ctx context.Context, batch *BatchReservation, orders []*Order) (*BatchReservation, []*Order, error)
	MarkDispatched(ctx context.Context, batchID string) error
	Finish(ctx context.Context, batchID string, status BatchStatus, refunded decimal.Decimal) error
	ListStale(ctx context.Context, status BatchStatus, olderThan time.Time, limit int) ([]*BatchReservation, error)
}

// InventoryRepository persists per-network routing policy
type InventoryRepository interface {
	Get(ctx context.Context, network Network) (*InventoryRecord, error)
	List(ctx context.Context) ([]*InventoryRecord, error)
	Upsert(ctx context.Context, rec *InventoryRecord) (*InventoryRecord, error)
}

// PriceRepository loads the price table
type PriceRepository interface {
	LoadPrices(ctx context.Context) ([]PriceEntry, error)
}

// PriceLookup is the read-only price table
type PriceLookup interface {
	Lookup(network Network, capacity int) (decimal.Decimal, bool)
	Entries() []PriceEntry
}

// ProviderClient places orders with one aggregator.
// PlaceOrder never returns an error: failures are classified in the result.
type ProviderClient interface {
	Name() Provider
	Supports(network Network) bool
	PlaceOrder(ctx context.Context, order ProviderOrder) ProviderResult
}

// BulkPlacer is implemented by providers with a bulk endpoint.
// An error means the outcome of the whole call is unknown.
type BulkPlacer interface {
	PlaceBulk(ctx context.Context, orders []ProviderOrder) (*BulkResult, error)
}

// StatusChecker is implemented by providers that can report an order's status
type StatusChecker interface {
	CheckStatus(ctx context.Context, reference string) ProviderResult
}

// BulkProviderClient is a provider with a bulk endpoint
type BulkProviderClient interface {
	ProviderClient
	BulkPlacer
}

// ReconcilableProviderClient is a provider with a status endpoint
type ReconcilableProviderClient interface {
	ProviderClient
	StatusChecker
}

// ProviderRouter picks the provider for a network
type ProviderRouter interface {
	Route(network Network, gateway Provider) (ProviderClient, error)
	Get(name Provider) (ProviderClient, bool)
}

// Notifier publishes order events. Delivery is best effort.
type Notifier interface {
	Publish(ctx context.Context, event OrderEvent)
}

// CooldownGuard tracks numbers recently sent to a provider
type CooldownGuard interface {
	Active(ctx context.Context, phones []string) (map[string]bool, error)
	Mark(ctx context.Context, phones []string) error
}

// Compensator refunds orders
type Compensator interface {
	Compensate(ctx context.Context, c Compensation) (*LedgerEntry, error)
}

// InventoryResolver answers routing policy questions
type InventoryResolver interface {
	Resolve(ctx context.Context, network Network) InventoryRecord
}

// PurchaseService runs the single order saga
type PurchaseService interface {
	Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error)
}

// BatchService runs bulk purchases
type BatchService interface {
	Submit(ctx context.Context, req BatchRequest) (*BatchResult, error)
}

// WalletService exposes the wallet
type WalletService interface {
	GetBalance(ctx context.Context, userID int64) (*Account, error)
	ListEntries(ctx context.Context, userID int64) ([]*LedgerEntry, error)
	AdminCredit(ctx context.Context, userID int64, amount decimal.Decimal, reason, actor string) (*LedgerEntry, error)
}

// OrderService exposes a user's orders
type OrderService interface {
	ListOrders(ctx context.Context, userID int64) ([]*Order, error)
	GetOrder(ctx context.Context, userID, orderID int64) (*Order, []*StatusChange, error)
}

// AdminService changes order statuses on behalf of administrators
type AdminService interface {
	OverrideStatus(ctx context.Context, orderID int64, status OrderStatus, actor, note string) (*Order, error)
}

// InventoryService manages routing policy
type InventoryService interface {
	InventoryResolver
	List(ctx context.Context) ([]*InventoryRecord, error)
	Update(ctx context.Context, rec *InventoryRecord) (*InventoryRecord, error)
}
