package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Network is a mobile network a data bundle can be bought for
type Network string

const (
	NetworkMTN       Network = "MTN"
	NetworkTelecel   Network = "TELECEL"
	NetworkATPremium Network = "AT_PREMIUM"
	NetworkATBigTime Network = "AT_BIGTIME"
)

// Networks lists every supported network
var Networks = []Network{NetworkMTN, NetworkTelecel, NetworkATPremium, NetworkATBigTime}

// ParseNetwork normalizes user input into a known network
func ParseNetwork(s string) (Network, bool) {
	n := Network(strings.ToUpper(strings.TrimSpace(s)))
	return n, n.Valid()
}

// Valid reports whether the network is supported
func (n Network) Valid() bool {
	switch n {
	case NetworkMTN, NetworkTelecel, NetworkATPremium, NetworkATBigTime:
		return true
	}
	return false
}

// AlwaysLive reports whether orders for the network are dispatched even when
// inventory asks to skip the provider.
func (n Network) AlwaysLive() bool {
	return n == NetworkTelecel
}

// Provider identifies an upstream aggregator
type Provider string

const (
	ProviderGeonettech Provider = "geonettech"
	ProviderHubnet     Provider = "hubnet"
	ProviderTelecel    Provider = "telecel"
)

// OrderStatus is the lifecycle status of a data order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusFailed     OrderStatus = "failed"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusWaiting    OrderStatus = "waiting"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusFailed,
		OrderStatusRefunded, OrderStatusWaiting, OrderStatusDelivered:
		return true
	}
	return false
}

// Compensated reports whether the order has been credited back
func (s OrderStatus) Compensated() bool {
	return s == OrderStatusFailed || s == OrderStatusRefunded
}

// EntryKind is the direction of a ledger entry
type EntryKind string

const (
	EntryKindDebit  EntryKind = "debit"
	EntryKindCredit EntryKind = "credit"
	EntryKindRefund EntryKind = "refund"
)

// EntryStatus is the status of a ledger entry
type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "pending"
	EntryStatusCompleted EntryStatus = "completed"
	EntryStatusFailed    EntryStatus = "failed"
)

// Actors recorded in status history
const (
	ActorSystem     = "system"
	ActorReconciler = "reconciler"
)

// AdminActor builds the history actor for an administrator
func AdminActor(userID int64) string {
	return "admin:" + strconv.FormatInt(userID, 10)
}

// Account is a user's wallet
type Account struct {
	UserID  int64           `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
	Role    string          `json:"-"`
}

// LedgerEntry is an immutable record of a balance change
type LedgerEntry struct {
	ID                    int64           `json:"id"`
	UserID                int64           `json:"-"`
	Kind                  EntryKind       `json:"type"`
	Amount                decimal.Decimal `json:"amount"`
	Status                EntryStatus     `json:"status"`
	Reference             string          `json:"reference"`
	CounterpartyReference string          `json:"counterparty_reference,omitempty"`
	Reason                string          `json:"reason,omitempty"`
	BalanceAfter          decimal.Decimal `json:"balance_after"`
	CreatedAt             time.Time       `json:"created_at"`
}

// Order is a single data bundle purchase
type Order struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"-"`
	Reference      string          `json:"reference"`
	IdempotencyKey string          `json:"-"`
	Phone          string          `json:"phone_number"`
	Network        Network         `json:"network"`
	Capacity       int             `json:"capacity"`
	Price          decimal.Decimal `json:"price"`
	Gateway        Provider        `json:"gateway"`
	ProviderRef    string          `json:"provider_order_ref,omitempty"`
	Status         OrderStatus     `json:"status"`
	SkipProvider   bool            `json:"skip_provider"`
	BatchID        string          `json:"batch_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProviderOrder converts the order into the request sent to a provider
func (o *Order) ProviderOrder() ProviderOrder {
	return ProviderOrder{
		Reference: o.Reference,
		Network:   o.Network,
		Phone:     o.Phone,
		Capacity:  o.Capacity,
	}
}

// StatusChange is one row of an order's status history
type StatusChange struct {
	OrderID   int64       `json:"-"`
	Previous  OrderStatus `json:"previous_status"`
	Status    OrderStatus `json:"status"`
	Actor     string      `json:"actor"`
	Note      string      `json:"note,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// StatusTransition is a compare-and-set status update
type StatusTransition struct {
	OrderID     int64
	From        OrderStatus
	To          OrderStatus
	ProviderRef string
	Actor       string
	Note        string
}

// Compensation describes a refund of an order back to its owner's wallet
type Compensation struct {
	Order  *Order
	Amount decimal.Decimal
	Reason string
	Target OrderStatus
	Actor  string
}

// InventoryRecord holds the routing policy of a network
type InventoryRecord struct {
	Network      Network   `json:"network"`
	InStock      bool      `json:"in_stock"`
	SkipProvider bool      `json:"skip_provider"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultInventoryPolicy applies to networks without an inventory record:
// sales stay open and orders go to the provider.
func DefaultInventoryPolicy(network Network) InventoryRecord {
	return InventoryRecord{Network: network, InStock: true, SkipProvider: false}
}

// PriceEntry is the authoritative price of a bundle
type PriceEntry struct {
	Network  Network         `json:"network"`
	Capacity int             `json:"capacity"`
	Price    decimal.Decimal `json:"price"`
}

// BatchStatus is the lifecycle status of a bulk reservation
type BatchStatus string

const (
	BatchStatusReserved   BatchStatus = "reserved"
	BatchStatusDispatched BatchStatus = "dispatched"
	BatchStatusReconciled BatchStatus = "reconciled"
	BatchStatusAbandoned  BatchStatus = "abandoned"
)

// BatchReservation is the persisted record of a bulk purchase debit
type BatchReservation struct {
	ID             string          `json:"id"`
	UserID         int64           `json:"-"`
	Reference      string          `json:"reference"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	OrderCount     int             `json:"order_count"`
	RefundedAmount decimal.Decimal `json:"refunded_amount"`
	Status         BatchStatus     `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProviderOrder is the provider-neutral order sent to an aggregator
type ProviderOrder struct {
	Reference string
	Network   Network
	Phone     string
	Capacity  int
}

// ProviderOutcome classifies a provider response
type ProviderOutcome string

const (
	OutcomeAccepted  ProviderOutcome = "accepted"
	OutcomeRejected  ProviderOutcome = "rejected"
	OutcomeTransient ProviderOutcome = "transient"
)

// ProviderResult is the normalized result of a provider call.
// Reason is safe to show to users, Detail is the raw provider text.
type ProviderResult struct {
	Outcome     ProviderOutcome
	ProviderRef string
	Reason      string
	Detail      string
}

// Accepted builds an accepted result
func Accepted(providerRef string) ProviderResult {
	return ProviderResult{Outcome: OutcomeAccepted, ProviderRef: providerRef}
}

// Rejected builds a rejected result
func Rejected(reason, detail string) ProviderResult {
	return ProviderResult{Outcome: OutcomeRejected, Reason: reason, Detail: detail}
}

// Transient builds a result with an unknown outcome
func Transient(detail string) ProviderResult {
	return ProviderResult{Outcome: OutcomeTransient, Detail: detail}
}

// BulkResult holds per-reference results of a bulk call
type BulkResult struct {
	Results map[string]ProviderResult
}

// PurchaseRequest is a single bundle purchase
type PurchaseRequest struct {
	UserID         int64
	Phone          string
	Network        Network
	Capacity       int
	Gateway        Provider
	IdempotencyKey string
}

// PurchaseOutcome is the terminal state of a purchase saga
type PurchaseOutcome string

const (
	PurchaseCompleted     PurchaseOutcome = "completed"
	PurchaseFailed        PurchaseOutcome = "failed"
	PurchasePendingReview PurchaseOutcome = "pending_review"
)

// PurchaseResult is returned to the buyer
type PurchaseResult struct {
	Order    *Order          `json:"order"`
	Outcome  PurchaseOutcome `json:"outcome"`
	Message  string          `json:"message,omitempty"`
	Replayed bool            `json:"replayed,omitempty"`
}

// BatchCandidate is one requested order of a bulk purchase
type BatchCandidate struct {
	Phone    string           `json:"phone_number"`
	Network  Network          `json:"network"`
	Capacity int              `json:"capacity"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

// BatchRequest is a bulk purchase
type BatchRequest struct {
	UserID  int64
	Gateway Provider
	Orders  []BatchCandidate
}

// CandidateClass is the validation verdict for a batch candidate
type CandidateClass string

const (
	CandidateValidated         CandidateClass = "validated"
	CandidateDuplicate         CandidateClass = "duplicate_within_batch"
	CandidateRecentlyPurchased CandidateClass = "recently_purchased"
	CandidateInvalid           CandidateClass = "invalid"
)

// ClassifiedCandidate is a batch candidate with its verdict
type ClassifiedCandidate struct {
	Index    int             `json:"index"`
	Phone    string          `json:"phone_number"`
	Network  Network         `json:"network"`
	Capacity int             `json:"capacity"`
	Price    decimal.Decimal `json:"price"`
	Class    CandidateClass  `json:"class"`
	Reason   string          `json:"reason,omitempty"`
}

// BatchResult summarizes a processed bulk purchase
type BatchResult struct {
	Batch     *BatchReservation     `json:"batch"`
	Skipped   []ClassifiedCandidate `json:"skipped"`
	Completed []*Order              `json:"completed"`
	Refunded  []*Order              `json:"refunded"`
	Pending   []*Order              `json:"pending"`
	Waiting   []*Order              `json:"waiting"`
	Charged   decimal.Decimal       `json:"charged"`
}

// OrderEvent is published when an order reaches a notable status
type OrderEvent struct {
	Reference  string          `json:"reference"`
	UserID     int64           `json:"user_id"`
	Phone      string          `json:"phone_number"`
	Network    Network         `json:"network"`
	Capacity   int             `json:"capacity"`
	Status     OrderStatus     `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewOrderEvent builds an event for the order's current status
func NewOrderEvent(o *Order, reason string) OrderEvent {
	return OrderEvent{
		Reference:  o.Reference,
		UserID:     o.UserID,
		Phone:      o.Phone,
		Network:    o.Network,
		Capacity:   o.Capacity,
		Status:     o.Status,
		Amount:     o.Price,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
}
