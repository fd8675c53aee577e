package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory ledger used to check balances end to end
type memStore struct {
	mu       sync.Mutex
	balances map[int64]decimal.Decimal
	entries  []*domain.LedgerEntry
	refs     map[string]bool
	orders   map[int64]*domain.Order
	history  []*domain.StatusChange
	batches  map[string]*domain.BatchReservation
	nextID   int64
}

func newMemStore(balances map[int64]decimal.Decimal) *memStore {
	return &memStore{
		balances: balances,
		refs:     map[string]bool{},
		orders:   map[int64]*domain.Order{},
		batches:  map[string]*domain.BatchReservation{},
	}
}

func (s *memStore) balance(userID int64) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[userID]
}

func (s *memStore) order(id int64) *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := *s.orders[id]
	return &o
}

func (s *memStore) entriesOf(userID int64) []*domain.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.LedgerEntry
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

func (s *memStore) debit(userID int64, amount decimal.Decimal, reference, reason string) error {
	current, ok := s.balances[userID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if current.LessThan(amount) {
		return &domain.InsufficientBalanceError{Current: current, Required: amount}
	}
	if s.refs[reference] {
		return domain.ErrDuplicateReference
	}
	s.balances[userID] = current.Sub(amount)
	s.addEntry(userID, domain.EntryKindDebit, amount, reference, "", reason)
	return nil
}

func (s *memStore) addEntry(userID int64, kind domain.EntryKind, amount decimal.Decimal, reference, counterparty, reason string) *domain.LedgerEntry {
	s.nextID++
	e := &domain.LedgerEntry{
		ID:                    s.nextID,
		UserID:                userID,
		Kind:                  kind,
		Amount:                amount,
		Status:                domain.EntryStatusCompleted,
		Reference:             reference,
		CounterpartyReference: counterparty,
		Reason:                reason,
		BalanceAfter:          s.balances[userID],
		CreatedAt:             time.Now(),
	}
	s.refs[reference] = true
	s.entries = append(s.entries, e)
	return e
}

func (s *memStore) insertOrder(o *domain.Order, actor, note string) {
	s.nextID++
	o.ID = s.nextID
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	stored := *o
	s.orders[o.ID] = &stored
	s.history = append(s.history, &domain.StatusChange{OrderID: o.ID, Status: o.Status, Actor: actor, Note: note})
}

func (s *memStore) CreateWithReservation(_ context.Context, order *domain.Order, actor string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.IdempotencyKey != "" {
		for _, o := range s.orders {
			if o.UserID == order.UserID && o.IdempotencyKey == order.IdempotencyKey {
				return nil, domain.ErrDuplicateReference
			}
		}
	}
	if err := s.debit(order.UserID, order.Price, order.Reference, "order"); err != nil {
		return nil, err
	}
	s.insertOrder(order, actor, "order created")
	return order, nil
}

func (s *memStore) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	c := *o
	return &c, nil
}

func (s *memStore) GetByIdempotencyKey(_ context.Context, userID int64, key string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.UserID == userID && o.IdempotencyKey == key {
			c := *o
			return &c, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (s *memStore) ListByUser(_ context.Context, userID int64, limit int) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			c := *o
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) ListStale(_ context.Context, statuses []domain.OrderStatus, olderThan time.Time, limit int) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Order
	for _, o := range s.orders {
		for _, st := range statuses {
			if o.Status == st && o.UpdatedAt.Before(olderThan) {
				c := *o
				out = append(out, &c)
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) RecentByPhones(_ context.Context, phones []string, since time.Time) (map[string]time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := map[string]bool{}
	for _, p := range phones {
		wanted[p] = true
	}
	out := map[string]time.Time{}
	for _, o := range s.orders {
		if wanted[o.Phone] && !o.CreatedAt.Before(since) && !o.Status.Compensated() {
			out[o.Phone] = o.CreatedAt
		}
	}
	return out, nil
}

func (s *memStore) Transition(_ context.Context, t domain.StatusTransition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[t.OrderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if o.Status != t.From {
		return fmt.Errorf("%w: order is %s", domain.ErrStatusConflict, o.Status)
	}
	o.Status = t.To
	if t.ProviderRef != "" {
		o.ProviderRef = t.ProviderRef
	}
	o.UpdatedAt = time.Now()
	s.history = append(s.history, &domain.StatusChange{OrderID: o.ID, Previous: t.From, Status: t.To, Actor: t.Actor, Note: t.Note})
	return nil
}

func (s *memStore) Postpone(_ context.Context, orderID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[orderID]; ok && o.Status == domain.OrderStatusProcessing {
		o.UpdatedAt = time.Now()
	}
	return nil
}

func (s *memStore) Refund(_ context.Context, c domain.Compensation) (*domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[c.Order.ID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if o.Status.Compensated() || s.refs["REFUND-"+o.Reference] {
		return nil, domain.ErrAlreadyCompensated
	}
	s.balances[o.UserID] = s.balances[o.UserID].Add(c.Amount)
	entry := s.addEntry(o.UserID, domain.EntryKindRefund, c.Amount, "REFUND-"+o.Reference, o.Reference, c.Reason)
	s.history = append(s.history, &domain.StatusChange{OrderID: o.ID, Previous: o.Status, Status: c.Target, Actor: c.Actor, Note: c.Reason})
	o.Status = c.Target
	return entry, nil
}

func (s *memStore) History(_ context.Context, orderID int64) ([]*domain.StatusChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.StatusChange
	for _, h := range s.history {
		if h.OrderID == orderID {
			out = append(out, h)
		}
	}
	return out, nil
}

// batchStore exposes the batch half of memStore
type batchStore struct {
	*memStore
}

func (s batchStore) CreateWithReservation(_ context.Context, batch *domain.BatchReservation, orders []*domain.Order) (*domain.BatchReservation, []*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.debit(batch.UserID, batch.TotalCost, batch.Reference, "bulk purchase"); err != nil {
		return nil, nil, err
	}
	batch.Status = domain.BatchStatusReserved
	batch.OrderCount = len(orders)
	batch.RefundedAmount = decimal.Zero
	stored := *batch
	s.batches[batch.ID] = &stored
	for _, o := range orders {
		o.BatchID = batch.ID
		s.insertOrder(o, domain.ActorSystem, "batch "+batch.Reference)
	}
	return batch, orders, nil
}

func (s batchStore) MarkDispatched(_ context.Context, batchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[batchID]
	if !ok || b.Status != domain.BatchStatusReserved {
		return domain.ErrStatusConflict
	}
	b.Status = domain.BatchStatusDispatched
	for _, o := range s.orders {
		if o.BatchID == batchID && o.Status == domain.OrderStatusPending {
			o.Status = domain.OrderStatusProcessing
		}
	}
	return nil
}

func (s batchStore) Finish(_ context.Context, batchID string, status domain.BatchStatus, refunded decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[batchID]
	if !ok {
		return domain.ErrBatchNotFound
	}
	b.Status = status
	b.RefundedAmount = refunded
	return nil
}

func (s batchStore) ListStale(_ context.Context, status domain.BatchStatus, olderThan time.Time, limit int) ([]*domain.BatchReservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.BatchReservation
	for _, b := range s.batches {
		if b.Status == status && b.UpdatedAt.Before(olderThan) {
			c := *b
			out = append(out, &c)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
