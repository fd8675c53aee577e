package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, user_id, reference, COALESCE(idempotency_key, ''), phone_number, network, capacity,
	price, gateway, COALESCE(provider_order_ref, ''), status, skip_provider, COALESCE(batch_id::text, ''),
	created_at, updated_at`

// OrderRepository implements domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository creates an OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row scanner) (*domain.Order, error) {
	o := &domain.Order{}
	err := row.Scan(&o.ID, &o.UserID, &o.Reference, &o.IdempotencyKey, &o.Phone, &o.Network, &o.Capacity,
		&o.Price, &o.Gateway, &o.ProviderRef, &o.Status, &o.SkipProvider, &o.BatchID,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func insertOrder(ctx context.Context, q querier, o *domain.Order) error {
	err := q.QueryRow(ctx,
		`INSERT INTO data_purchases (user_id, reference, idempotency_key, phone_number, network, capacity,
		                             price, gateway, status, skip_provider, batch_id)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, NULLIF($11, '')::uuid)
		 RETURNING id, created_at, updated_at`,
		o.UserID, o.Reference, o.IdempotencyKey, o.Phone, o.Network, o.Capacity,
		o.Price, o.Gateway, o.Status, o.SkipProvider, o.BatchID,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("repository: failed to create order %q: %w", o.Reference, err)
	}

	return nil
}

func orderDebitReason(o *domain.Order) string {
	return fmt.Sprintf("%s %dGB data bundle for %s", o.Network, o.Capacity, o.Phone)
}

// CreateWithReservation debits the order price and persists the order with
// its first history row in one transaction.
func (r *OrderRepository) CreateWithReservation(ctx context.Context, order *domain.Order, actor string) (*domain.Order, error) {
	if err := positiveAmount(order.Price); err != nil {
		return nil, err
	}

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		balance, err := debitAccount(ctx, tx, order.UserID, order.Price)
		if err != nil {
			return err
		}

		entry := &domain.LedgerEntry{
			UserID:       order.UserID,
			Kind:         domain.EntryKindDebit,
			Amount:       order.Price,
			Status:       domain.EntryStatusCompleted,
			Reference:    order.Reference,
			Reason:       orderDebitReason(order),
			BalanceAfter: balance,
		}
		if err := insertEntry(ctx, tx, entry); err != nil {
			return err
		}

		if err := insertOrder(ctx, tx, order); err != nil {
			return err
		}

		return insertHistory(ctx, tx, order.ID, "", order.Status, actor, "order created")
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetByID returns an order
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM data_purchases WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %d: %w", id, err)
	}

	return order, nil
}

// GetByIdempotencyKey returns the order a client key was first used for
func (r *OrderRepository) GetByIdempotencyKey(ctx context.Context, userID int64, key string) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM data_purchases WHERE user_id = $1 AND idempotency_key = $2`,
		userID, key,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order by idempotency key for user %d: %w", userID, err)
	}

	return order, nil
}

func (r *OrderRepository) queryOrders(ctx context.Context, sql string, args ...any) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return orders, nil
}

// ListByUser returns the newest orders of a user
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*domain.Order, error) {
	orders, err := r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM data_purchases
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list orders for user %d: %w", userID, err)
	}

	return orders, nil
}

// ListStale returns orders in one of statuses not updated since olderThan
func (r *OrderRepository) ListStale(ctx context.Context, statuses []domain.OrderStatus, olderThan time.Time, limit int) ([]*domain.Order, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}

	orders, err := r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM data_purchases
		 WHERE status = ANY($1) AND updated_at < $2
		 ORDER BY updated_at
		 LIMIT $3`,
		names, olderThan, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list stale orders: %w", err)
	}

	return orders, nil
}

// RecentByPhones returns the latest non-compensated purchase time per number since the given time
func (r *OrderRepository) RecentByPhones(ctx context.Context, phones []string, since time.Time) (map[string]time.Time, error) {
	recent := make(map[string]time.Time)
	if len(phones) == 0 {
		return recent, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT phone_number, MAX(created_at)
		 FROM data_purchases
		 WHERE phone_number = ANY($1) AND created_at >= $2 AND status NOT IN ('failed', 'refunded')
		 GROUP BY phone_number`,
		phones, since,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to find recent purchases: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var phone string
		var at time.Time
		if err := rows.Scan(&phone, &at); err != nil {
			return nil, fmt.Errorf("repository: failed to scan recent purchase: %w", err)
		}
		recent[phone] = at
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating recent purchases: %w", err)
	}

	return recent, nil
}

// Transition moves an order from t.From to t.To. It fails with
// domain.ErrStatusConflict when the order is no longer in t.From.
func (r *OrderRepository) Transition(ctx context.Context, t domain.StatusTransition) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx,
			`UPDATE data_purchases
			 SET status = $1, provider_order_ref = COALESCE(NULLIF($2, ''), provider_order_ref), updated_at = NOW()
			 WHERE id = $3 AND status = $4`,
			t.To, t.ProviderRef, t.OrderID, t.From,
		)
		if err != nil {
			return fmt.Errorf("repository: failed to update order %d status: %w", t.OrderID, err)
		}

		if result.RowsAffected() == 0 {
			var current domain.OrderStatus
			err := tx.QueryRow(ctx, `SELECT status FROM data_purchases WHERE id = $1`, t.OrderID).Scan(&current)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domain.ErrOrderNotFound
				}
				return fmt.Errorf("repository: failed to read order %d status: %w", t.OrderID, err)
			}
			return fmt.Errorf("%w: order %d is %s, expected %s", domain.ErrStatusConflict, t.OrderID, current, t.From)
		}

		return insertHistory(ctx, tx, t.OrderID, t.From, t.To, t.Actor, t.Note)
	})
}

// Postpone moves a processing order to the back of the stale scan without
// changing its status. Orders no longer processing are left alone.
func (r *OrderRepository) Postpone(ctx context.Context, orderID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE data_purchases SET updated_at = NOW() WHERE id = $1 AND status = $2`,
		orderID, domain.OrderStatusProcessing,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to postpone order %d: %w", orderID, err)
	}

	return nil
}

// Refund credits the order amount back and marks the order compensated.
// A second refund of the same order fails with domain.ErrAlreadyCompensated.
func (r *OrderRepository) Refund(ctx context.Context, c domain.Compensation) (*domain.LedgerEntry, error) {
	if err := positiveAmount(c.Amount); err != nil {
		return nil, err
	}
	if !c.Target.Compensated() {
		return nil, domain.NewValidationError("target", "refund target must be failed or refunded")
	}

	var entry *domain.LedgerEntry
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		var userID int64
		var reference string
		var status domain.OrderStatus
		err := tx.QueryRow(ctx,
			`SELECT user_id, reference, status FROM data_purchases WHERE id = $1 FOR UPDATE`,
			c.Order.ID,
		).Scan(&userID, &reference, &status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrOrderNotFound
			}
			return fmt.Errorf("repository: failed to lock order %d: %w", c.Order.ID, err)
		}

		if status.Compensated() {
			return domain.ErrAlreadyCompensated
		}

		balance, err := creditAccount(ctx, tx, userID, c.Amount)
		if err != nil {
			return err
		}

		entry = &domain.LedgerEntry{
			UserID:                userID,
			Kind:                  domain.EntryKindRefund,
			Amount:                c.Amount,
			Status:                domain.EntryStatusCompleted,
			Reference:             "REFUND-" + reference,
			CounterpartyReference: reference,
			Reason:                c.Reason,
			BalanceAfter:          balance,
		}
		if err := insertEntry(ctx, tx, entry); err != nil {
			if errors.Is(err, domain.ErrDuplicateReference) {
				return domain.ErrAlreadyCompensated
			}
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE data_purchases SET status = $1, updated_at = NOW() WHERE id = $2`,
			c.Target, c.Order.ID,
		)
		if err != nil {
			return fmt.Errorf("repository: failed to mark order %d %s: %w", c.Order.ID, c.Target, err)
		}

		return insertHistory(ctx, tx, c.Order.ID, status, c.Target, c.Actor, c.Reason)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// History returns the status history of an order, oldest first
func (r *OrderRepository) History(ctx context.Context, orderID int64) ([]*domain.StatusChange, error) {
	rows, err := r.db.Query(ctx,
		`SELECT order_id, previous_status, status, actor, note, created_at
		 FROM order_status_history
		 WHERE order_id = $1
		 ORDER BY created_at, id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get history of order %d: %w", orderID, err)
	}
	defer rows.Close()

	var history []*domain.StatusChange
	for rows.Next() {
		h := &domain.StatusChange{}
		if err := rows.Scan(&h.OrderID, &h.Previous, &h.Status, &h.Actor, &h.Note, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan status history: %w", err)
		}
		history = append(history, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating status history: %w", err)
	}

	return history, nil
}
