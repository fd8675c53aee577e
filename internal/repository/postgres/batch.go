package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BatchRepository implements domain.BatchRepository
type BatchRepository struct {
	db DBTX
}

// NewBatchRepository creates a BatchRepository
func NewBatchRepository(db DBTX) *BatchRepository {
	return &BatchRepository{db: db}
}

// CreateWithReservation debits the batch total once and persists the
// reservation record together with every order of the batch.
func (r *BatchRepository) CreateWithReservation(ctx context.Context, batch *domain.BatchReservation, orders []*domain.Order) (*domain.BatchReservation, []*domain.Order, error) {
	if err := positiveAmount(batch.TotalCost); err != nil {
		return nil, nil, err
	}
	if len(orders) == 0 {
		return nil, nil, domain.NewValidationError("orders", "batch has no orders")
	}

	batch.OrderCount = len(orders)
	batch.Status = domain.BatchStatusReserved
	batch.RefundedAmount = decimal.Zero

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		balance, err := debitAccount(ctx, tx, batch.UserID, batch.TotalCost)
		if err != nil {
			return err
		}

		entry := &domain.LedgerEntry{
			UserID:       batch.UserID,
			Kind:         domain.EntryKindDebit,
			Amount:       batch.TotalCost,
			Status:       domain.EntryStatusCompleted,
			Reference:    batch.Reference,
			Reason:       fmt.Sprintf("bulk purchase of %d data bundles", len(orders)),
			BalanceAfter: balance,
		}
		if err := insertEntry(ctx, tx, entry); err != nil {
			return err
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO batch_reservations (id, user_id, reference, total_cost, order_count, status)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING created_at, updated_at`,
			batch.ID, batch.UserID, batch.Reference, batch.TotalCost, batch.OrderCount, batch.Status,
		).Scan(&batch.CreatedAt, &batch.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateReference
			}
			return fmt.Errorf("repository: failed to create batch %s: %w", batch.ID, err)
		}

		for _, o := range orders {
			o.BatchID = batch.ID
			if err := insertOrder(ctx, tx, o); err != nil {
				return err
			}
			if err := insertHistory(ctx, tx, o.ID, "", o.Status, domain.ActorSystem, "batch "+batch.Reference); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return batch, orders, nil
}

// MarkDispatched records that the batch is about to be sent to providers.
// Pending orders of the batch move to processing; waiting orders stay as they are.
func (r *BatchRepository) MarkDispatched(ctx context.Context, batchID string) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx,
			`UPDATE batch_reservations SET status = $1, updated_at = NOW()
			 WHERE id = $2 AND status = $3`,
			domain.BatchStatusDispatched, batchID, domain.BatchStatusReserved,
		)
		if err != nil {
			return fmt.Errorf("repository: failed to mark batch %s dispatched: %w", batchID, err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("%w: batch %s is not reserved", domain.ErrStatusConflict, batchID)
		}

		_, err = tx.Exec(ctx,
			`WITH moved AS (
			     UPDATE data_purchases SET status = $1, updated_at = NOW()
			     WHERE batch_id = $2 AND status = $3
			     RETURNING id
			 )
			 INSERT INTO order_status_history (order_id, previous_status, status, actor, note)
			 SELECT id, $3, $1, $4, 'batch dispatched' FROM moved`,
			domain.OrderStatusProcessing, batchID, domain.OrderStatusPending, domain.ActorSystem,
		)
		if err != nil {
			return fmt.Errorf("repository: failed to move orders of batch %s to processing: %w", batchID, err)
		}

		return nil
	})
}

// Finish closes the batch with its final status and refunded total
func (r *BatchRepository) Finish(ctx context.Context, batchID string, status domain.BatchStatus, refunded decimal.Decimal) error {
	result, err := r.db.Exec(ctx,
		`UPDATE batch_reservations SET status = $1, refunded_amount = $2, updated_at = NOW()
		 WHERE id = $3`,
		status, refunded, batchID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to finish batch %s: %w", batchID, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrBatchNotFound
	}

	return nil
}

// ListStale returns batches stuck in status since before olderThan
func (r *BatchRepository) ListStale(ctx context.Context, status domain.BatchStatus, olderThan time.Time, limit int) ([]*domain.BatchReservation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id::text, user_id, reference, total_cost, order_count, refunded_amount, status, created_at, updated_at
		 FROM batch_reservations
		 WHERE status = $1 AND updated_at < $2
		 ORDER BY updated_at
		 LIMIT $3`,
		status, olderThan, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list stale batches: %w", err)
	}
	defer rows.Close()

	var batches []*domain.BatchReservation
	for rows.Next() {
		b := &domain.BatchReservation{}
		err := rows.Scan(&b.ID, &b.UserID, &b.Reference, &b.TotalCost, &b.OrderCount, &b.RefundedAmount,
			&b.Status, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan batch: %w", err)
		}
		batches = append(batches, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating batches: %w", err)
	}

	return batches, nil
}
