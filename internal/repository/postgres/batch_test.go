package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBatchID = "7f0c2a4e-0d8e-4f43-9a51-3c1f2b6d9e10"

func TestBatchRepository_CreateWithReservation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBatchRepository(mock)
	ctx := context.Background()
	price := decimal.RequireFromString("10.00")
	total := decimal.RequireFromString("20.00")

	newBatch := func() (*domain.BatchReservation, []*domain.Order) {
		batch := &domain.BatchReservation{ID: testBatchID, UserID: 1, Reference: "BATCH-1", TotalCost: total}
		orders := []*domain.Order{
			{UserID: 1, Reference: "DATA-1", Phone: "0241234567", Network: domain.NetworkMTN, Capacity: 2,
				Price: price, Gateway: domain.ProviderGeonettech, Status: domain.OrderStatusPending},
			{UserID: 1, Reference: "DATA-2", Phone: "0551234567", Network: domain.NetworkMTN, Capacity: 2,
				Price: price, Gateway: domain.ProviderGeonettech, Status: domain.OrderStatusPending},
		}
		return batch, orders
	}

	t.Run("Success", func(t *testing.T) {
		batch, orders := newBatch()
		now := time.Now()
		balanceAfter := decimal.RequireFromString("10.00")

		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE users SET wallet_balance`).
			WithArgs(total, int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"wallet_balance"}).AddRow(balanceAfter))
		mock.ExpectQuery(`INSERT INTO transactions`).
			WithArgs(int64(1), domain.EntryKindDebit, total, domain.EntryStatusCompleted, "BATCH-1", "", pgxmock.AnyArg(), balanceAfter).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))
		mock.ExpectQuery(`INSERT INTO batch_reservations`).
			WithArgs(testBatchID, int64(1), "BATCH-1", total, 2, domain.BatchStatusReserved).
			WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		for i := range orders {
			mock.ExpectQuery(`INSERT INTO data_purchases`).
				WithArgs(int64(1), orders[i].Reference, "", orders[i].Phone, domain.NetworkMTN, 2,
					price, domain.ProviderGeonettech, domain.OrderStatusPending, false, testBatchID).
				WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(i+1), now, now))
			mock.ExpectExec(`INSERT INTO order_status_history`).
				WithArgs(int64(i+1), domain.OrderStatus(""), domain.OrderStatusPending, domain.ActorSystem, "batch BATCH-1").
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}
		mock.ExpectCommit()

		created, createdOrders, err := repo.CreateWithReservation(ctx, batch, orders)
		require.NoError(t, err)
		assert.Equal(t, domain.BatchStatusReserved, created.Status)
		assert.Equal(t, 2, created.OrderCount)
		require.Len(t, createdOrders, 2)
		assert.Equal(t, int64(2), createdOrders[1].ID)
		assert.Equal(t, testBatchID, createdOrders[0].BatchID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient balance leaves no side effects", func(t *testing.T) {
		batch, orders := newBatch()

		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE users SET wallet_balance`).
			WithArgs(total, int64(1)).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(`SELECT wallet_balance FROM users`).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"wallet_balance"}).AddRow(decimal.RequireFromString("15.00")))
		mock.ExpectRollback()

		_, _, err := repo.CreateWithReservation(ctx, batch, orders)
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty batch", func(t *testing.T) {
		batch, _ := newBatch()

		_, _, err := repo.CreateWithReservation(ctx, batch, nil)
		assert.ErrorIs(t, err, domain.ErrValidation)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBatchRepository_MarkDispatched(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBatchRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE batch_reservations SET status`).
			WithArgs(domain.BatchStatusDispatched, testBatchID, domain.BatchStatusReserved).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`WITH moved AS`).
			WithArgs(domain.OrderStatusProcessing, testBatchID, domain.OrderStatusPending, domain.ActorSystem).
			WillReturnResult(pgxmock.NewResult("INSERT", 2))
		mock.ExpectCommit()

		err := repo.MarkDispatched(ctx, testBatchID)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Batch no longer reserved", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE batch_reservations SET status`).
			WithArgs(domain.BatchStatusDispatched, testBatchID, domain.BatchStatusReserved).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		err := repo.MarkDispatched(ctx, testBatchID)
		assert.ErrorIs(t, err, domain.ErrStatusConflict)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBatchRepository_Finish(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBatchRepository(mock)
	ctx := context.Background()
	refunded := decimal.RequireFromString("10.00")

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE batch_reservations SET status`).
			WithArgs(domain.BatchStatusReconciled, refunded, testBatchID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Finish(ctx, testBatchID, domain.BatchStatusReconciled, refunded)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE batch_reservations SET status`).
			WithArgs(domain.BatchStatusReconciled, refunded, testBatchID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Finish(ctx, testBatchID, domain.BatchStatusReconciled, refunded)
		assert.ErrorIs(t, err, domain.ErrBatchNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBatchRepository_ListStale(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBatchRepository(mock)
	ctx := context.Background()
	cutoff := time.Now().Add(-10 * time.Minute)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "user_id", "reference", "total_cost", "order_count",
		"refunded_amount", "status", "created_at", "updated_at"}).
		AddRow(testBatchID, int64(1), "BATCH-1", decimal.RequireFromString("30.00"), 3,
			decimal.Zero, domain.BatchStatusReserved, now, now)

	mock.ExpectQuery(`FROM batch_reservations`).
		WithArgs(domain.BatchStatusReserved, cutoff, 20).
		WillReturnRows(rows)

	batches, err := repo.ListStale(ctx, domain.BatchStatusReserved, cutoff, 20)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, testBatchID, batches[0].ID)
	assert.Equal(t, 3, batches[0].OrderCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}
