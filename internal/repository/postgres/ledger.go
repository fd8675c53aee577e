package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// debitAccount decrements the balance only if it covers amount.
// The row lock taken by UPDATE serializes all balance changes of the account.
func debitAccount(ctx context.Context, q querier, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := q.QueryRow(ctx,
		`UPDATE users SET wallet_balance = wallet_balance - $1, updated_at = NOW()
		 WHERE id = $2 AND wallet_balance >= $1
		 RETURNING wallet_balance`,
		amount, userID,
	).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("repository: failed to debit account %d: %w", userID, err)
	}

	var current decimal.Decimal
	err = q.QueryRow(ctx, `SELECT wallet_balance FROM users WHERE id = $1`, userID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrAccountNotFound
		}
		return decimal.Zero, fmt.Errorf("repository: failed to read balance of account %d: %w", userID, err)
	}

	return decimal.Zero, &domain.InsufficientBalanceError{Current: current, Required: amount}
}

func creditAccount(ctx context.Context, q querier, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := q.QueryRow(ctx,
		`UPDATE users SET wallet_balance = wallet_balance + $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING wallet_balance`,
		amount, userID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrAccountNotFound
		}
		return decimal.Zero, fmt.Errorf("repository: failed to credit account %d: %w", userID, err)
	}

	return balance, nil
}

func insertEntry(ctx context.Context, q querier, e *domain.LedgerEntry) error {
	err := q.QueryRow(ctx,
		`INSERT INTO transactions (user_id, type, amount, status, reference, counterparty_reference, reason, balance_after)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)
		 RETURNING id, created_at`,
		e.UserID, e.Kind, e.Amount, e.Status, e.Reference, e.CounterpartyReference, e.Reason, e.BalanceAfter,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("repository: failed to insert ledger entry %q: %w", e.Reference, err)
	}

	return nil
}

func insertHistory(ctx context.Context, q querier, orderID int64, previous, status domain.OrderStatus, actor, note string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO order_status_history (order_id, previous_status, status, actor, note)
		 VALUES ($1, $2, $3, $4, $5)`,
		orderID, previous, status, actor, note,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to record status history of order %d: %w", orderID, err)
	}

	return nil
}

func positiveAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.NewValidationError("amount", "must be positive")
	}
	return nil
}
