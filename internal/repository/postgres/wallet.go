package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepository implements domain.WalletRepository
type WalletRepository struct {
	db DBTX
}

// NewWalletRepository creates a WalletRepository
func NewWalletRepository(db DBTX) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetAccount returns the wallet of a user
func (r *WalletRepository) GetAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	account := &domain.Account{}

	err := r.db.QueryRow(ctx,
		`SELECT id, wallet_balance, role FROM users WHERE id = $1`,
		userID,
	).Scan(&account.UserID, &account.Balance, &account.Role)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("repository: failed to get account %d: %w", userID, err)
	}

	return account, nil
}

// Reserve debits amount and writes the debit entry in one transaction
func (r *WalletRepository) Reserve(ctx context.Context, userID int64, amount decimal.Decimal, reference, counterparty string) (*domain.LedgerEntry, error) {
	if err := positiveAmount(amount); err != nil {
		return nil, err
	}

	entry := &domain.LedgerEntry{
		UserID:                userID,
		Kind:                  domain.EntryKindDebit,
		Amount:                amount,
		Status:                domain.EntryStatusCompleted,
		Reference:             reference,
		CounterpartyReference: counterparty,
		Reason:                "wallet debit",
	}

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		balance, err := debitAccount(ctx, tx, userID, amount)
		if err != nil {
			return err
		}
		entry.BalanceAfter = balance
		return insertEntry(ctx, tx, entry)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Credit increments the balance and writes a credit or refund entry
func (r *WalletRepository) Credit(ctx context.Context, userID int64, amount decimal.Decimal, kind domain.EntryKind, reference, reason string) (*domain.LedgerEntry, error) {
	if err := positiveAmount(amount); err != nil {
		return nil, err
	}
	if kind != domain.EntryKindCredit && kind != domain.EntryKindRefund {
		return nil, domain.NewValidationError("kind", "credit entries must be credit or refund")
	}

	entry := &domain.LedgerEntry{
		UserID:    userID,
		Kind:      kind,
		Amount:    amount,
		Status:    domain.EntryStatusCompleted,
		Reference: reference,
		Reason:    reason,
	}

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		balance, err := creditAccount(ctx, tx, userID, amount)
		if err != nil {
			return err
		}
		entry.BalanceAfter = balance
		return insertEntry(ctx, tx, entry)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ListEntries returns the newest ledger entries of a user
func (r *WalletRepository) ListEntries(ctx context.Context, userID int64, limit int) ([]*domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, type, amount, status, reference, COALESCE(counterparty_reference, ''),
		        reason, balance_after, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list ledger entries for user %d: %w", userID, err)
	}
	defer rows.Close()

	var entries []*domain.LedgerEntry
	for rows.Next() {
		e := &domain.LedgerEntry{}
		err := rows.Scan(&e.ID, &e.UserID, &e.Kind, &e.Amount, &e.Status, &e.Reference,
			&e.CounterpartyReference, &e.Reason, &e.BalanceAfter, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating ledger entries: %w", err)
	}

	return entries, nil
}
