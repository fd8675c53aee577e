package service

import (
	"context"
	"fmt"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ledgerHistoryLimit caps the ledger entries returned to a user
const ledgerHistoryLimit = 100

// LedgerService implements domain.WalletService
type LedgerService struct {
	wallets domain.WalletRepository
	logger  *zap.Logger
}

// NewLedgerService creates a LedgerService
func NewLedgerService(wallets domain.WalletRepository, logger *zap.Logger) *LedgerService {
	return &LedgerService{wallets: wallets, logger: logger}
}

// GetBalance returns the wallet of a user
func (s *LedgerService) GetBalance(ctx context.Context, userID int64) (*domain.Account, error) {
	account, err := s.wallets.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return account, nil
}

// ListEntries returns the newest ledger entries of a user
func (s *LedgerService) ListEntries(ctx context.Context, userID int64) ([]*domain.LedgerEntry, error) {
	entries, err := s.wallets.ListEntries(ctx, userID, ledgerHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("wallet service: failed to list entries for user %d: %w", userID, err)
	}

	return entries, nil
}

// AdminCredit adds funds to a wallet as a manual adjustment
func (s *LedgerService) AdminCredit(ctx context.Context, userID int64, amount decimal.Decimal, reason, actor string) (*domain.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	if amount.Exponent() < -2 {
		return nil, domain.NewValidationError("amount", "at most two decimal places")
	}
	if reason == "" {
		reason = "manual adjustment"
	}

	entry, err := s.wallets.Credit(ctx, userID, amount, domain.EntryKindCredit, "ADJ-"+uuid.NewString(), reason+" ("+actor+")")
	if err != nil {
		return nil, err
	}

	s.logger.Info("wallet credited by administrator",
		zap.Int64("user_id", userID),
		zap.Stringer("amount", amount),
		zap.String("actor", actor),
		zap.String("reference", entry.Reference),
	)

	return entry, nil
}
