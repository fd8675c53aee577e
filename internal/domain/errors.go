package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Purchase errors
var (
	ErrValidation          = errors.New("validation failed")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrOutOfStock          = errors.New("network out of stock")
	ErrProviderRejected    = errors.New("provider rejected order")
	ErrProviderTransient   = errors.New("provider outcome unknown")
	ErrDuplicateReference  = errors.New("duplicate reference")
	ErrIdempotencyMismatch = errors.New("idempotency key reused with a different request")
	ErrPersistence         = errors.New("internal persistence failure")
)

// Lookup errors
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInventoryNotFound = errors.New("inventory record not found")
	ErrBatchNotFound     = errors.New("batch not found")
)

// Status errors
var (
	ErrAlreadyCompensated = errors.New("order already compensated")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrStatusConflict     = errors.New("order status changed concurrently")
)

// ValidationError describes a rejected request field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// InsufficientBalanceError carries the balance seen at reservation time
type InsufficientBalanceError struct {
	Current  decimal.Decimal
	Required decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: current %s, required %s", e.Current.StringFixed(2), e.Required.StringFixed(2))
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// ProviderRejectedError carries the user-safe rejection reason
type ProviderRejectedError struct {
	Reference string
	Reason    string
}

func (e *ProviderRejectedError) Error() string {
	return fmt.Sprintf("order %s rejected: %s", e.Reference, e.Reason)
}

func (e *ProviderRejectedError) Is(target error) bool {
	return target == ErrProviderRejected
}

// BatchRejectedError is returned when no order of a batch can be placed.
// Skipped holds the verdict of every candidate.
type BatchRejectedError struct {
	Skipped []ClassifiedCandidate
}

func (e *BatchRejectedError) Error() string {
	reasons := make([]string, len(e.Skipped))
	for i, c := range e.Skipped {
		reasons[i] = fmt.Sprintf("#%d %s", c.Index, c.Reason)
	}
	return fmt.Sprintf("orders: none of the %d orders can be placed: %s", len(e.Skipped), strings.Join(reasons, "; "))
}

func (e *BatchRejectedError) Is(target error) bool {
	return target == ErrValidation
}
