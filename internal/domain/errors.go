package domain

import "errors"

var (
	// Not-found errors. A row owned by another tenant is reported exactly
	// like a missing row so existence never leaks across tenants.
	ErrCashAccountNotFound = errors.New("cash account not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrObligationNotFound  = errors.New("obligation not found")
	ErrEntryNotFound       = errors.New("ledger entry not found")
	ErrPartyNotFound       = errors.New("party not found")
	ErrParameterNotFound   = errors.New("parameter not found")

	// Validation errors.
	ErrInvalidAmount           = errors.New("amount must be positive")
	ErrZeroAmount              = errors.New("amount must not be zero")
	ErrInvalidKind             = errors.New("category kind must be R or D")
	ErrInvalidInstallments     = errors.New("installment count must be at least 1")
	ErrMissingDescription      = errors.New("description is required")
	ErrMissingSettlementFields = errors.New("cash account and payment date are required")
	ErrDuplicateParty          = errors.New("party with the same registration number or tax id already exists")

	// Business-rule violations on delete/update.
	ErrObligationPaid   = errors.New("cannot delete a paid obligation, delete its settlement entry first")
	ErrCashAccountInUse = errors.New("cash account has ledger entries")
	ErrCategoryInUse    = errors.New("category is referenced by ledger entries or obligations")
	ErrPartyInUse       = errors.New("party is referenced by obligations")

	// Conflict errors.
	ErrObligationNotPending = errors.New("obligation is not pending")
)
