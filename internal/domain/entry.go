package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind classifies a ledger entry as an inflow or outflow.
type MovementKind string

const (
	MovementCredit MovementKind = "C"
	MovementDebit  MovementKind = "D"
)

// LedgerEntry is a posted money movement against a cash account.
//
// The signed amount is the single source of truth: credits are positive,
// debits negative. The movement kind is derived from the sign and never
// stored separately.
type LedgerEntry struct {
	ID                 string
	TenantID           string
	CashAccountID      string
	CategoryID         string
	SourceObligationID string // set when the entry settled an obligation
	Description        string
	PostedDate         time.Time
	Amount             decimal.Decimal
	CreatedAt          time.Time
}

// Kind derives the movement kind from the sign of the amount.
func (e *LedgerEntry) Kind() MovementKind {
	if e.Amount.IsNegative() {
		return MovementDebit
	}
	return MovementCredit
}

// Settlement reports whether the entry was produced by settling an obligation.
func (e *LedgerEntry) Settlement() bool {
	return e.SourceObligationID != ""
}
