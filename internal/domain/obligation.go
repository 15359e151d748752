package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ObligationStatus is the lifecycle status of a payable/receivable record.
type ObligationStatus string

const (
	ObligationPending   ObligationStatus = "PENDING"
	ObligationPaid      ObligationStatus = "PAID"
	ObligationCancelled ObligationStatus = "CANCELLED"

	// ObligationOverdue is a virtual status used only in list filters:
	// pending and past due. It is never stored.
	ObligationOverdue ObligationStatus = "OVERDUE"
)

// Obligation is a payable or receivable record. The kind of its category
// decides which one it is. Status moves to Paid only through settlement.
type Obligation struct {
	ID          string
	TenantID    string
	CategoryID  string
	PartyID     string // empty when not tied to a registrant
	Description string
	DocumentRef string
	Amount      decimal.Decimal
	DueDate     time.Time
	Status      ObligationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the obligation's own invariants.
func (o *Obligation) Validate() error {
	if o.Description == "" {
		return ErrMissingDescription
	}
	if o.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// Overdue reports whether the obligation is pending and past due.
func (o *Obligation) Overdue(today time.Time) bool {
	return o.Status == ObligationPending && o.DueDate.Before(today)
}
