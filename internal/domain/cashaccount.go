package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashAccount is a bank or cash bucket that ledger entries post against.
type CashAccount struct {
	ID             string
	TenantID       string
	Name           string
	OpeningBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
