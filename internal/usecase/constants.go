package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// MaxInstallmentCount caps one installment series.
	MaxInstallmentCount = 120

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// defaultAccountCacheTTL is how long the resolved default cash account
	// parameter stays cached per tenant.
	defaultAccountCacheTTL = 5 * time.Minute
)
