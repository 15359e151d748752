package domain

import "time"

// ParamDefaultCashAccount is the tenant parameter key holding the id of the
// cash account the cash-flow views fall back to when no filter is given.
const ParamDefaultCashAccount = "CAIXA_PADRAO_ID"

// Parameter is a tenant-scoped key/value setting.
type Parameter struct {
	TenantID  string
	Key       string
	Value     string
	UpdatedAt time.Time
}
