package domain

import "time"

// CategoryKind classifies a chart-of-accounts category.
type CategoryKind string

const (
	// KindReceivable marks income categories ("R" in the chart of accounts).
	KindReceivable CategoryKind = "R"
	// KindPayable marks expense categories ("D" in the chart of accounts).
	KindPayable CategoryKind = "D"
)

// Valid reports whether the kind is one of the two chart kinds.
func (k CategoryKind) Valid() bool {
	return k == KindReceivable || k == KindPayable
}

// Category is a chart-of-accounts classification. Its kind decides whether
// obligations under it are receivables or payables.
type Category struct {
	ID        string
	TenantID  string
	Code      string
	Name      string
	Kind      CategoryKind
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
