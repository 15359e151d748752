package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type CashAccount struct {
	ID             string             `json:"id"`
	TenantID       string             `json:"tenant_id"`
	Name           string             `json:"name"`
	OpeningBalance pgtype.Numeric     `json:"opening_balance"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type Category struct {
	ID        string             `json:"id"`
	TenantID  string             `json:"tenant_id"`
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Kind      string             `json:"kind"`
	Active    bool               `json:"active"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type LedgerEntry struct {
	ID                 string             `json:"id"`
	TenantID           string             `json:"tenant_id"`
	CashAccountID      string             `json:"cash_account_id"`
	CategoryID         string             `json:"category_id"`
	SourceObligationID pgtype.Text        `json:"source_obligation_id"`
	Description        string             `json:"description"`
	PostedDate         pgtype.Timestamptz `json:"posted_date"`
	Amount             pgtype.Numeric     `json:"amount"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
}

type Obligation struct {
	ID          string             `json:"id"`
	TenantID    string             `json:"tenant_id"`
	CategoryID  string             `json:"category_id"`
	PartyID     pgtype.Text        `json:"party_id"`
	Description string             `json:"description"`
	DocumentRef string             `json:"document_ref"`
	Amount      pgtype.Numeric     `json:"amount"`
	DueDate     pgtype.Timestamptz `json:"due_date"`
	Status      string             `json:"status"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type Parameter struct {
	TenantID  string             `json:"tenant_id"`
	Key       string             `json:"key"`
	Value     string             `json:"value"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Party struct {
	ID                 string             `json:"id"`
	TenantID           string             `json:"tenant_id"`
	RegistrationNumber int64              `json:"registration_number"`
	Name               string             `json:"name"`
	TaxID              string             `json:"tax_id"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	Status             string             `json:"status"`
	AdmissionDate      pgtype.Timestamptz `json:"admission_date"`
	Notes              string             `json:"notes"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
	UpdatedAt          pgtype.Timestamptz `json:"updated_at"`
}
