package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/usecase"
)

// CashAccountResponse represents a cash account in API responses.
type CashAccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CashAccountFromDomain converts a domain cash account to a response.
func CashAccountFromDomain(a *domain.CashAccount) *CashAccountResponse {
	return &CashAccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		OpeningBalance: a.OpeningBalance,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// CashAccountsFromDomain converts domain cash accounts to responses.
func CashAccountsFromDomain(accounts []*domain.CashAccount) []*CashAccountResponse {
	result := make([]*CashAccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = CashAccountFromDomain(a)
	}
	return result
}

// CategoryResponse represents a chart category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryFromDomain converts a domain category to a response.
func CategoryFromDomain(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		Kind:      string(c.Kind),
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CategoriesFromDomain converts domain categories to responses.
func CategoriesFromDomain(categories []*domain.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = CategoryFromDomain(c)
	}
	return result
}

// PartyResponse represents a registrant in API responses.
type PartyResponse struct {
	ID                 string    `json:"id"`
	RegistrationNumber int64     `json:"registration_number"`
	Name               string    `json:"name"`
	TaxID              string    `json:"tax_id,omitempty"`
	Email              string    `json:"email,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	City               string    `json:"city,omitempty"`
	State              string    `json:"state,omitempty"`
	Status             string    `json:"status"`
	AdmissionDate      Date      `json:"admission_date"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// PartyFromDomain converts a domain party to a response.
func PartyFromDomain(p *domain.Party) *PartyResponse {
	return &PartyResponse{
		ID:                 p.ID,
		RegistrationNumber: p.RegistrationNumber,
		Name:               p.Name,
		TaxID:              p.TaxID,
		Email:              p.Email,
		Phone:              p.Phone,
		City:               p.City,
		State:              p.State,
		Status:             string(p.Status),
		AdmissionDate:      Date{p.AdmissionDate},
		Notes:              p.Notes,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// PartiesFromDomain converts domain parties to responses.
func PartiesFromDomain(parties []*domain.Party) []*PartyResponse {
	result := make([]*PartyResponse, len(parties))
	for i, p := range parties {
		result[i] = PartyFromDomain(p)
	}
	return result
}

// ObligationResponse represents an obligation in API responses.
type ObligationResponse struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"category_id"`
	PartyID     string          `json:"party_id,omitempty"`
	Description string          `json:"description"`
	DocumentRef string          `json:"document_ref"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     Date            `json:"due_date"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ObligationFromDomain converts a domain obligation to a response.
func ObligationFromDomain(o *domain.Obligation) *ObligationResponse {
	return &ObligationResponse{
		ID:          o.ID,
		CategoryID:  o.CategoryID,
		PartyID:     o.PartyID,
		Description: o.Description,
		DocumentRef: o.DocumentRef,
		Amount:      o.Amount,
		DueDate:     Date{o.DueDate},
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ObligationsFromDomain converts domain obligations to responses.
func ObligationsFromDomain(obligations []*domain.Obligation) []*ObligationResponse {
	result := make([]*ObligationResponse, len(obligations))
	for i, o := range obligations {
		result[i] = ObligationFromDomain(o)
	}
	return result
}

// ObligationsReportResponse is a listing together with the summed amount.
type ObligationsReportResponse struct {
	Obligations []*ObligationResponse `json:"obligations"`
	Total       decimal.Decimal       `json:"total"`
}

// ObligationsReportFromUseCase converts a usecase report to a response.
func ObligationsReportFromUseCase(r *usecase.ObligationsReport) *ObligationsReportResponse {
	return &ObligationsReportResponse{
		Obligations: ObligationsFromDomain(r.Obligations),
		Total:       r.Total,
	}
}

// EntryResponse represents a ledger entry in API responses. Kind is derived
// from the sign of the amount.
type EntryResponse struct {
	ID                 string          `json:"id"`
	CashAccountID      string          `json:"cash_account_id"`
	CategoryID         string          `json:"category_id"`
	SourceObligationID string          `json:"source_obligation_id,omitempty"`
	Description        string          `json:"description"`
	PostedDate         Date            `json:"posted_date"`
	Amount             decimal.Decimal `json:"amount"`
	Kind               string          `json:"kind"`
	CreatedAt          time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain ledger entry to a response.
func EntryFromDomain(e *domain.LedgerEntry) *EntryResponse {
	return &EntryResponse{
		ID:                 e.ID,
		CashAccountID:      e.CashAccountID,
		CategoryID:         e.CategoryID,
		SourceObligationID: e.SourceObligationID,
		Description:        e.Description,
		PostedDate:         Date{e.PostedDate},
		Amount:             e.Amount,
		Kind:               string(e.Kind()),
		CreatedAt:          e.CreatedAt,
	}
}

// EntriesFromDomain converts domain ledger entries to responses.
func EntriesFromDomain(entries []*domain.LedgerEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// StatementResponse represents a cash-flow statement in API responses.
type StatementResponse struct {
	CashAccountID  string           `json:"cash_account_id,omitempty"`
	Start          Date             `json:"start"`
	End            Date             `json:"end"`
	OpeningBalance decimal.Decimal  `json:"opening_balance"`
	PeriodTotal    decimal.Decimal  `json:"period_total"`
	ClosingBalance decimal.Decimal  `json:"closing_balance"`
	Entries        []*EntryResponse `json:"entries"`
}

// StatementFromUseCase converts a usecase statement to a response.
func StatementFromUseCase(s *usecase.Statement) *StatementResponse {
	return &StatementResponse{
		CashAccountID:  s.CashAccountID,
		Start:          Date{s.Start},
		End:            Date{s.End},
		OpeningBalance: s.OpeningBalance,
		PeriodTotal:    s.PeriodTotal,
		ClosingBalance: s.ClosingBalance,
		Entries:        EntriesFromDomain(s.Entries),
	}
}

// FlowReportResponse represents the credit/debit breakdown of a period.
type FlowReportResponse struct {
	CashAccountID string           `json:"cash_account_id,omitempty"`
	Start         Date             `json:"start"`
	End           Date             `json:"end"`
	Credits       []*EntryResponse `json:"credits"`
	Debits        []*EntryResponse `json:"debits"`
	TotalCredits  decimal.Decimal  `json:"total_credits"`
	TotalDebits   decimal.Decimal  `json:"total_debits"`
	Result        decimal.Decimal  `json:"result"`
}

// FlowReportFromUseCase converts a usecase flow report to a response.
func FlowReportFromUseCase(r *usecase.FlowReport) *FlowReportResponse {
	return &FlowReportResponse{
		CashAccountID: r.CashAccountID,
		Start:         Date{r.Start},
		End:           Date{r.End},
		Credits:       EntriesFromDomain(r.Credits),
		Debits:        EntriesFromDomain(r.Debits),
		TotalCredits:  r.TotalCredits,
		TotalDebits:   r.TotalDebits,
		Result:        r.Result,
	}
}

// DashboardResponse represents the dashboard summary in API responses.
type DashboardResponse struct {
	TotalParties       int64                 `json:"total_parties"`
	ActiveParties      int64                 `json:"active_parties"`
	MonthCredits       decimal.Decimal       `json:"month_credits"`
	MonthDebits        decimal.Decimal       `json:"month_debits"`
	MonthNet           decimal.Decimal       `json:"month_net"`
	RecentSettlements  []*EntryResponse      `json:"recent_settlements"`
	OverdueReceivables []*ObligationResponse `json:"overdue_receivables"`
}

// DashboardFromUseCase converts a usecase dashboard summary to a response.
func DashboardFromUseCase(s *usecase.DashboardSummary) *DashboardResponse {
	return &DashboardResponse{
		TotalParties:       s.TotalParties,
		ActiveParties:      s.ActiveParties,
		MonthCredits:       s.MonthCredits,
		MonthDebits:        s.MonthDebits,
		MonthNet:           s.MonthNet,
		RecentSettlements:  EntriesFromDomain(s.RecentSettlements),
		OverdueReceivables: ObligationsFromDomain(s.OverdueReceivables),
	}
}

// ParameterResponse represents a tenant parameter in API responses.
type ParameterResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
