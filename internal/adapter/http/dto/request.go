package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/usecase"
)

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// Date is a date-only JSON value ("2006-01-02").
type Date struct {
	time.Time
}

// UnmarshalJSON parses a quoted date-only string. Empty and null stay zero.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}

	d.Time = t
	return nil
}

// MarshalJSON writes the date-only form.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// CreateObligationRequest represents a request to create an obligation, with
// or without installments.
type CreateObligationRequest struct {
	Description          string          `json:"description"`
	CategoryID           string          `json:"category_id"`
	PartyID              string          `json:"party_id,omitempty"`
	Amount               decimal.Decimal `json:"amount"`
	DueDate              Date            `json:"due_date"`
	GenerateInstallments bool            `json:"generate_installments"`
	InstallmentCount     int             `json:"installment_count,omitempty"`
	InterestRatePercent  decimal.Decimal `json:"interest_rate_percent,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateObligationRequest) ToUseCaseInput(tenantID string) usecase.CreateObligationInput {
	return usecase.CreateObligationInput{
		TenantID:             tenantID,
		Description:          r.Description,
		CategoryID:           r.CategoryID,
		PartyID:              r.PartyID,
		Amount:               r.Amount,
		DueDate:              r.DueDate.Time,
		GenerateInstallments: r.GenerateInstallments,
		InstallmentCount:     r.InstallmentCount,
		InterestRatePercent:  r.InterestRatePercent,
	}
}

// UpdateObligationRequest represents a request to edit an obligation.
type UpdateObligationRequest struct {
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id"`
	PartyID     string          `json:"party_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     Date            `json:"due_date"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateObligationRequest) ToUseCaseInput(tenantID, id string) usecase.UpdateObligationInput {
	return usecase.UpdateObligationInput{
		TenantID:    tenantID,
		ID:          id,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		PartyID:     r.PartyID,
		Amount:      r.Amount,
		DueDate:     r.DueDate.Time,
	}
}

// SettleRequest represents a request to settle an obligation.
type SettleRequest struct {
	CashAccountID string `json:"cash_account_id"`
	PaymentDate   Date   `json:"payment_date"`
}

// ToUseCaseInput converts to use case input.
func (r *SettleRequest) ToUseCaseInput(tenantID, obligationID string) usecase.SettleInput {
	return usecase.SettleInput{
		TenantID:      tenantID,
		ObligationID:  obligationID,
		CashAccountID: r.CashAccountID,
		PaymentDate:   r.PaymentDate.Time,
	}
}

// CreateEntryRequest represents a request to post a manual ledger entry.
// Amount is signed: positive credits, negative debits.
type CreateEntryRequest struct {
	CashAccountID string          `json:"cash_account_id"`
	CategoryID    string          `json:"category_id"`
	Description   string          `json:"description"`
	PostedDate    Date            `json:"posted_date"`
	Amount        decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateEntryRequest) ToUseCaseInput(tenantID string) usecase.CreateEntryInput {
	return usecase.CreateEntryInput{
		TenantID:      tenantID,
		CashAccountID: r.CashAccountID,
		CategoryID:    r.CategoryID,
		Description:   r.Description,
		PostedDate:    r.PostedDate.Time,
		Amount:        r.Amount,
	}
}

// CreateCashAccountRequest represents a request to create a cash account.
type CreateCashAccountRequest struct {
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCashAccountRequest) ToUseCaseInput(tenantID string) usecase.CreateCashAccountInput {
	return usecase.CreateCashAccountInput{
		TenantID:       tenantID,
		Name:           r.Name,
		OpeningBalance: r.OpeningBalance,
	}
}

// UpdateCashAccountRequest represents a request to edit a cash account.
type UpdateCashAccountRequest struct {
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateCashAccountRequest) ToUseCaseInput(tenantID, id string) usecase.UpdateCashAccountInput {
	return usecase.UpdateCashAccountInput{
		TenantID:       tenantID,
		ID:             id,
		Name:           r.Name,
		OpeningBalance: r.OpeningBalance,
	}
}

// CreateCategoryRequest represents a request to create a chart category.
type CreateCategoryRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCategoryRequest) ToUseCaseInput(tenantID string) usecase.CreateCategoryInput {
	return usecase.CreateCategoryInput{
		TenantID: tenantID,
		Code:     r.Code,
		Name:     r.Name,
		Kind:     domain.CategoryKind(r.Kind),
	}
}

// UpdateCategoryRequest represents a request to edit a chart category.
type UpdateCategoryRequest struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Active bool   `json:"active"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateCategoryRequest) ToUseCaseInput(tenantID, id string) usecase.UpdateCategoryInput {
	return usecase.UpdateCategoryInput{
		TenantID: tenantID,
		ID:       id,
		Code:     r.Code,
		Name:     r.Name,
		Kind:     domain.CategoryKind(r.Kind),
		Active:   r.Active,
	}
}

// CreatePartyRequest represents a request to register a party.
type CreatePartyRequest struct {
	RegistrationNumber int64  `json:"registration_number"`
	Name               string `json:"name"`
	TaxID              string `json:"tax_id,omitempty"`
	Email              string `json:"email,omitempty"`
	Phone              string `json:"phone,omitempty"`
	City               string `json:"city,omitempty"`
	State              string `json:"state,omitempty"`
	AdmissionDate      Date   `json:"admission_date,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePartyRequest) ToUseCaseInput(tenantID string) usecase.CreatePartyInput {
	return usecase.CreatePartyInput{
		TenantID:           tenantID,
		RegistrationNumber: r.RegistrationNumber,
		Name:               r.Name,
		TaxID:              r.TaxID,
		Email:              r.Email,
		Phone:              r.Phone,
		City:               r.City,
		State:              r.State,
		AdmissionDate:      r.AdmissionDate.Time,
		Notes:              r.Notes,
	}
}

// UpdatePartyRequest represents a request to edit a party.
type UpdatePartyRequest struct {
	RegistrationNumber int64  `json:"registration_number"`
	Name               string `json:"name"`
	TaxID              string `json:"tax_id,omitempty"`
	Email              string `json:"email,omitempty"`
	Phone              string `json:"phone,omitempty"`
	City               string `json:"city,omitempty"`
	State              string `json:"state,omitempty"`
	Status             string `json:"status"`
	AdmissionDate      Date   `json:"admission_date,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdatePartyRequest) ToUseCaseInput(tenantID, id string) usecase.UpdatePartyInput {
	return usecase.UpdatePartyInput{
		TenantID:           tenantID,
		ID:                 id,
		RegistrationNumber: r.RegistrationNumber,
		Name:               r.Name,
		TaxID:              r.TaxID,
		Email:              r.Email,
		Phone:              r.Phone,
		City:               r.City,
		State:              r.State,
		Status:             domain.PartyStatus(r.Status),
		AdmissionDate:      r.AdmissionDate.Time,
		Notes:              r.Notes,
	}
}

// SetParameterRequest represents a request to set a tenant parameter.
type SetParameterRequest struct {
	Value string `json:"value"`
}
