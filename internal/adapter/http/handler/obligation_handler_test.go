package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/duarte/gocontas/internal/adapter/http/dto"
	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/usecase"
)

type stubObligationService struct {
	createFn func(ctx context.Context, input usecase.CreateObligationInput) ([]*domain.Obligation, error)
	reportFn func(ctx context.Context, input usecase.ListObligationsInput) (*usecase.ObligationsReport, error)
	getFn    func(ctx context.Context, tenantID, id string) (*domain.Obligation, error)
}

func (s *stubObligationService) CreateObligation(ctx context.Context, input usecase.CreateObligationInput) ([]*domain.Obligation, error) {
	return s.createFn(ctx, input)
}

func (s *stubObligationService) GetObligation(ctx context.Context, tenantID, id string) (*domain.Obligation, error) {
	return s.getFn(ctx, tenantID, id)
}

func (s *stubObligationService) Report(ctx context.Context, input usecase.ListObligationsInput) (*usecase.ObligationsReport, error) {
	return s.reportFn(ctx, input)
}

func (s *stubObligationService) UpdateObligation(ctx context.Context, input usecase.UpdateObligationInput) (*domain.Obligation, error) {
	return nil, domain.ErrObligationNotFound
}

func (s *stubObligationService) DeleteObligation(ctx context.Context, tenantID, id string) error {
	return domain.ErrObligationPaid
}

type stubSettlementService struct {
	settleFn func(ctx context.Context, input usecase.SettleInput) (*domain.LedgerEntry, error)
}

func (s *stubSettlementService) Settle(ctx context.Context, input usecase.SettleInput) (*domain.LedgerEntry, error) {
	return s.settleFn(ctx, input)
}

func TestObligationHandlerCreate(t *testing.T) {
	svc := &stubObligationService{
		createFn: func(ctx context.Context, input usecase.CreateObligationInput) ([]*domain.Obligation, error) {
			if input.Description != "Annual fee" || input.InstallmentCount != 3 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return []*domain.Obligation{
				{ID: "obl-1", DocumentRef: "1234-1/3"},
				{ID: "obl-2", DocumentRef: "1234-2/3"},
				{ID: "obl-3", DocumentRef: "1234-3/3"},
			}, nil
		},
	}
	h := NewObligationHandler(svc, nil)

	body := `{"description":"Annual fee","category_id":"cat-1","amount":"1000","due_date":"2026-01-31","generate_installments":true,"installment_count":3,"interest_rate_percent":"10"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/obligations/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got []*dto.ObligationResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 3 || got[2].DocumentRef != "1234-3/3" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestObligationHandlerCreateInvalidBody(t *testing.T) {
	h := NewObligationHandler(&stubObligationService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/obligations/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestObligationHandlerCreateMapsDomainError(t *testing.T) {
	svc := &stubObligationService{
		createFn: func(ctx context.Context, input usecase.CreateObligationInput) ([]*domain.Obligation, error) {
			return nil, domain.ErrInvalidInstallments
		},
	}
	h := NewObligationHandler(svc, nil)

	body := `{"description":"x","category_id":"cat-1","amount":"10","due_date":"2026-01-31","generate_installments":true,"installment_count":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/obligations/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestObligationHandlerListReceivables(t *testing.T) {
	svc := &stubObligationService{
		reportFn: func(ctx context.Context, input usecase.ListObligationsInput) (*usecase.ObligationsReport, error) {
			if input.Kind != domain.KindReceivable {
				t.Fatalf("expected receivable kind, got %q", input.Kind)
			}
			if input.Status != domain.ObligationOverdue {
				t.Fatalf("expected overdue filter, got %q", input.Status)
			}
			if input.PartyName != "mar" {
				t.Fatalf("expected party filter, got %q", input.PartyName)
			}
			return &usecase.ObligationsReport{
				Obligations: []*domain.Obligation{{ID: "obl-1", Amount: decimal.RequireFromString("150")}},
				Total:       decimal.RequireFromString("150"),
			}, nil
		},
	}
	h := NewObligationHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/receivables?status=OVERDUE&party_name=mar", nil)
	rec := httptest.NewRecorder()

	h.ListReceivables(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got dto.ObligationsReportResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got.Obligations) != 1 || !got.Total.Equal(decimal.RequireFromString("150")) {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestObligationHandlerSettle(t *testing.T) {
	settle := &stubSettlementService{
		settleFn: func(ctx context.Context, input usecase.SettleInput) (*domain.LedgerEntry, error) {
			if input.ObligationID != "obl-1" || input.CashAccountID != "acc-1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.LedgerEntry{
				ID:                 "entry-1",
				SourceObligationID: "obl-1",
				Description:        "Baixa: Monthly fee",
				Amount:             decimal.RequireFromString("250"),
			}, nil
		},
	}
	h := NewObligationHandler(&stubObligationService{}, settle)

	body := `{"cash_account_id":"acc-1","payment_date":"2026-02-10"}`
	req := newSettleRequest(t, "obl-1", body)
	rec := httptest.NewRecorder()

	h.Settle(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got dto.EntryResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Kind != "C" || got.Description != "Baixa: Monthly fee" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestObligationHandlerSettleConflict(t *testing.T) {
	settle := &stubSettlementService{
		settleFn: func(ctx context.Context, input usecase.SettleInput) (*domain.LedgerEntry, error) {
			return nil, domain.ErrObligationNotPending
		},
	}
	h := NewObligationHandler(&stubObligationService{}, settle)

	req := newSettleRequest(t, "obl-1", `{"cash_account_id":"acc-1","payment_date":"2026-02-10"}`)
	rec := httptest.NewRecorder()

	h.Settle(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestObligationHandlerDeletePaid(t *testing.T) {
	h := NewObligationHandler(&stubObligationService{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/obligations/obl-1", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "obl-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	// Deleting a paid obligation breaks a business rule, not a state race.
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func newSettleRequest(t *testing.T, obligationID, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/obligations/"+obligationID+"/settle", strings.NewReader(body))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", obligationID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
