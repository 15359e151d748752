package handler

import (
	"context"
	"net/http"

	"github.com/duarte/gocontas/internal/adapter/http/dto"
	"github.com/duarte/gocontas/internal/adapter/http/middleware"
	"github.com/duarte/gocontas/internal/usecase"
)

// CashFlowService defines the behavior needed by CashFlowHandler.
type CashFlowService interface {
	GetStatement(ctx context.Context, input usecase.StatementInput) (*usecase.Statement, error)
	GetReport(ctx context.Context, input usecase.StatementInput) (*usecase.FlowReport, error)
}

// CashFlowHandler handles cash-flow HTTP requests.
type CashFlowHandler struct {
	cashFlowUC CashFlowService
}

// NewCashFlowHandler creates a new CashFlowHandler.
func NewCashFlowHandler(cashFlowUC CashFlowService) *CashFlowHandler {
	return &CashFlowHandler{cashFlowUC: cashFlowUC}
}

func statementInput(r *http.Request) usecase.StatementInput {
	return usecase.StatementInput{
		TenantID:      middleware.TenantFromContext(r.Context()),
		Start:         parseDateQuery(r, "start"),
		End:           parseDateQuery(r, "end"),
		CashAccountID: r.URL.Query().Get("cash_account_id"),
	}
}

// Statement returns opening balance, entries and closing balance for a period.
func (h *CashFlowHandler) Statement(w http.ResponseWriter, r *http.Request) {
	statement, err := h.cashFlowUC.GetStatement(r.Context(), statementInput(r))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(statement))
}

// Report returns the credit/debit breakdown of a period.
func (h *CashFlowHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.cashFlowUC.GetReport(r.Context(), statementInput(r))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FlowReportFromUseCase(report))
}
