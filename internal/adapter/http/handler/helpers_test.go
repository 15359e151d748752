package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/duarte/gocontas/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"cash account not found", domain.ErrCashAccountNotFound, http.StatusNotFound},
		{"obligation not found", domain.ErrObligationNotFound, http.StatusNotFound},
		{"parameter not found", domain.ErrParameterNotFound, http.StatusNotFound},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"missing description", domain.ErrMissingDescription, http.StatusBadRequest},
		{"missing settlement fields", domain.ErrMissingSettlementFields, http.StatusBadRequest},
		{"invalid installments", domain.ErrInvalidInstallments, http.StatusBadRequest},
		{"not pending is a conflict", domain.ErrObligationNotPending, http.StatusConflict},
		{"duplicate party is a conflict", domain.ErrDuplicateParty, http.StatusConflict},
		{"paid obligation fails validation", domain.ErrObligationPaid, http.StatusBadRequest},
		{"cash account in use fails validation", domain.ErrCashAccountInUse, http.StatusBadRequest},
		{"category in use fails validation", domain.ErrCategoryInUse, http.StatusBadRequest},
		{"party in use fails validation", domain.ErrPartyInUse, http.StatusBadRequest},
		{"unknown error is a 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.want {
				t.Errorf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestParseDateQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?from=2026-03-01&bad=not-a-date", nil)

	got := parseDateQuery(req, "from")
	want := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDateQuery(from) = %v, want %v", got, want)
	}

	if got := parseDateQuery(req, "bad"); !got.IsZero() {
		t.Errorf("malformed date parsed to %v, want zero", got)
	}

	if got := parseDateQuery(req, "missing"); !got.IsZero() {
		t.Errorf("missing date parsed to %v, want zero", got)
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=25&bad=x", nil)

	if got := parseIntQuery(req, "limit", 10); got != 25 {
		t.Errorf("parseIntQuery(limit) = %d, want 25", got)
	}
	if got := parseIntQuery(req, "bad", 10); got != 10 {
		t.Errorf("parseIntQuery(bad) = %d, want default 10", got)
	}
	if got := parseIntQuery(req, "missing", 10); got != 10 {
		t.Errorf("parseIntQuery(missing) = %d, want default 10", got)
	}
}
