package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/infrastructure/metrics"
)

// ObligationUseCase handles payable/receivable business logic, including
// installment generation.
type ObligationUseCase struct {
	txManager      TransactionManager
	obligationRepo ObligationRepository
	categoryRepo   CategoryRepository
	partyRepo      PartyRepository
	idGen          IDGenerator
	docRefs        DocRefGenerator
	metrics        *metrics.Metrics
}

// NewObligationUseCase creates a new ObligationUseCase.
func NewObligationUseCase(
	txManager TransactionManager,
	obligationRepo ObligationRepository,
	categoryRepo CategoryRepository,
	partyRepo PartyRepository,
	idGen IDGenerator,
	docRefs DocRefGenerator,
	metrics *metrics.Metrics,
) *ObligationUseCase {
	return &ObligationUseCase{
		txManager:      txManager,
		obligationRepo: obligationRepo,
		categoryRepo:   categoryRepo,
		partyRepo:      partyRepo,
		idGen:          idGen,
		docRefs:        docRefs,
		metrics:        metrics,
	}
}

// CreateObligationInput represents input for creating an obligation, with or
// without installments.
type CreateObligationInput struct {
	TenantID             string
	Description          string
	CategoryID           string
	PartyID              string
	Amount               decimal.Decimal
	DueDate              time.Time
	GenerateInstallments bool
	InstallmentCount     int
	InterestRatePercent  decimal.Decimal
}

// CreateObligation persists one obligation, or expands the request into an
// installment series. The whole series is written in a single transaction.
func (uc *ObligationUseCase) CreateObligation(ctx context.Context, input CreateObligationInput) ([]*domain.Obligation, error) {
	if input.Description == "" {
		return nil, domain.ErrMissingDescription
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	if _, err := uc.categoryRepo.GetByID(ctx, input.TenantID, input.CategoryID); err != nil {
		return nil, err
	}
	if input.PartyID != "" {
		if _, err := uc.partyRepo.GetByID(ctx, input.TenantID, input.PartyID); err != nil {
			return nil, err
		}
	}

	count := 1
	if input.GenerateInstallments {
		count = input.InstallmentCount
		if count < 1 || count > MaxInstallmentCount {
			return nil, domain.ErrInvalidInstallments
		}
	}

	obligations := uc.buildObligations(input, count)

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	for _, o := range obligations {
		if err := uc.obligationRepo.Create(txCtx, tx, o); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ObligationsCreated.Add(float64(len(obligations)))
		if input.GenerateInstallments {
			uc.metrics.InstallmentSeriesGenerated.Inc()
		}
	}

	return obligations, nil
}

// buildObligations expands the request into its rows. Installment amounts are
// the grand total split evenly and rounded to cents, with the final
// installment absorbing the rounding remainder so the series sums exactly.
func (uc *ObligationUseCase) buildObligations(input CreateObligationInput, count int) []*domain.Obligation {
	now := time.Now().UTC()

	if !input.GenerateInstallments {
		return []*domain.Obligation{{
			ID:          uc.idGen.Generate(),
			TenantID:    input.TenantID,
			CategoryID:  input.CategoryID,
			PartyID:     input.PartyID,
			Description: input.Description,
			DocumentRef: uc.docRefs.Single(),
			Amount:      input.Amount,
			DueDate:     input.DueDate,
			Status:      domain.ObligationPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}}
	}

	hundred := decimal.NewFromInt(100)
	surcharge := input.Amount.Mul(input.InterestRatePercent.Div(hundred))
	grandTotal := input.Amount.Add(surcharge)

	perInstallment := grandTotal.Div(decimal.NewFromInt(int64(count))).Round(2)
	group := uc.docRefs.Group()

	obligations := make([]*domain.Obligation, 0, count)
	for i := 0; i < count; i++ {
		amount := perInstallment
		if i == count-1 {
			amount = grandTotal.Sub(perInstallment.Mul(decimal.NewFromInt(int64(count - 1))))
		}

		obligations = append(obligations, &domain.Obligation{
			ID:          uc.idGen.Generate(),
			TenantID:    input.TenantID,
			CategoryID:  input.CategoryID,
			PartyID:     input.PartyID,
			Description: input.Description,
			DocumentRef: fmt.Sprintf("%s-%d/%d", group, i+1, count),
			Amount:      amount,
			DueDate:     domain.AddMonths(input.DueDate, i),
			Status:      domain.ObligationPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return obligations
}

// GetObligation retrieves an obligation by id within the tenant.
func (uc *ObligationUseCase) GetObligation(ctx context.Context, tenantID, id string) (*domain.Obligation, error) {
	return uc.obligationRepo.GetByID(ctx, tenantID, id)
}

// ListObligationsInput represents input for listing obligations.
type ListObligationsInput struct {
	TenantID  string
	Kind      domain.CategoryKind
	DueFrom   *time.Time
	DueTo     *time.Time
	PartyName string
	Status    domain.ObligationStatus
}

// ListObligations lists obligations of one kind, ordered by due date
// ascending. Status may be the virtual Overdue filter.
func (uc *ObligationUseCase) ListObligations(ctx context.Context, input ListObligationsInput) ([]*domain.Obligation, error) {
	return uc.obligationRepo.List(ctx, input.TenantID, ObligationFilter{
		Kind:      input.Kind,
		DueFrom:   input.DueFrom,
		DueTo:     input.DueTo,
		PartyName: input.PartyName,
		Status:    input.Status,
		Today:     time.Now().UTC(),
	})
}

// ObligationsReport is a printable listing with its total.
type ObligationsReport struct {
	Obligations []*domain.Obligation
	Total       decimal.Decimal
}

// Report returns the filtered listing together with the summed amount.
func (uc *ObligationUseCase) Report(ctx context.Context, input ListObligationsInput) (*ObligationsReport, error) {
	filter := ObligationFilter{
		Kind:      input.Kind,
		DueFrom:   input.DueFrom,
		DueTo:     input.DueTo,
		PartyName: input.PartyName,
		Status:    input.Status,
		Today:     time.Now().UTC(),
	}

	obligations, err := uc.obligationRepo.List(ctx, input.TenantID, filter)
	if err != nil {
		return nil, err
	}

	total, err := uc.obligationRepo.SumAmount(ctx, input.TenantID, filter)
	if err != nil {
		return nil, err
	}

	return &ObligationsReport{Obligations: obligations, Total: total}, nil
}

// UpdateObligationInput represents input for editing an obligation.
type UpdateObligationInput struct {
	TenantID    string
	ID          string
	Description string
	CategoryID  string
	PartyID     string
	Amount      decimal.Decimal
	DueDate     time.Time
}

// UpdateObligation edits a not-yet-paid obligation. The replacement category
// must belong to the tenant and keep the original kind.
func (uc *ObligationUseCase) UpdateObligation(ctx context.Context, input UpdateObligationInput) (*domain.Obligation, error) {
	obligation, err := uc.obligationRepo.GetByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, err
	}

	if obligation.Status == domain.ObligationPaid {
		return nil, domain.ErrObligationPaid
	}

	if input.CategoryID != obligation.CategoryID {
		current, err := uc.categoryRepo.GetByID(ctx, input.TenantID, obligation.CategoryID)
		if err != nil {
			return nil, err
		}
		replacement, err := uc.categoryRepo.GetByID(ctx, input.TenantID, input.CategoryID)
		if err != nil {
			return nil, err
		}
		if replacement.Kind != current.Kind {
			return nil, domain.ErrInvalidKind
		}
	}
	if input.PartyID != "" && input.PartyID != obligation.PartyID {
		if _, err := uc.partyRepo.GetByID(ctx, input.TenantID, input.PartyID); err != nil {
			return nil, err
		}
	}

	obligation.Description = input.Description
	obligation.CategoryID = input.CategoryID
	obligation.PartyID = input.PartyID
	obligation.Amount = input.Amount
	obligation.DueDate = input.DueDate
	obligation.UpdatedAt = time.Now().UTC()

	if err := obligation.Validate(); err != nil {
		return nil, err
	}

	if err := uc.obligationRepo.Update(ctx, obligation); err != nil {
		return nil, err
	}

	return obligation, nil
}

// DeleteObligation deletes an obligation unless it has been paid.
func (uc *ObligationUseCase) DeleteObligation(ctx context.Context, tenantID, id string) error {
	obligation, err := uc.obligationRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	if obligation.Status == domain.ObligationPaid {
		return domain.ErrObligationPaid
	}

	return uc.obligationRepo.Delete(ctx, tenantID, id)
}
