package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/internal/domain/enum"
	"github.com/sofazi/backoffice-api/internal/domain/repository"
	"github.com/sofazi/backoffice-api/pkg/apperror"
	"github.com/sofazi/backoffice-api/pkg/pagination"
)

// DebtService keeps the debt ledger in sync with the source transactions
// it is derived from. Derivation is idempotent per (source_type,
// source_id); payments recorded on a debt flow back to the source.
type DebtService struct {
	debtRepo      repository.DebtRepository
	expenseRepo   repository.ExpenseRepository
	transportRepo repository.TransportRepository
	purchaseRepo  repository.PurchaseRepository
}

// NewDebtService creates a new debt service
func NewDebtService(
	debtRepo repository.DebtRepository,
	expenseRepo repository.ExpenseRepository,
	transportRepo repository.TransportRepository,
	purchaseRepo repository.PurchaseRepository,
) *DebtService {
	return &DebtService{
		debtRepo:      debtRepo,
		expenseRepo:   expenseRepo,
		transportRepo: transportRepo,
		purchaseRepo:  purchaseRepo,
	}
}

// DeriveFromSource opens a debt for an unsettled source transaction. It is
// a no-op when the source is already fully paid or a debt for it already
// exists, so calling it repeatedly never duplicates.
func (s *DebtService) DeriveFromSource(ctx context.Context, src entity.SourceTransaction) (*entity.Debt, error) {
	if src.OutstandingAmount() <= 0 {
		return nil, nil
	}

	// Purchases without a supplier have no debtor to attach the debt to.
	if src.SourceType() == enum.SourceTypePurchase && src.DebtorContact().Name == "" {
		return nil, nil
	}

	sourceID := src.SourceID()
	existing, err := s.debtRepo.GetBySource(ctx, src.SourceType(), sourceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	contact := src.DebtorContact()
	debt := &entity.Debt{
		Name:        contact.Name,
		Phone:       contact.Phone,
		Address:     contact.Address,
		DebtAmount:  src.DebtBasis(),
		StartDate:   src.TransactionDate(),
		Status:      enum.DebtStatusUnpaid,
		SourceType:  src.SourceType(),
		SourceID:    &sourceID,
		Description: src.DebtDescription(),
		RecordedBy:  src.Recorder(),
	}

	// Transport debts open over the amount still owed, so the source's
	// earlier payments are already baked into the debt amount. The other
	// sources open over their full value and carry the paid figure across.
	if src.SourceType() != enum.SourceTypeTransport {
		debt.PaidAmount = src.PaidToDate()
	}

	if err := s.debtRepo.Create(ctx, debt); err != nil {
		return nil, err
	}
	return debt, nil
}

// Backfill scans every unsettled source transaction and derives debts for
// the ones that have none yet. Errors on individual sources are logged and
// skipped so one bad row never blocks the rest.
func (s *DebtService) Backfill(ctx context.Context) error {
	expenses, err := s.expenseRepo.ListUnsettled(ctx)
	if err != nil {
		return err
	}
	for i := range expenses {
		if _, err := s.DeriveFromSource(ctx, &expenses[i]); err != nil {
			log.Printf("debt backfill: expense %s: %v", expenses[i].ID, err)
		}
	}

	purchases, err := s.purchaseRepo.ListUnsettled(ctx)
	if err != nil {
		return err
	}
	for i := range purchases {
		if _, err := s.DeriveFromSource(ctx, &purchases[i]); err != nil {
			log.Printf("debt backfill: purchase %s: %v", purchases[i].ID, err)
		}
	}

	transports, err := s.transportRepo.ListUnsettled(ctx)
	if err != nil {
		return err
	}
	for i := range transports {
		if _, err := s.DeriveFromSource(ctx, &transports[i]); err != nil {
			log.Printf("debt backfill: transport %s: %v", transports[i].ID, err)
		}
	}

	return nil
}

// ApplyPayment records a partial or full payment against a debt and pushes
// the new cumulative total back to the source transaction. A payment
// larger than the remaining balance is rejected whole, never truncated.
// The date stamps PaymentDate when the payment settles the debt; a zero
// date means today.
func (s *DebtService) ApplyPayment(ctx context.Context, debtID uuid.UUID, amount float64, date time.Time) (*entity.Debt, error) {
	// Amounts live in 2-decimal currency; sub-cent fractions would slip
	// past the balance check and leave paid above the face value.
	amount = roundMoney(amount)
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount
	}

	debt, err := s.debtRepo.GetByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, apperror.NewNotFoundError("Debt")
	}

	remaining := debt.RemainingAmount()
	if amount > remaining {
		return nil, apperror.NewBalanceExceededError(
			fmt.Sprintf("Payment of %.2f exceeds remaining debt of %.2f", amount, remaining))
	}

	debt.PaidAmount += amount
	if debt.Settled() {
		debt.Status = enum.DebtStatusPaid
		if date.IsZero() {
			date = time.Now().UTC()
		}
		debt.PaymentDate = &date
	}

	if err := s.debtRepo.Update(ctx, debt); err != nil {
		return nil, err
	}

	if err := s.syncSource(ctx, debt); err != nil {
		// The debt is the authoritative record; a failed source sync is
		// repaired by the next payment's full-value overwrite.
		log.Printf("debt %s: source sync failed: %v", debt.ID, err)
	}

	return debt, nil
}

// syncSource overwrites the source's paid total with the debt's cumulative
// figure. Expenses and transports sync on every payment; purchases only
// settle through PayInFull. A missing source row is reported, not
// swallowed; the caller decides it is non-fatal.
func (s *DebtService) syncSource(ctx context.Context, debt *entity.Debt) error {
	if debt.SourceID == nil {
		return nil
	}

	switch debt.SourceType {
	case enum.SourceTypeExpense:
		expense, err := s.expenseRepo.GetByID(ctx, *debt.SourceID)
		if err != nil {
			return err
		}
		if expense == nil {
			return fmt.Errorf("expense %s no longer exists", *debt.SourceID)
		}
		expense.SyncPaidAmount(debt.PaidAmount)
		return s.expenseRepo.Update(ctx, expense)

	case enum.SourceTypeTransport:
		transport, err := s.transportRepo.GetByID(ctx, *debt.SourceID)
		if err != nil {
			return err
		}
		if transport == nil {
			return fmt.Errorf("transport %s no longer exists", *debt.SourceID)
		}
		transport.SyncPaidAmount(debt.PaidAmount)
		return s.transportRepo.Update(ctx, transport)
	}

	return nil
}

// PayInFull settles a debt in one step and marks the expense or purchase
// behind it as fully paid.
func (s *DebtService) PayInFull(ctx context.Context, debtID uuid.UUID) (*entity.Debt, error) {
	debt, err := s.debtRepo.GetByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, apperror.NewNotFoundError("Debt")
	}

	debt.PaidAmount = debt.DebtAmount
	debt.Status = enum.DebtStatusPaid
	now := time.Now().UTC()
	debt.PaymentDate = &now

	if err := s.debtRepo.Update(ctx, debt); err != nil {
		return nil, err
	}

	if debt.SourceID != nil {
		switch debt.SourceType {
		case enum.SourceTypeExpense:
			expense, err := s.expenseRepo.GetByID(ctx, *debt.SourceID)
			if err == nil && expense != nil {
				expense.MarkSettled()
				if err := s.expenseRepo.Update(ctx, expense); err != nil {
					log.Printf("debt %s: expense settle failed: %v", debt.ID, err)
				}
			}
		case enum.SourceTypePurchase:
			purchase, err := s.purchaseRepo.GetByID(ctx, *debt.SourceID)
			if err == nil && purchase != nil {
				purchase.MarkSettled()
				if err := s.purchaseRepo.Update(ctx, purchase); err != nil {
					log.Printf("debt %s: purchase settle failed: %v", debt.ID, err)
				}
			}
		}
	}

	return debt, nil
}

// CreateManualDebtInput represents the input for a manually entered debt
type CreateManualDebtInput struct {
	Name        string
	Phone       string
	Address     string
	DebtAmount  float64
	PaidAmount  float64
	StartDate   time.Time
	Description string
}

// CreateManual records a debt that has no source transaction behind it.
func (s *DebtService) CreateManual(ctx context.Context, input *CreateManualDebtInput, recordedBy string) (*entity.Debt, error) {
	if input.DebtAmount <= 0 {
		return nil, apperror.ErrInvalidAmount
	}
	if input.PaidAmount > input.DebtAmount {
		return nil, apperror.NewBalanceExceededError("Paid amount exceeds debt amount")
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now().UTC()
	}

	debt := &entity.Debt{
		Name:        input.Name,
		Phone:       input.Phone,
		Address:     input.Address,
		DebtAmount:  input.DebtAmount,
		PaidAmount:  input.PaidAmount,
		StartDate:   startDate,
		Status:      enum.DebtStatusUnpaid,
		SourceType:  enum.SourceTypeManual,
		Description: input.Description,
		RecordedBy:  recordedBy,
	}
	if debt.Settled() {
		debt.Status = enum.DebtStatusPaid
		now := time.Now().UTC()
		debt.PaymentDate = &now
	}

	if err := s.debtRepo.Create(ctx, debt); err != nil {
		return nil, err
	}
	return debt, nil
}

// GetDebt returns a debt by ID
func (s *DebtService) GetDebt(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	debt, err := s.debtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, apperror.NewNotFoundError("Debt")
	}
	return debt, nil
}

// ListDebts backfills missing derived debts, then returns the filtered
// page. The backfill keeps the ledger complete even for sources written
// before derivation existed; its failure only logs, the listing still
// answers.
func (s *DebtService) ListDebts(ctx context.Context, params *repository.DebtFilterParams) (*pagination.PaginatedResult[entity.Debt], error) {
	if err := s.Backfill(ctx); err != nil {
		log.Printf("debt backfill failed: %v", err)
	}

	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	debts, total, err := s.debtRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(debts, p), nil
}

// UpdateDebtInput represents the editable fields of a debt
type UpdateDebtInput struct {
	Name        *string
	Phone       *string
	Address     *string
	Description *string
}

// UpdateDebt edits a debt's contact fields. Amounts only move through
// payments.
func (s *DebtService) UpdateDebt(ctx context.Context, id uuid.UUID, input *UpdateDebtInput) (*entity.Debt, error) {
	debt, err := s.debtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, apperror.NewNotFoundError("Debt")
	}

	if input.Name != nil {
		debt.Name = *input.Name
	}
	if input.Phone != nil {
		debt.Phone = *input.Phone
	}
	if input.Address != nil {
		debt.Address = *input.Address
	}
	if input.Description != nil {
		debt.Description = *input.Description
	}

	if err := s.debtRepo.Update(ctx, debt); err != nil {
		return nil, err
	}
	return debt, nil
}

// DeleteDebt removes a debt. The source transaction is left untouched;
// if it is still unsettled the next backfill re-derives the debt.
func (s *DebtService) DeleteDebt(ctx context.Context, id uuid.UUID) error {
	debt, err := s.debtRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if debt == nil {
		return apperror.NewNotFoundError("Debt")
	}
	return s.debtRepo.Delete(ctx, id)
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
