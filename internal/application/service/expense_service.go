package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/internal/domain/enum"
	"github.com/sofazi/backoffice-api/internal/domain/repository"
	"github.com/sofazi/backoffice-api/pkg/apperror"
	"github.com/sofazi/backoffice-api/pkg/pagination"
)

// ExpenseService handles expense records. Creating an unsettled expense
// derives a debt for it in the same request; the expense itself is saved
// even when derivation fails.
type ExpenseService struct {
	expenseRepo  repository.ExpenseRepository
	categoryRepo repository.ExpenseCategoryRepository
	supplierRepo repository.SupplierRepository
	priceRepo    repository.PriceHistoryRepository
	debtService  *DebtService
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	expenseRepo repository.ExpenseRepository,
	categoryRepo repository.ExpenseCategoryRepository,
	supplierRepo repository.SupplierRepository,
	priceRepo repository.PriceHistoryRepository,
	debtService *DebtService,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		priceRepo:    priceRepo,
		debtService:  debtService,
	}
}

// CreateExpenseInput represents the input for creating an expense
type CreateExpenseInput struct {
	CategoryID    *uuid.UUID
	SupplierID    *uuid.UUID
	Description   string
	Quantity      int
	UnitPrice     float64
	TotalAmount   float64
	PaidAmount    float64
	PurchasedBy   string
	PurchaseDate  time.Time
	PaymentStatus enum.PaymentStatus
	PaymentMethod string
	Notes         string
	TrackPrice    bool
}

// CreateExpense records an expense and, when it is not fully paid, derives
// a debt for the unpaid part.
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput, recordedBy string) (*entity.Expense, error) {
	if input.TotalAmount <= 0 {
		return nil, apperror.ErrInvalidAmount
	}
	if input.PaidAmount < 0 || input.PaidAmount > input.TotalAmount {
		return nil, apperror.NewBadRequestError("Paid amount must be between zero and the total")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}
	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}
	purchaseDate := input.PurchaseDate
	if purchaseDate.IsZero() {
		purchaseDate = time.Now().UTC()
	}
	purchasedBy := input.PurchasedBy
	if purchasedBy == "" {
		purchasedBy = "owner"
	}

	status := input.PaymentStatus
	if status == "" {
		status = enum.PaymentStatusFor(input.PaidAmount, input.TotalAmount)
	}

	expense := &entity.Expense{
		CategoryID:    input.CategoryID,
		SupplierID:    input.SupplierID,
		Description:   input.Description,
		Quantity:      quantity,
		UnitPrice:     input.UnitPrice,
		TotalAmount:   input.TotalAmount,
		PaidAmount:    input.PaidAmount,
		PurchasedBy:   purchasedBy,
		RecordedBy:    recordedBy,
		PurchaseDate:  purchaseDate,
		PaymentStatus: status,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	if input.TrackPrice && input.UnitPrice > 0 {
		entry := &entity.ProductPriceHistory{
			ProductName:  expense.Description,
			SupplierID:   expense.SupplierID,
			Price:        expense.UnitPrice,
			PurchaseDate: expense.PurchaseDate,
			RecordedBy:   recordedBy,
		}
		if err := s.priceRepo.Create(ctx, entry); err != nil {
			log.Printf("expense %s: price history write failed: %v", expense.ID, err)
		}
	}

	// Reload with relations so the derived debt carries supplier and
	// category names.
	full, err := s.expenseRepo.GetByID(ctx, expense.ID)
	if err == nil && full != nil {
		expense = full
	}
	if !expense.PaymentStatus.Settled() {
		if _, err := s.debtService.DeriveFromSource(ctx, expense); err != nil {
			log.Printf("expense %s: debt derivation failed: %v", expense.ID, err)
		}
	}

	return expense, nil
}

// GetExpense returns an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// ListExpenses returns a filtered page of expenses
func (s *ExpenseService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	expenses, total, err := s.expenseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(expenses, p), nil
}

// UpdateExpenseInput represents the editable fields of an expense
type UpdateExpenseInput struct {
	CategoryID    *uuid.UUID
	SupplierID    *uuid.UUID
	Description   *string
	Quantity      *int
	UnitPrice     *float64
	TotalAmount   *float64
	PaymentMethod *string
	Notes         *string
}

// UpdateExpense edits an expense's descriptive fields. Paid amounts move
// through debt payments, not here.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		expense.CategoryID = input.CategoryID
	}
	if input.SupplierID != nil {
		expense.SupplierID = input.SupplierID
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Quantity != nil {
		expense.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		expense.UnitPrice = *input.UnitPrice
	}
	if input.TotalAmount != nil {
		if *input.TotalAmount <= 0 {
			return nil, apperror.ErrInvalidAmount
		}
		expense.TotalAmount = *input.TotalAmount
		expense.PaymentStatus = enum.PaymentStatusFor(expense.PaidAmount, expense.TotalAmount)
	}
	if input.PaymentMethod != nil {
		expense.PaymentMethod = *input.PaymentMethod
	}
	if input.Notes != nil {
		expense.Notes = *input.Notes
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}
