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

// PurchaseService handles the legacy purchase flow. Unpaid purchases still
// feed the debt ledger; new spending should go through expenses.
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	debtService  *DebtService
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	debtService *DebtService,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		debtService:  debtService,
	}
}

// CreatePurchaseInput represents the input for creating a purchase
type CreatePurchaseInput struct {
	SupplierID   *uuid.UUID
	ProductID    uuid.UUID
	Price        float64
	Quantity     int
	PaidAmount   float64
	PurchaseDate time.Time
	Type         string
}

// CreatePurchase records a legacy purchase. An unpaid purchase with a
// supplier gets a debt derived for it.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*entity.Purchase, error) {
	if input.Price <= 0 {
		return nil, apperror.ErrInvalidAmount
	}
	if input.Quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least one")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
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

	totalPrice := input.Price * float64(input.Quantity)
	if input.PaidAmount < 0 || input.PaidAmount > totalPrice {
		return nil, apperror.NewBadRequestError("Paid amount must be between zero and the total")
	}

	purchaseDate := input.PurchaseDate
	if purchaseDate.IsZero() {
		purchaseDate = time.Now().UTC()
	}
	purchaseType := input.Type
	if purchaseType == "" {
		purchaseType = "fixed"
	}

	purchase := &entity.Purchase{
		SupplierID:   input.SupplierID,
		ProductID:    input.ProductID,
		Price:        input.Price,
		Quantity:     input.Quantity,
		TotalPrice:   totalPrice,
		PaidAmount:   input.PaidAmount,
		PurchaseDate: purchaseDate,
		Status:       enum.PaymentStatusFor(input.PaidAmount, totalPrice),
		Type:         purchaseType,
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	full, err := s.purchaseRepo.GetByID(ctx, purchase.ID)
	if err == nil && full != nil {
		purchase = full
	}
	if !purchase.Status.Settled() {
		if _, err := s.debtService.DeriveFromSource(ctx, purchase); err != nil {
			log.Printf("purchase %s: debt derivation failed: %v", purchase.ID, err)
		}
	}

	return purchase, nil
}

// GetPurchase returns a purchase by ID
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// ListPurchases returns a filtered page of purchases
func (s *PurchaseService) ListPurchases(ctx context.Context, params *repository.PurchaseFilterParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	purchases, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(purchases, p), nil
}

// DeletePurchase removes a purchase
func (s *PurchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return apperror.NewNotFoundError("Purchase")
	}
	return s.purchaseRepo.Delete(ctx, id)
}
