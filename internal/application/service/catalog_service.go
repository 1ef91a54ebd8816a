package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/internal/domain/repository"
	"github.com/sofazi/backoffice-api/pkg/apperror"
)

// CatalogService handles expense categories, products and the price
// history used for purchase price suggestions.
type CatalogService struct {
	categoryRepo repository.ExpenseCategoryRepository
	productRepo  repository.ProductRepository
	priceRepo    repository.PriceHistoryRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	categoryRepo repository.ExpenseCategoryRepository,
	productRepo repository.ProductRepository,
	priceRepo repository.PriceHistoryRepository,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		priceRepo:    priceRepo,
	}
}

// CreateCategory adds an expense category
func (s *CatalogService) CreateCategory(ctx context.Context, name, color, icon string) (*entity.ExpenseCategory, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}

	category := &entity.ExpenseCategory{Name: name, Icon: icon}
	if color != "" {
		category.Color = color
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns all expense categories
func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.ExpenseCategory, error) {
	return s.categoryRepo.List(ctx)
}

// DeleteCategory removes an expense category
func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// CreateProduct adds a catalog product
func (s *CatalogService) CreateProduct(ctx context.Context, name string, categoryID *uuid.UUID) (*entity.Product, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}

	product := &entity.Product{Name: name, CategoryID: categoryID}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts returns catalog products, optionally filtered by category
func (s *CatalogService) ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]entity.Product, error) {
	return s.productRepo.List(ctx, categoryID)
}

// DeleteProduct removes a catalog product
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// PriceHistory returns what a product has cost over time, newest first.
func (s *CatalogService) PriceHistory(ctx context.Context, productName string) ([]entity.ProductPriceHistory, error) {
	if productName == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	return s.priceRepo.ListByProductName(ctx, productName)
}
