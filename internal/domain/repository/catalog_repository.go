package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
)

// ExpenseCategoryRepository defines the interface for expense categories
type ExpenseCategoryRepository interface {
	Create(ctx context.Context, category *entity.ExpenseCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseCategory, error)
	List(ctx context.Context) ([]entity.ExpenseCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, categoryID *uuid.UUID) ([]entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PriceHistoryRepository defines the interface for product price history
type PriceHistoryRepository interface {
	Create(ctx context.Context, entry *entity.ProductPriceHistory) error
	ListByProductName(ctx context.Context, productName string) ([]entity.ProductPriceHistory, error)
}

// TransportCategoryRepository defines the interface for transport
// categories and their sub-types
type TransportCategoryRepository interface {
	Create(ctx context.Context, category *entity.TransportCategory) error
	List(ctx context.Context) ([]entity.TransportCategory, error)
	CreateSubType(ctx context.Context, subType *entity.TransportSubType) error
	ListSubTypes(ctx context.Context, categoryID *uuid.UUID) ([]entity.TransportSubType, error)
}
