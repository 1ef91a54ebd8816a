package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	CountByPaid(ctx context.Context) (paid int64, pending int64, err error)
	TotalAmount(ctx context.Context) (float64, error)
	ReplacePhones(ctx context.Context, orderID uuid.UUID, phones []entity.PhoneNumber) error
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	StatusID   *uuid.UUID
	IsPaid     *bool
}

// OrderHistoryRepository defines the interface for the append-only order
// audit log
type OrderHistoryRepository interface {
	Append(ctx context.Context, entry *entity.OrderHistory) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.OrderHistory, error)
}

// StatusRepository defines the interface for order status labels
type StatusRepository interface {
	Create(ctx context.Context, status *entity.Status) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Status, error)
	List(ctx context.Context) ([]entity.Status, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
