package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/pkg/pagination"
)

// TransportRepository defines the interface for transport data operations
type TransportRepository interface {
	Create(ctx context.Context, transport *entity.Transport) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transport, error)
	Update(ctx context.Context, transport *entity.Transport) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *TransportFilterParams) ([]entity.Transport, int64, error)
	// ListUnsettled returns transports with paid_amount < transport_amount.
	ListUnsettled(ctx context.Context) ([]entity.Transport, error)
}

// TransportFilterParams contains filtering parameters for transport queries
type TransportFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Type       string
	CategoryID *uuid.UUID
}
