package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/internal/domain/enum"
	"github.com/sofazi/backoffice-api/pkg/pagination"
)

// DebtRepository defines the interface for debt data operations
type DebtRepository interface {
	Create(ctx context.Context, debt *entity.Debt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)
	// GetBySource looks up the single debt derived from a source
	// transaction, nil when none exists.
	GetBySource(ctx context.Context, sourceType enum.SourceType, sourceID uuid.UUID) (*entity.Debt, error)
	Update(ctx context.Context, debt *entity.Debt) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *DebtFilterParams) ([]entity.Debt, int64, error)
	CountBySource(ctx context.Context, status enum.DebtStatus) (map[enum.SourceType]int64, error)
	SumAmounts(ctx context.Context) (*DebtTotals, error)
}

// DebtFilterParams contains filtering parameters for debt queries
type DebtFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.DebtStatus
	SourceType *enum.SourceType
}

// DebtTotals aggregates debt amounts for the dashboard
type DebtTotals struct {
	TotalOwed   float64 // remaining on unpaid debts
	TotalAmount float64 // face value of all debts
	TotalPaid   float64 // cumulative payments
	UnpaidCount int64
	PaidCount   int64
}
