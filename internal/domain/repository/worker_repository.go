package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
)

// WorkerRepository defines the interface for worker data operations
type WorkerRepository interface {
	Create(ctx context.Context, worker *entity.Worker) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error)
	Update(ctx context.Context, worker *entity.Worker) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]entity.Worker, error)
}

// WorkerHistoryRepository defines the interface for the append-only worker
// audit log. Entries are never updated or deleted.
type WorkerHistoryRepository interface {
	Append(ctx context.Context, entry *entity.WorkerHistory) error
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]entity.WorkerHistory, error)
}
