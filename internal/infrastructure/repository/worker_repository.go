package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	domainRepo "github.com/sofazi/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type workerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *gorm.DB) domainRepo.WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, worker *entity.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

func (r *workerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	var worker entity.Worker
	err := r.db.WithContext(ctx).First(&worker, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &worker, err
}

func (r *workerRepository) Update(ctx context.Context, worker *entity.Worker) error {
	return r.db.WithContext(ctx).Save(worker).Error
}

func (r *workerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Worker{}, "id = ?", id).Error
}

func (r *workerRepository) List(ctx context.Context, activeOnly bool) ([]entity.Worker, error) {
	var workers []entity.Worker

	query := r.db.WithContext(ctx).Model(&entity.Worker{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	err := query.Order("name ASC").Find(&workers).Error
	return workers, err
}

type workerHistoryRepository struct {
	db *gorm.DB
}

// NewWorkerHistoryRepository creates a new worker history repository
func NewWorkerHistoryRepository(db *gorm.DB) domainRepo.WorkerHistoryRepository {
	return &workerHistoryRepository{db: db}
}

func (r *workerHistoryRepository) Append(ctx context.Context, entry *entity.WorkerHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *workerHistoryRepository) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]entity.WorkerHistory, error) {
	var entries []entity.WorkerHistory
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}
