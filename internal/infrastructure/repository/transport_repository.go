package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	domainRepo "github.com/sofazi/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type transportRepository struct {
	db *gorm.DB
}

// NewTransportRepository creates a new transport repository
func NewTransportRepository(db *gorm.DB) domainRepo.TransportRepository {
	return &transportRepository{db: db}
}

func (r *transportRepository) Create(ctx context.Context, transport *entity.Transport) error {
	return r.db.WithContext(ctx).Create(transport).Error
}

func (r *transportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transport, error) {
	var transport entity.Transport
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("SubType").
		First(&transport, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transport, err
}

func (r *transportRepository) Update(ctx context.Context, transport *entity.Transport) error {
	return r.db.WithContext(ctx).Save(transport).Error
}

func (r *transportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Transport{}, "id = ?", id).Error
}

func (r *transportRepository) List(ctx context.Context, params *domainRepo.TransportFilterParams) ([]entity.Transport, int64, error) {
	var transports []entity.Transport
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Transport{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR destination ILIKE ? OR purpose ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}
	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Category").
		Preload("SubType").
		Order("transport_date DESC, created_at DESC").
		Find(&transports).Error

	return transports, total, err
}

func (r *transportRepository) ListUnsettled(ctx context.Context) ([]entity.Transport, error) {
	var transports []entity.Transport
	err := r.db.WithContext(ctx).
		Where("paid_amount < transport_amount").
		Find(&transports).Error
	return transports, err
}
