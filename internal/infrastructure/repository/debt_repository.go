package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/internal/domain/enum"
	domainRepo "github.com/sofazi/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository
func NewDebtRepository(db *gorm.DB) domainRepo.DebtRepository {
	return &debtRepository{db: db}
}

func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	return r.db.WithContext(ctx).Create(debt).Error
}

func (r *debtRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	var debt entity.Debt
	err := r.db.WithContext(ctx).First(&debt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &debt, err
}

func (r *debtRepository) GetBySource(ctx context.Context, sourceType enum.SourceType, sourceID uuid.UUID) (*entity.Debt, error) {
	var debt entity.Debt
	err := r.db.WithContext(ctx).
		First(&debt, "source_type = ? AND source_id = ?", sourceType, sourceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &debt, err
}

func (r *debtRepository) Update(ctx context.Context, debt *entity.Debt) error {
	return r.db.WithContext(ctx).Save(debt).Error
}

func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Debt{}, "id = ?", id).Error
}

func (r *debtRepository) List(ctx context.Context, params *domainRepo.DebtFilterParams) ([]entity.Debt, int64, error) {
	var debts []entity.Debt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Debt{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.SourceType != nil {
		query = query.Where("source_type = ?", *params.SourceType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("start_date DESC, created_at DESC").
		Find(&debts).Error

	return debts, total, err
}

func (r *debtRepository) CountBySource(ctx context.Context, status enum.DebtStatus) (map[enum.SourceType]int64, error) {
	type row struct {
		SourceType enum.SourceType
		Count      int64
	}
	var rows []row

	err := r.db.WithContext(ctx).Model(&entity.Debt{}).
		Select("source_type, COUNT(*) as count").
		Where("status = ?", status).
		Group("source_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[enum.SourceType]int64, len(rows))
	for _, r := range rows {
		counts[r.SourceType] = r.Count
	}
	return counts, nil
}

func (r *debtRepository) SumAmounts(ctx context.Context) (*domainRepo.DebtTotals, error) {
	var totals domainRepo.DebtTotals

	err := r.db.WithContext(ctx).Model(&entity.Debt{}).
		Select(
			"COALESCE(SUM(debt_amount), 0) as total_amount, " +
				"COALESCE(SUM(paid_amount), 0) as total_paid, " +
				"COALESCE(SUM(CASE WHEN status = 'unpaid' THEN debt_amount - paid_amount ELSE 0 END), 0) as total_owed, " +
				"COALESCE(SUM(CASE WHEN status = 'unpaid' THEN 1 ELSE 0 END), 0) as unpaid_count, " +
				"COALESCE(SUM(CASE WHEN status = 'paid' THEN 1 ELSE 0 END), 0) as paid_count").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	return &totals, nil
}
