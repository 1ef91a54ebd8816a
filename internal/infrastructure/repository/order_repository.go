package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	domainRepo "github.com/sofazi/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Status").
		Preload("AssignedWorker").
		Preload("TravelWorker").
		Preload("Phones").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp DESC")
		}).
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Order{}, "id = ?", id).Error
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR product ILIKE ? OR wilaya ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.StatusID != nil {
		query = query.Where("status_id = ?", *params.StatusID)
	}
	if params.IsPaid != nil {
		query = query.Where("is_paid = ?", *params.IsPaid)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Status").
		Preload("Phones").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) CountByPaid(ctx context.Context) (int64, int64, error) {
	var paid, pending int64

	if err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("is_paid = ?", true).Count(&paid).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("is_paid = ?", false).Count(&pending).Error; err != nil {
		return 0, 0, err
	}

	return paid, pending, nil
}

func (r *orderRepository) TotalAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

func (r *orderRepository) ReplacePhones(ctx context.Context, orderID uuid.UUID, phones []entity.PhoneNumber) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.PhoneNumber{}, "order_id = ?", orderID).Error; err != nil {
			return err
		}
		for i := range phones {
			phones[i].OrderID = orderID
		}
		if len(phones) == 0 {
			return nil
		}
		return tx.Create(&phones).Error
	})
}

type orderHistoryRepository struct {
	db *gorm.DB
}

// NewOrderHistoryRepository creates a new order history repository
func NewOrderHistoryRepository(db *gorm.DB) domainRepo.OrderHistoryRepository {
	return &orderHistoryRepository{db: db}
}

func (r *orderHistoryRepository) Append(ctx context.Context, entry *entity.OrderHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *orderHistoryRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.OrderHistory, error) {
	var entries []entity.OrderHistory
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

type statusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates a new status repository
func NewStatusRepository(db *gorm.DB) domainRepo.StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) Create(ctx context.Context, status *entity.Status) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *statusRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Status, error) {
	var status entity.Status
	err := r.db.WithContext(ctx).First(&status, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &status, err
}

func (r *statusRepository) List(ctx context.Context) ([]entity.Status, error) {
	var statuses []entity.Status
	err := r.db.WithContext(ctx).Order("name ASC").Find(&statuses).Error
	return statuses, err
}

func (r *statusRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Status{}, "id = ?", id).Error
}
