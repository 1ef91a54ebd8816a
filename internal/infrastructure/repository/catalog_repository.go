package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	domainRepo "github.com/sofazi/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type expenseCategoryRepository struct {
	db *gorm.DB
}

// NewExpenseCategoryRepository creates a new expense category repository
func NewExpenseCategoryRepository(db *gorm.DB) domainRepo.ExpenseCategoryRepository {
	return &expenseCategoryRepository{db: db}
}

func (r *expenseCategoryRepository) Create(ctx context.Context, category *entity.ExpenseCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *expenseCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseCategory, error) {
	var category entity.ExpenseCategory
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *expenseCategoryRepository) List(ctx context.Context) ([]entity.ExpenseCategory, error) {
	var categories []entity.ExpenseCategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *expenseCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ExpenseCategory{}, "id = ?", id).Error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) List(ctx context.Context, categoryID *uuid.UUID) ([]entity.Product, error) {
	var products []entity.Product

	query := r.db.WithContext(ctx).Model(&entity.Product{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	err := query.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}

type priceHistoryRepository struct {
	db *gorm.DB
}

// NewPriceHistoryRepository creates a new product price history repository
func NewPriceHistoryRepository(db *gorm.DB) domainRepo.PriceHistoryRepository {
	return &priceHistoryRepository{db: db}
}

func (r *priceHistoryRepository) Create(ctx context.Context, entry *entity.ProductPriceHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *priceHistoryRepository) ListByProductName(ctx context.Context, productName string) ([]entity.ProductPriceHistory, error) {
	var entries []entity.ProductPriceHistory
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Where("product_name ILIKE ?", productName).
		Order("purchase_date DESC").
		Find(&entries).Error
	return entries, err
}

type transportCategoryRepository struct {
	db *gorm.DB
}

// NewTransportCategoryRepository creates a new transport category repository
func NewTransportCategoryRepository(db *gorm.DB) domainRepo.TransportCategoryRepository {
	return &transportCategoryRepository{db: db}
}

func (r *transportCategoryRepository) Create(ctx context.Context, category *entity.TransportCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *transportCategoryRepository) List(ctx context.Context) ([]entity.TransportCategory, error) {
	var categories []entity.TransportCategory
	err := r.db.WithContext(ctx).
		Preload("SubTypes").
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *transportCategoryRepository) CreateSubType(ctx context.Context, subType *entity.TransportSubType) error {
	return r.db.WithContext(ctx).Create(subType).Error
}

func (r *transportCategoryRepository) ListSubTypes(ctx context.Context, categoryID *uuid.UUID) ([]entity.TransportSubType, error) {
	var subTypes []entity.TransportSubType

	query := r.db.WithContext(ctx).Model(&entity.TransportSubType{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	err := query.Order("name ASC").Find(&subTypes).Error
	return subTypes, err
}
