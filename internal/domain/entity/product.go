package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog item referenced by legacy purchases
type Product struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name       string         `gorm:"size:200;not null" json:"name"`
	CategoryID *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *ExpenseCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// ProductPriceHistory records what a product cost from a supplier on a
// given date, used for purchase price suggestions.
type ProductPriceHistory struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ProductName  string     `gorm:"size:200;not null" json:"product_name"`
	SupplierID   *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Price        float64    `gorm:"type:decimal(15,2);default:0" json:"price"`
	PurchaseDate time.Time  `gorm:"type:date" json:"purchase_date"`
	RecordedBy   string     `gorm:"size:50;not null" json:"recorded_by"`
	CreatedAt    time.Time  `json:"created_at"`

	// Relationships
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// BeforeCreate generates a UUID before creating a new price history entry
func (p *ProductPriceHistory) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProductPriceHistory model
func (ProductPriceHistory) TableName() string {
	return "product_price_history"
}
