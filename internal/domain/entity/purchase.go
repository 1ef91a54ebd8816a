package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Purchase is the legacy single-line purchase record kept for backward
// compatibility with the old purchasing flow. New spending goes through
// Expense; purchases still participate in debt derivation when unpaid.
type Purchase struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SupplierID   *uuid.UUID         `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	ProductID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"product_id"`
	Price        float64            `gorm:"type:decimal(15,2);default:0" json:"price"`
	Quantity     int                `gorm:"default:1" json:"quantity"`
	TotalPrice   float64            `gorm:"type:decimal(15,2);default:0" json:"total_price"`
	PaidAmount   float64            `gorm:"type:decimal(15,2);default:0" json:"paid_amount"`
	PurchaseDate time.Time          `gorm:"type:date;not null" json:"purchase_date"`
	Status       enum.PaymentStatus `gorm:"size:20;default:'unpaid';index" json:"status"`
	Type         string             `gorm:"size:20;default:'fixed'" json:"type"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	DeletedAt    gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Product  *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}
