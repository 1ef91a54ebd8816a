package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ExpenseCategory groups expenses for reporting and debt descriptions
type ExpenseCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Color     string    `gorm:"size:7;default:'#3B82F6'" json:"color"`
	Icon      string    `gorm:"size:50" json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new expense category
func (c *ExpenseCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ExpenseCategory model
func (ExpenseCategory) TableName() string {
	return "expense_categories"
}

// Expense represents money spent on goods or services. An expense created
// unpaid or partially paid gets a debt derived for it.
type Expense struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID    *uuid.UUID         `gorm:"type:uuid;index" json:"category_id,omitempty"`
	SupplierID    *uuid.UUID         `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Description   string             `gorm:"size:200;not null" json:"description"`
	Quantity      int                `gorm:"default:1" json:"quantity"`
	UnitPrice     float64            `gorm:"type:decimal(15,2);default:0" json:"unit_price"`
	TotalAmount   float64            `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	PaidAmount    float64            `gorm:"type:decimal(15,2);default:0" json:"paid_amount"`
	PurchasedBy   string             `gorm:"size:50;default:'owner'" json:"purchased_by"`
	RecordedBy    string             `gorm:"size:50;not null" json:"recorded_by"`
	PurchaseDate  time.Time          `gorm:"type:date;not null" json:"purchase_date"`
	PaymentStatus enum.PaymentStatus `gorm:"size:20;default:'paid';index" json:"payment_status"`
	PaymentMethod string             `gorm:"size:20;default:'cash'" json:"payment_method"`
	Notes         string             `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Category *ExpenseCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Supplier *Supplier        `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}

// CalculatedTotal returns quantity times unit price.
func (e *Expense) CalculatedTotal() float64 {
	return round2(float64(e.Quantity) * e.UnitPrice)
}
