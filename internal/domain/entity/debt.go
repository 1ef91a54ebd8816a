package entity

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Debt is the unified owed-money record. It is either entered manually or
// derived from an unpaid/partially paid source transaction (expense,
// purchase or transport). At most one debt exists per (source_type,
// source_id) pair.
type Debt struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name       string          `gorm:"size:100;not null" json:"name"`
	Phone      string          `gorm:"size:40" json:"phone"`
	Address    string          `gorm:"size:200" json:"address"`
	DebtAmount float64         `gorm:"type:decimal(15,2);default:0" json:"debt_amount"`
	PaidAmount float64         `gorm:"type:decimal(15,2);default:0" json:"paid_amount"`
	StartDate  time.Time       `gorm:"type:date;not null" json:"start_date"`
	// PaymentDate is set only when the debt is fully settled
	PaymentDate *time.Time      `gorm:"type:date" json:"payment_date,omitempty"`
	Status      enum.DebtStatus `gorm:"size:20;default:'unpaid';index" json:"status"`
	SourceType  enum.SourceType `gorm:"size:50;index:idx_debts_source" json:"source_type"`
	// SourceID is nil iff SourceType is manual
	SourceID    *uuid.UUID     `gorm:"type:uuid;index:idx_debts_source" json:"source_id,omitempty"`
	Description string         `gorm:"type:text" json:"description"`
	RecordedBy  string         `gorm:"size:50" json:"recorded_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new debt
func (d *Debt) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Debt model
func (Debt) TableName() string {
	return "debts"
}

// RemainingAmount returns the outstanding balance, never negative.
func (d *Debt) RemainingAmount() float64 {
	return round2(math.Max(0, d.DebtAmount-d.PaidAmount))
}

// Settled reports whether the cumulative payments cover the full amount.
func (d *Debt) Settled() bool {
	return d.PaidAmount >= d.DebtAmount
}

// SourceInfo renders a short label of where the debt came from.
func (d *Debt) SourceInfo() string {
	switch d.SourceType {
	case enum.SourceTypeExpense:
		return fmt.Sprintf("Expense - %s", d.Description)
	case enum.SourceTypePurchase:
		return fmt.Sprintf("Purchase - %s", d.Description)
	case enum.SourceTypeTransport:
		return fmt.Sprintf("Transport - %s", d.Description)
	default:
		return fmt.Sprintf("Manual debt - %s", d.Description)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
