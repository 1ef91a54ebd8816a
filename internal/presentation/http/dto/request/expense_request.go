package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateExpenseRequest represents an expense creation request
type CreateExpenseRequest struct {
	CategoryID    *uuid.UUID `json:"category_id"`
	SupplierID    *uuid.UUID `json:"supplier_id"`
	Description   string     `json:"description" binding:"required,max=200"`
	Quantity      int        `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice     float64    `json:"unit_price" binding:"omitempty,min=0"`
	TotalAmount   float64    `json:"total_amount" binding:"required,gt=0"`
	PaidAmount    float64    `json:"paid_amount" binding:"omitempty,min=0"`
	PurchasedBy   string     `json:"purchased_by" binding:"omitempty,max=50"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	PaymentStatus string     `json:"payment_status" binding:"omitempty,oneof=paid partial unpaid"`
	PaymentMethod string     `json:"payment_method" binding:"omitempty,max=20"`
	Notes         string     `json:"notes"`
	TrackPrice    bool       `json:"track_price"`
}

// UpdateExpenseRequest represents an expense update request
type UpdateExpenseRequest struct {
	CategoryID    *uuid.UUID `json:"category_id"`
	SupplierID    *uuid.UUID `json:"supplier_id"`
	Description   *string    `json:"description" binding:"omitempty,max=200"`
	Quantity      *int       `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice     *float64   `json:"unit_price" binding:"omitempty,min=0"`
	TotalAmount   *float64   `json:"total_amount" binding:"omitempty,gt=0"`
	PaymentMethod *string    `json:"payment_method" binding:"omitempty,max=20"`
	Notes         *string    `json:"notes"`
}

// ExpenseFilterRequest represents expense filter parameters
type ExpenseFilterRequest struct {
	Search        string `form:"search"`
	CategoryID    string `form:"category_id"`
	SupplierID    string `form:"supplier_id"`
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=paid partial unpaid"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}
