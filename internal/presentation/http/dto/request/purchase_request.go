package request

import (
	"time"

	"github.com/google/uuid"
)

// CreatePurchaseRequest represents a legacy purchase creation request
type CreatePurchaseRequest struct {
	SupplierID   *uuid.UUID `json:"supplier_id"`
	ProductID    uuid.UUID  `json:"product_id" binding:"required"`
	Price        float64    `json:"price" binding:"required,gt=0"`
	Quantity     int        `json:"quantity" binding:"required,min=1"`
	PaidAmount   float64    `json:"paid_amount" binding:"omitempty,min=0"`
	PurchaseDate *time.Time `json:"purchase_date"`
	Type         string     `json:"type" binding:"omitempty,oneof=fixed variable"`
}

// PurchaseFilterRequest represents purchase filter parameters
type PurchaseFilterRequest struct {
	Status     string `form:"status" binding:"omitempty,oneof=paid partial unpaid"`
	SupplierID string `form:"supplier_id"`
	Type       string `form:"type" binding:"omitempty,oneof=fixed variable"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
