package request

import "time"

// CreateDebtRequest represents a manual debt creation request
type CreateDebtRequest struct {
	Name        string     `json:"name" binding:"required,max=100"`
	Phone       string     `json:"phone" binding:"omitempty,max=40"`
	Address     string     `json:"address" binding:"omitempty,max=200"`
	DebtAmount  float64    `json:"debt_amount" binding:"required,gt=0"`
	PaidAmount  float64    `json:"paid_amount" binding:"omitempty,min=0"`
	StartDate   *time.Time `json:"start_date"`
	Description string     `json:"description"`
}

// UpdateDebtRequest represents a debt update request
type UpdateDebtRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,max=40"`
	Address     *string `json:"address" binding:"omitempty,max=200"`
	Description *string `json:"description"`
}

// PayDebtRequest represents a payment against a debt
type PayDebtRequest struct {
	Amount float64    `json:"amount" binding:"required,gt=0"`
	Date   *time.Time `json:"date"`
}

// DebtFilterRequest represents debt filter parameters
type DebtFilterRequest struct {
	Status     string `form:"status" binding:"omitempty,oneof=paid unpaid"`
	SourceType string `form:"source_type" binding:"omitempty,oneof=expense purchase transport manual"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
