package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	Name                 string     `json:"name" binding:"required,max=100"`
	Wilaya               string     `json:"wilaya" binding:"omitempty,max=50"`
	Product              string     `json:"product" binding:"omitempty,max=200"`
	Paid                 float64    `json:"paid" binding:"omitempty,min=0"`
	Total                float64    `json:"total" binding:"omitempty,min=0"`
	Note                 string     `json:"note"`
	StatusID             *uuid.UUID `json:"status_id"`
	Phones               []string   `json:"phones"`
	AssignedWorkerID     *uuid.UUID `json:"assigned_worker_id"`
	ProductionDetails    string     `json:"production_details"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date"`
	IsTravelAssignment   bool       `json:"is_travel_assignment"`
	TravelWorkerID       *uuid.UUID `json:"travel_worker_id"`
}

// UpdateOrderRequest represents an order update request
type UpdateOrderRequest struct {
	Name                 *string    `json:"name" binding:"omitempty,max=100"`
	Wilaya               *string    `json:"wilaya" binding:"omitempty,max=50"`
	Product              *string    `json:"product" binding:"omitempty,max=200"`
	Total                *float64   `json:"total" binding:"omitempty,min=0"`
	Note                 *string    `json:"note"`
	StatusID             *uuid.UUID `json:"status_id"`
	Phones               []string   `json:"phones"`
	AssignedWorkerID     *uuid.UUID `json:"assigned_worker_id"`
	ProductionDetails    *string    `json:"production_details"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date"`
	ActualDeliveryDate   *time.Time `json:"actual_delivery_date"`
	IsTravelAssignment   *bool      `json:"is_travel_assignment"`
	TravelWorkerID       *uuid.UUID `json:"travel_worker_id"`
}

// OrderPaymentRequest represents a payment on an order
type OrderPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search   string `form:"search"`
	StatusID string `form:"status_id"`
	IsPaid   *bool  `form:"is_paid"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}

// CreateStatusRequest represents an order status label creation
type CreateStatusRequest struct {
	Name  string `json:"name" binding:"required,max=60"`
	Color string `json:"color" binding:"omitempty,max=20"`
}
