package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateTransportRequest represents a transport creation request
type CreateTransportRequest struct {
	Name            string     `json:"name" binding:"required,max=100"`
	Phone           string     `json:"phone" binding:"omitempty,max=40"`
	Address         string     `json:"address" binding:"omitempty,max=200"`
	TransportAmount float64    `json:"transport_amount" binding:"required,gt=0"`
	PaidAmount      float64    `json:"paid_amount" binding:"omitempty,min=0"`
	Destination     string     `json:"destination" binding:"omitempty,max=200"`
	Type            string     `json:"type" binding:"omitempty,oneof=inside outside"`
	CategoryID      *uuid.UUID `json:"category_id"`
	SubTypeID       *uuid.UUID `json:"sub_type_id"`
	TransportMethod string     `json:"transport_method" binding:"omitempty,max=50"`
	Purpose         string     `json:"purpose" binding:"omitempty,max=200"`
	Distance        float64    `json:"distance" binding:"omitempty,min=0"`
	Notes           string     `json:"notes"`
	IsQuick         bool       `json:"is_quick"`
	TransportDate   *time.Time `json:"transport_date"`
}

// UpdateTransportRequest represents a transport update request
type UpdateTransportRequest struct {
	Name            *string  `json:"name" binding:"omitempty,max=100"`
	Phone           *string  `json:"phone" binding:"omitempty,max=40"`
	Address         *string  `json:"address" binding:"omitempty,max=200"`
	Destination     *string  `json:"destination" binding:"omitempty,max=200"`
	TransportMethod *string  `json:"transport_method" binding:"omitempty,max=50"`
	Purpose         *string  `json:"purpose" binding:"omitempty,max=200"`
	Distance        *float64 `json:"distance" binding:"omitempty,min=0"`
	Notes           *string  `json:"notes"`
}

// TransportFilterRequest represents transport filter parameters
type TransportFilterRequest struct {
	Search     string `form:"search"`
	Type       string `form:"type" binding:"omitempty,oneof=inside outside"`
	CategoryID string `form:"category_id"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CreateTransportCategoryRequest represents a transport category creation
type CreateTransportCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"omitempty,max=7"`
	Icon  string `json:"icon" binding:"omitempty,max=50"`
}

// CreateTransportSubTypeRequest represents a transport sub-type creation
type CreateTransportSubTypeRequest struct {
	Name       string    `json:"name" binding:"required,max=100"`
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
}
