package request

import "github.com/google/uuid"

// CreateSupplierRequest represents a supplier creation request
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Phone   string `json:"phone" binding:"omitempty,max=40"`
	Address string `json:"address" binding:"omitempty,max=200"`
}

// UpdateSupplierRequest represents a supplier update request
type UpdateSupplierRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=100"`
	Phone   *string `json:"phone" binding:"omitempty,max=40"`
	Address *string `json:"address" binding:"omitempty,max=200"`
}

// CreateCategoryRequest represents an expense category creation request
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"omitempty,max=7"`
	Icon  string `json:"icon" binding:"omitempty,max=50"`
}

// CreateProductRequest represents a catalog product creation request
type CreateProductRequest struct {
	Name       string     `json:"name" binding:"required,max=200"`
	CategoryID *uuid.UUID `json:"category_id"`
}
