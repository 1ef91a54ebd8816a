package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is a user-configurable order status label
type Status struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"size:60;not null" json:"name"`
	Color string    `gorm:"size:20;default:'#FFC107'" json:"color"`
}

// BeforeCreate generates a UUID before creating a new status
func (s *Status) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Status model
func (Status) TableName() string {
	return "statuses"
}

// Order represents a customer order with partial payment tracking
type Order struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name                 string         `gorm:"size:100" json:"name"`
	Wilaya               string         `gorm:"size:50" json:"wilaya"`
	Product              string         `gorm:"size:200" json:"product"`
	Paid                 float64        `gorm:"type:decimal(15,2);default:0" json:"paid"`
	Total                float64        `gorm:"type:decimal(15,2);default:0" json:"total"`
	Note                 string         `gorm:"type:text" json:"note"`
	StatusID             *uuid.UUID     `gorm:"type:uuid;index" json:"status_id,omitempty"`
	IsPaid               bool           `gorm:"default:false" json:"is_paid"`
	AssignedWorkerID     *uuid.UUID     `gorm:"type:uuid;index" json:"assigned_worker_id,omitempty"`
	ProductionDetails    string         `gorm:"type:text" json:"production_details"`
	ExpectedDeliveryDate *time.Time     `gorm:"type:date" json:"expected_delivery_date,omitempty"`
	ActualDeliveryDate   *time.Time     `gorm:"type:date" json:"actual_delivery_date,omitempty"`
	IsTravelAssignment   bool           `gorm:"default:false" json:"is_travel_assignment"`
	TravelWorkerID       *uuid.UUID     `gorm:"type:uuid;index" json:"travel_worker_id,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Status         *Status        `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	AssignedWorker *Worker        `gorm:"foreignKey:AssignedWorkerID" json:"assigned_worker,omitempty"`
	TravelWorker   *Worker        `gorm:"foreignKey:TravelWorkerID" json:"travel_worker,omitempty"`
	Phones         []PhoneNumber  `gorm:"foreignKey:OrderID" json:"phones,omitempty"`
	History        []OrderHistory `gorm:"foreignKey:OrderID" json:"history,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// Remaining returns the unpaid part of the order total.
func (o *Order) Remaining() float64 {
	return round2(math.Max(0, o.Total-o.Paid))
}

// PhoneNumber is a contact number attached to an order
type PhoneNumber struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	Number    string    `gorm:"size:40;not null" json:"number"`
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`
}

// BeforeCreate generates a UUID before creating a new phone number
func (p *PhoneNumber) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PhoneNumber model
func (PhoneNumber) TableName() string {
	return "phone_numbers"
}

// OrderHistory is an append-only audit entry for an order, immutable once
// written and ordered by timestamp.
type OrderHistory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ChangeType string    `gorm:"size:120" json:"change_type"`
	Details    string    `gorm:"type:text" json:"details"`
	Timestamp  time.Time `json:"timestamp"`
}

// BeforeCreate generates a UUID before creating a new order history entry
func (h *OrderHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.Timestamp.IsZero() {
		h.Timestamp = time.Now().UTC()
	}
	return nil
}

// TableName returns the table name for the OrderHistory model
func (OrderHistory) TableName() string {
	return "order_history"
}
