package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransportCategory groups transport records
type TransportCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Color     string    `gorm:"size:7;default:'#3B82F6'" json:"color"`
	Icon      string    `gorm:"size:50" json:"icon"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	SubTypes []TransportSubType `gorm:"foreignKey:CategoryID" json:"sub_types,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transport category
func (c *TransportCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransportCategory model
func (TransportCategory) TableName() string {
	return "transport_categories"
}

// TransportSubType is a finer classification under a transport category
type TransportSubType struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new transport sub-type
func (t *TransportSubType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransportSubType model
func (TransportSubType) TableName() string {
	return "transport_sub_types"
}

// Transport represents a transport/delivery cost owed to a carrier. A
// transport left with paid < total gets a debt derived for it.
type Transport struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name            string         `gorm:"size:100;not null" json:"name"`
	Phone           string         `gorm:"size:40" json:"phone"`
	Address         string         `gorm:"size:200" json:"address"`
	TransportAmount float64        `gorm:"type:decimal(15,2);default:0" json:"transport_amount"`
	PaidAmount      float64        `gorm:"type:decimal(15,2);default:0" json:"paid_amount"`
	Destination     string         `gorm:"size:200" json:"destination"`
	Type            string         `gorm:"size:20;default:'inside'" json:"type"`
	CategoryID      *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	SubTypeID       *uuid.UUID     `gorm:"type:uuid;index" json:"sub_type_id,omitempty"`
	TransportMethod string         `gorm:"size:50;default:'car'" json:"transport_method"`
	Purpose         string         `gorm:"size:200" json:"purpose"`
	Distance        float64        `gorm:"type:decimal(10,2);default:0" json:"distance"`
	Notes           string         `gorm:"type:text" json:"notes"`
	IsQuick         bool           `gorm:"default:false" json:"is_quick"`
	RecordedBy      string         `gorm:"size:50;not null" json:"recorded_by"`
	TransportDate   time.Time      `gorm:"type:date;not null" json:"transport_date"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *TransportCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubType  *TransportSubType  `gorm:"foreignKey:SubTypeID" json:"sub_type,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transport
func (t *Transport) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transport model
func (Transport) TableName() string {
	return "transports"
}

// RemainingAmount returns the unpaid part of the transport cost.
func (t *Transport) RemainingAmount() float64 {
	return round2(math.Max(0, t.TransportAmount-t.PaidAmount))
}
