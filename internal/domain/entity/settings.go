package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemSettings is the singleton configuration row for the company
type SystemSettings struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CompanyName            string    `gorm:"size:100;default:'SOFAZI'" json:"company_name"`
	Logo                   string    `gorm:"size:200" json:"logo"`
	Currency               string    `gorm:"size:10;default:'DZD'" json:"currency"`
	Language               string    `gorm:"size:10;default:'ar'" json:"language"`
	Theme                  string    `gorm:"size:20;default:'light'" json:"theme"`
	PrimaryColor           string    `gorm:"size:7;default:'#3B82F6'" json:"primary_color"`
	RowsPerPage            int       `gorm:"default:25" json:"rows_per_page"`
	CompactMode            bool      `gorm:"default:false" json:"compact_mode"`
	ActivityLogging        bool      `gorm:"default:true" json:"activity_logging"`
	SessionTimeout         int       `gorm:"default:30" json:"session_timeout"`
	EmailNotifications     bool      `gorm:"default:true" json:"email_notifications"`
	PaymentNotifications   bool      `gorm:"default:true" json:"payment_notifications"`
	InventoryNotifications bool      `gorm:"default:true" json:"inventory_notifications"`
	NotificationTime       string    `gorm:"size:20;default:'instant'" json:"notification_time"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the settings row
func (s *SystemSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SystemSettings model
func (SystemSettings) TableName() string {
	return "system_settings"
}
