package request

// UpdateSettingsRequest represents a settings update request
type UpdateSettingsRequest struct {
	CompanyName            *string `json:"company_name" binding:"omitempty,max=100"`
	Logo                   *string `json:"logo" binding:"omitempty,max=200"`
	Currency               *string `json:"currency" binding:"omitempty,max=10"`
	Language               *string `json:"language" binding:"omitempty,max=10"`
	Theme                  *string `json:"theme" binding:"omitempty,oneof=light dark"`
	PrimaryColor           *string `json:"primary_color" binding:"omitempty,max=7"`
	RowsPerPage            *int    `json:"rows_per_page" binding:"omitempty,min=1,max=100"`
	CompactMode            *bool   `json:"compact_mode"`
	ActivityLogging        *bool   `json:"activity_logging"`
	SessionTimeout         *int    `json:"session_timeout" binding:"omitempty,min=1"`
	EmailNotifications     *bool   `json:"email_notifications"`
	PaymentNotifications   *bool   `json:"payment_notifications"`
	InventoryNotifications *bool   `json:"inventory_notifications"`
	NotificationTime       *string `json:"notification_time" binding:"omitempty,max=20"`
}
