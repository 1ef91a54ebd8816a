package service

import (
	"context"

	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/internal/domain/repository"
	"github.com/sofazi/backoffice-api/pkg/apperror"
)

// SettingsService handles the singleton system settings row
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the settings row, creating defaults when missing
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.SystemSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettingsInput represents the editable settings fields
type UpdateSettingsInput struct {
	CompanyName            *string
	Logo                   *string
	Currency               *string
	Language               *string
	Theme                  *string
	PrimaryColor           *string
	RowsPerPage            *int
	CompactMode            *bool
	ActivityLogging        *bool
	SessionTimeout         *int
	EmailNotifications     *bool
	PaymentNotifications   *bool
	InventoryNotifications *bool
	NotificationTime       *string
}

// UpdateSettings applies partial updates to the settings row
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.SystemSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != nil {
		settings.CompanyName = *input.CompanyName
	}
	if input.Logo != nil {
		settings.Logo = *input.Logo
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.Language != nil {
		settings.Language = *input.Language
	}
	if input.Theme != nil {
		settings.Theme = *input.Theme
	}
	if input.PrimaryColor != nil {
		settings.PrimaryColor = *input.PrimaryColor
	}
	if input.RowsPerPage != nil {
		if *input.RowsPerPage < 1 || *input.RowsPerPage > 100 {
			return nil, apperror.NewBadRequestError("Rows per page must be between 1 and 100")
		}
		settings.RowsPerPage = *input.RowsPerPage
	}
	if input.CompactMode != nil {
		settings.CompactMode = *input.CompactMode
	}
	if input.ActivityLogging != nil {
		settings.ActivityLogging = *input.ActivityLogging
	}
	if input.SessionTimeout != nil {
		settings.SessionTimeout = *input.SessionTimeout
	}
	if input.EmailNotifications != nil {
		settings.EmailNotifications = *input.EmailNotifications
	}
	if input.PaymentNotifications != nil {
		settings.PaymentNotifications = *input.PaymentNotifications
	}
	if input.InventoryNotifications != nil {
		settings.InventoryNotifications = *input.InventoryNotifications
	}
	if input.NotificationTime != nil {
		settings.NotificationTime = *input.NotificationTime
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
