package repository

import (
	"context"

	"github.com/sofazi/backoffice-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the singleton system
// settings row
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.SystemSettings, error)
	Update(ctx context.Context, settings *entity.SystemSettings) error
}
