package repository

import (
	"context"
	"errors"

	"github.com/sofazi/backoffice-api/internal/domain/entity"
	domainRepo "github.com/sofazi/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the singleton settings row, creating it with defaults when
// it does not exist yet.
func (r *settingsRepository) Get(ctx context.Context) (*entity.SystemSettings, error) {
	var settings entity.SystemSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = entity.SystemSettings{}
		if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	return &settings, err
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.SystemSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
