package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// SettingsRepository, tek satırlık sistem ayarları için interface.
// Get her zaman bir kayıt döner (seed migration'ı satırı garanti eder).
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) error
}
