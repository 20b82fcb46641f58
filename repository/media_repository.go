package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// MediaRepository, yüklenmiş dosyaların kayıtları için interface.
// Dosyanın kendisi diskte durur; burada sadece metadata tutulur.
type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, id string) (*models.Media, error)
	List(ctx context.Context) ([]*models.Media, error)
	Update(ctx context.Context, media *models.Media) error
	Delete(ctx context.Context, id string) error
}
