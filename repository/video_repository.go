package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// VideoRepository, video galerisi için interface.
type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, id string) (*models.Video, error)
	List(ctx context.Context) ([]*models.Video, error)
	ListActive(ctx context.Context) ([]*models.Video, error)
	Update(ctx context.Context, video *models.Video) error
	Deactivate(ctx context.Context, id string) error
}
