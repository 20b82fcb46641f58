package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// ContentRepository, site metin parçaları için interface.
type ContentRepository interface {
	Create(ctx context.Context, content *models.SiteContent) error
	GetByID(ctx context.Context, id string) (*models.SiteContent, error)
	List(ctx context.Context) ([]*models.SiteContent, error)
	ListBySection(ctx context.Context, section string) ([]*models.SiteContent, error)
	Update(ctx context.Context, content *models.SiteContent) error
	Delete(ctx context.Context, id string) error
}
