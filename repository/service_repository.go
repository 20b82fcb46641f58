package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// ServiceRepository, hizmet kartları için interface.
// ListActive public site içindir; List admin panelde pasifleri de gösterir.
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	List(ctx context.Context) ([]*models.Service, error)
	ListActive(ctx context.Context) ([]*models.Service, error)
	Update(ctx context.Context, svc *models.Service) error
	Deactivate(ctx context.Context, id string) error
}
