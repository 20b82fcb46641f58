package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// PackageRepository, fiyat paketleri için interface.
type PackageRepository interface {
	Create(ctx context.Context, pkg *models.Package) error
	GetByID(ctx context.Context, id string) (*models.Package, error)
	List(ctx context.Context) ([]*models.Package, error)
	ListActive(ctx context.Context) ([]*models.Package, error)
	Update(ctx context.Context, pkg *models.Package) error
	Deactivate(ctx context.Context, id string) error
}
