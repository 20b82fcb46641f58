package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// PortfolioRepository, galeri görselleri için interface.
type PortfolioRepository interface {
	Create(ctx context.Context, item *models.PortfolioItem) error
	GetByID(ctx context.Context, id string) (*models.PortfolioItem, error)
	List(ctx context.Context) ([]*models.PortfolioItem, error)
	ListActive(ctx context.Context) ([]*models.PortfolioItem, error)
	ListActiveByCategory(ctx context.Context, category string) ([]*models.PortfolioItem, error)
	Update(ctx context.Context, item *models.PortfolioItem) error
	Deactivate(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int, error)
}
