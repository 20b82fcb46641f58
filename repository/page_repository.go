package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// PageRepository, serbest sayfalar için interface.
type PageRepository interface {
	Create(ctx context.Context, page *models.Page) error
	GetByID(ctx context.Context, id string) (*models.Page, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Page, error)
	List(ctx context.Context) ([]*models.Page, error)
	ListPublished(ctx context.Context) ([]*models.Page, error)
	Update(ctx context.Context, page *models.Page) error
	Delete(ctx context.Context, id string) error
}
