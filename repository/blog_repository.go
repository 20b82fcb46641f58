package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// BlogRepository, blog yazıları için interface.
// Public taraf sadece yayınlanmış yazıları görür (ListPublished,
// GetPublishedBySlug); admin taraf tamamını.
type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	List(ctx context.Context) ([]*models.BlogPost, error)
	ListPublished(ctx context.Context) ([]*models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
