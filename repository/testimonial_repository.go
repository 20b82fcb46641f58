package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// TestimonialRepository, müşteri yorumları için interface.
type TestimonialRepository interface {
	Create(ctx context.Context, t *models.Testimonial) error
	GetByID(ctx context.Context, id string) (*models.Testimonial, error)
	List(ctx context.Context) ([]*models.Testimonial, error)
	ListActive(ctx context.Context) ([]*models.Testimonial, error)
	Update(ctx context.Context, t *models.Testimonial) error
	Deactivate(ctx context.Context, id string) error
}
