package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// InquiryRepository, iletişim formu başvuruları için interface.
type InquiryRepository interface {
	Create(ctx context.Context, inq *models.Inquiry) error
	GetByID(ctx context.Context, id string) (*models.Inquiry, error)
	List(ctx context.Context) ([]*models.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}
