package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// OfferRepository, kampanyalar için interface.
// ListCurrent public site içindir: aktif VE tarih penceresi içindekiler.
type OfferRepository interface {
	Create(ctx context.Context, offer *models.Offer) error
	GetByID(ctx context.Context, id string) (*models.Offer, error)
	List(ctx context.Context) ([]*models.Offer, error)
	ListCurrent(ctx context.Context) ([]*models.Offer, error)
	Update(ctx context.Context, offer *models.Offer) error
	Deactivate(ctx context.Context, id string) error
}
