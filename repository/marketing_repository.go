package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// MarketingRepository, pazarlama script kayıtları için interface.
// Upsert name üzerinden çalışır — her script adından tek kayıt olur.
type MarketingRepository interface {
	Upsert(ctx context.Context, script *models.MarketingScript) error
	GetByName(ctx context.Context, name string) (*models.MarketingScript, error)
	List(ctx context.Context) ([]*models.MarketingScript, error)
	ListActive(ctx context.Context) ([]*models.MarketingScript, error)
	Delete(ctx context.Context, name string) error
}
