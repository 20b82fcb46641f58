package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// ActivityRepository, işlem günlüğü için interface (append-only).
type ActivityRepository interface {
	Create(ctx context.Context, entry *models.ActivityEntry) error
	List(ctx context.Context, limit int) ([]*models.ActivityEntry, error)
}
