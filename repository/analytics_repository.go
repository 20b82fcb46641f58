package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// AnalyticsRepository, ziyaretçi olayları için interface.
// Olaylar append-only'dir; güncelleme/silme yoktur.
type AnalyticsRepository interface {
	Create(ctx context.Context, event *models.AnalyticsEvent) error
	CountByType(ctx context.Context, eventType string) (int, error)
	TopPages(ctx context.Context, limit int) ([]models.PageCount, error)
	RecentByType(ctx context.Context, eventType string, limit int) ([]models.AnalyticsEvent, error)
}
