package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/repository"
	"github.com/dspstudio/backend/ws"
)

// ActivityService, admin işlem günlüğünü yönetir.
//
// Record asla hata dönmez: günlük kaydının başarısızlığı asıl işlemi
// geri almamalı. Hata sadece loglanır.
type ActivityService interface {
	Record(ctx context.Context, userID, action, resource string, resourceID *string, details any)
	List(ctx context.Context, limit int) ([]*models.ActivityEntry, error)
}

// activityService, ActivityService'in implementasyonu.
type activityService struct {
	repo repository.ActivityRepository
	hub  ws.EventPublisher
}

// NewActivityService, constructor. hub nil olabilir (testlerde).
func NewActivityService(repo repository.ActivityRepository, hub ws.EventPublisher) ActivityService {
	return &activityService{repo: repo, hub: hub}
}

func (s *activityService) Record(ctx context.Context, userID, action, resource string, resourceID *string, details any) {
	entry := &models.ActivityEntry{
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
	}

	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			entry.Details = raw
		}
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("[activity] failed to record %s %s: %v", action, resource, err)
		return
	}

	// Paneldeki canlı akışa da düşür
	if s.hub != nil {
		s.hub.BroadcastToAll(ws.Event{Op: ws.OpActivity, Data: entry})
	}
}

func (s *activityService) List(ctx context.Context, limit int) ([]*models.ActivityEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.List(ctx, limit)
}
