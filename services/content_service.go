package services

import (
	"context"
	"fmt"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/repository"
	"github.com/dspstudio/backend/ws"
)

// ContentService, site metin parçalarını yönetir.
// Public taraf List/ListBySection'ı okur; mutasyonlar admin paneldendir.
type ContentService interface {
	List(ctx context.Context) ([]*models.SiteContent, error)
	ListBySection(ctx context.Context, section string) ([]*models.SiteContent, error)
	Create(ctx context.Context, actorID string, req *models.CreateContentRequest) (*models.SiteContent, error)
	Update(ctx context.Context, actorID, id string, req *models.UpdateContentRequest) (*models.SiteContent, error)
	Delete(ctx context.Context, actorID, id string) error
}

// contentService, ContentService'in implementasyonu.
type contentService struct {
	repo     repository.ContentRepository
	activity ActivityService
	hub      ws.EventPublisher
}

// NewContentService, constructor.
func NewContentService(repo repository.ContentRepository, activity ActivityService, hub ws.EventPublisher) ContentService {
	return &contentService{repo: repo, activity: activity, hub: hub}
}

func (s *contentService) List(ctx context.Context) ([]*models.SiteContent, error) {
	return s.repo.List(ctx)
}

func (s *contentService) ListBySection(ctx context.Context, section string) ([]*models.SiteContent, error) {
	return s.repo.ListBySection(ctx, section)
}

func (s *contentService) Create(ctx context.Context, actorID string, req *models.CreateContentRequest) (*models.SiteContent, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	content := &models.SiteContent{
		Section: req.Section,
		Key:     req.Key,
		Value:   req.Value,
		Type:    req.Type,
	}

	if err := s.repo.Create(ctx, content); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "create", content.ID)

	return content, nil
}

func (s *contentService) Update(ctx context.Context, actorID, id string, req *models.UpdateContentRequest) (*models.SiteContent, error) {
	content, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Value != nil {
		content.Value = *req.Value
	}
	if req.Type != nil {
		content.Type = *req.Type
	}

	if err := s.repo.Update(ctx, content); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "update", id)

	return content, nil
}

func (s *contentService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notify(ctx, actorID, "delete", id)

	return nil
}

// notify, işlem günlüğüne yazar ve paneldeki diğer sekmelere haber verir.
func (s *contentService) notify(ctx context.Context, actorID, action, id string) {
	s.activity.Record(ctx, actorID, action, "content", &id, nil)
	if s.hub != nil {
		s.hub.BroadcastToAll(ws.Event{
			Op:   ws.OpContentUpdate,
			Data: ws.ContentUpdateData{Resource: "content", Action: action, ID: id},
		})
	}
}
