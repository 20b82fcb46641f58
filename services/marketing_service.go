package services

import (
	"context"
	"fmt"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/repository"
)

// MarketingService, üçüncü parti takip script kayıtlarını yönetir.
// PublicScripts, sitenin <head> injection'ı için sadece aktif kayıtları döner.
type MarketingService interface {
	Upsert(ctx context.Context, actorID string, req *models.UpsertMarketingScriptRequest) (*models.MarketingScript, error)
	List(ctx context.Context) ([]*models.MarketingScript, error)
	PublicScripts(ctx context.Context) ([]*models.MarketingScript, error)
	Delete(ctx context.Context, actorID, name string) error
}

// marketingService, MarketingService'in implementasyonu.
type marketingService struct {
	marketingRepo repository.MarketingRepository
	activity      ActivityService
}

// NewMarketingService, constructor.
func NewMarketingService(marketingRepo repository.MarketingRepository, activity ActivityService) MarketingService {
	return &marketingService{marketingRepo: marketingRepo, activity: activity}
}

// Upsert, script kaydını name üzerinden oluşturur ya da günceller.
func (s *marketingService) Upsert(ctx context.Context, actorID string, req *models.UpsertMarketingScriptRequest) (*models.MarketingScript, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	script := &models.MarketingScript{
		Name:     req.Name,
		ScriptID: req.ScriptID,
		IsActive: req.IsActive,
		Config:   req.Config,
	}

	if err := s.marketingRepo.Upsert(ctx, script); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actorID, "upsert", "marketing_script", &script.ID, map[string]string{"name": script.Name})
	return script, nil
}

func (s *marketingService) List(ctx context.Context) ([]*models.MarketingScript, error) {
	return s.marketingRepo.List(ctx)
}

func (s *marketingService) PublicScripts(ctx context.Context) ([]*models.MarketingScript, error) {
	return s.marketingRepo.ListActive(ctx)
}

func (s *marketingService) Delete(ctx context.Context, actorID, name string) error {
	if err := s.marketingRepo.Delete(ctx, name); err != nil {
		return err
	}
	s.activity.Record(ctx, actorID, "delete", "marketing_script", nil, map[string]string{"name": name})
	return nil
}
