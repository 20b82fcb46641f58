package services

import (
	"context"
	"fmt"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/repository"
	"github.com/dspstudio/backend/ws"
)

// CatalogService, satışa dönük katalog verilerini yönetir:
// hizmetler, fiyat paketleri ve kampanyalar.
//
// ListX metodları admin panele tam listeyi verir;
// PublicX metodları sadece ziyaretçiye gösterilecekleri (aktif,
// kampanyalarda ek olarak tarih penceresi içindekileri) döner.
type CatalogService interface {
	// Hizmetler
	PublicServices(ctx context.Context) ([]*models.Service, error)
	ListServices(ctx context.Context) ([]*models.Service, error)
	CreateService(ctx context.Context, actorID string, req *models.CreateServiceRequest) (*models.Service, error)
	UpdateService(ctx context.Context, actorID, id string, req *models.UpdateServiceRequest) (*models.Service, error)
	DeactivateService(ctx context.Context, actorID, id string) error

	// Paketler
	PublicPackages(ctx context.Context) ([]*models.Package, error)
	ListPackages(ctx context.Context) ([]*models.Package, error)
	CreatePackage(ctx context.Context, actorID string, req *models.CreatePackageRequest) (*models.Package, error)
	UpdatePackage(ctx context.Context, actorID, id string, req *models.UpdatePackageRequest) (*models.Package, error)
	DeactivatePackage(ctx context.Context, actorID, id string) error

	// Kampanyalar
	PublicOffers(ctx context.Context) ([]*models.Offer, error)
	ListOffers(ctx context.Context) ([]*models.Offer, error)
	CreateOffer(ctx context.Context, actorID string, req *models.CreateOfferRequest) (*models.Offer, error)
	UpdateOffer(ctx context.Context, actorID, id string, req *models.UpdateOfferRequest) (*models.Offer, error)
	DeactivateOffer(ctx context.Context, actorID, id string) error
}

// catalogService, CatalogService'in implementasyonu.
type catalogService struct {
	serviceRepo repository.ServiceRepository
	packageRepo repository.PackageRepository
	offerRepo   repository.OfferRepository
	activity    ActivityService
	hub         ws.EventPublisher
}

// NewCatalogService, constructor.
func NewCatalogService(
	serviceRepo repository.ServiceRepository,
	packageRepo repository.PackageRepository,
	offerRepo repository.OfferRepository,
	activity ActivityService,
	hub ws.EventPublisher,
) CatalogService {
	return &catalogService{
		serviceRepo: serviceRepo,
		packageRepo: packageRepo,
		offerRepo:   offerRepo,
		activity:    activity,
		hub:         hub,
	}
}

// ─── Hizmetler ───

func (s *catalogService) PublicServices(ctx context.Context) ([]*models.Service, error) {
	return s.serviceRepo.ListActive(ctx)
}

func (s *catalogService) ListServices(ctx context.Context) ([]*models.Service, error) {
	return s.serviceRepo.List(ctx)
}

func (s *catalogService) CreateService(ctx context.Context, actorID string, req *models.CreateServiceRequest) (*models.Service, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	svc := &models.Service{
		Title:       req.Title,
		Description: req.Description,
		Features:    req.Features,
		Image:       req.Image,
		Icon:        req.Icon,
		Color:       req.Color,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}

	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "create", "service", svc.ID)
	return svc, nil
}

func (s *catalogService) UpdateService(ctx context.Context, actorID, id string, req *models.UpdateServiceRequest) (*models.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		svc.Title = *req.Title
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Features != nil {
		svc.Features = *req.Features
	}
	if req.Image != nil {
		svc.Image = *req.Image
	}
	if req.Icon != nil {
		svc.Icon = *req.Icon
	}
	if req.Color != nil {
		svc.Color = *req.Color
	}
	if req.SortOrder != nil {
		svc.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "update", "service", id)
	return svc, nil
}

func (s *catalogService) DeactivateService(ctx context.Context, actorID, id string) error {
	if err := s.serviceRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, actorID, "delete", "service", id)
	return nil
}

// ─── Paketler ───

func (s *catalogService) PublicPackages(ctx context.Context) ([]*models.Package, error) {
	return s.packageRepo.ListActive(ctx)
}

func (s *catalogService) ListPackages(ctx context.Context) ([]*models.Package, error) {
	return s.packageRepo.List(ctx)
}

func (s *catalogService) CreatePackage(ctx context.Context, actorID string, req *models.CreatePackageRequest) (*models.Package, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	p := &models.Package{
		Name:      req.Name,
		Price:     req.Price,
		Duration:  req.Duration,
		Category:  req.Category,
		Features:  req.Features,
		Popular:   req.Popular,
		Color:     req.Color,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}

	if err := s.packageRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "create", "package", p.ID)
	return p, nil
}

func (s *catalogService) UpdatePackage(ctx context.Context, actorID, id string, req *models.UpdatePackageRequest) (*models.Package, error) {
	p, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Duration != nil {
		p.Duration = *req.Duration
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Features != nil {
		p.Features = *req.Features
	}
	if req.Popular != nil {
		p.Popular = *req.Popular
	}
	if req.Color != nil {
		p.Color = *req.Color
	}
	if req.SortOrder != nil {
		p.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.packageRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "update", "package", id)
	return p, nil
}

func (s *catalogService) DeactivatePackage(ctx context.Context, actorID, id string) error {
	if err := s.packageRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, actorID, "delete", "package", id)
	return nil
}

// ─── Kampanyalar ───

func (s *catalogService) PublicOffers(ctx context.Context) ([]*models.Offer, error) {
	return s.offerRepo.ListCurrent(ctx)
}

func (s *catalogService) ListOffers(ctx context.Context) ([]*models.Offer, error) {
	return s.offerRepo.List(ctx)
}

func (s *catalogService) CreateOffer(ctx context.Context, actorID string, req *models.CreateOfferRequest) (*models.Offer, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	offer := &models.Offer{
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		ValidFrom:       req.ValidFrom,
		ValidUntil:      req.ValidUntil,
		Terms:           req.Terms,
		IsActive:        true,
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "create", "offer", offer.ID)
	return offer, nil
}

func (s *catalogService) UpdateOffer(ctx context.Context, actorID, id string, req *models.UpdateOfferRequest) (*models.Offer, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		offer.Title = *req.Title
	}
	if req.Description != nil {
		offer.Description = *req.Description
	}
	if req.DiscountPercent != nil {
		offer.DiscountPercent = *req.DiscountPercent
	}
	if req.ValidFrom != nil {
		offer.ValidFrom = *req.ValidFrom
	}
	if req.ValidUntil != nil {
		offer.ValidUntil = *req.ValidUntil
	}
	if req.Terms != nil {
		offer.Terms = *req.Terms
	}
	if req.IsActive != nil {
		offer.IsActive = *req.IsActive
	}

	if !offer.ValidUntil.After(offer.ValidFrom) {
		return nil, fmt.Errorf("%w: valid_until must be after valid_from", pkg.ErrBadRequest)
	}

	if err := s.offerRepo.Update(ctx, offer); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "update", "offer", id)
	return offer, nil
}

func (s *catalogService) DeactivateOffer(ctx context.Context, actorID, id string) error {
	if err := s.offerRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, actorID, "delete", "offer", id)
	return nil
}

func (s *catalogService) notify(ctx context.Context, actorID, action, resource, id string) {
	s.activity.Record(ctx, actorID, action, resource, &id, nil)
	if s.hub != nil {
		s.hub.BroadcastToAll(ws.Event{
			Op:   ws.OpContentUpdate,
			Data: ws.ContentUpdateData{Resource: resource, Action: action, ID: id},
		})
	}
}
