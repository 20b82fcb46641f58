package services

import (
	"context"
	"fmt"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/repository"
	"github.com/dspstudio/backend/ws"
)

// ShowcaseService, vitrin içeriklerini yönetir:
// portfolyo görselleri, müşteri yorumları ve video galerisi.
type ShowcaseService interface {
	// Portfolyo
	PublicPortfolio(ctx context.Context) ([]*models.PortfolioItem, error)
	PublicPortfolioByCategory(ctx context.Context, category string) ([]*models.PortfolioItem, error)
	ListPortfolio(ctx context.Context) ([]*models.PortfolioItem, error)
	CreatePortfolioItem(ctx context.Context, actorID string, req *models.CreatePortfolioRequest) (*models.PortfolioItem, error)
	UpdatePortfolioItem(ctx context.Context, actorID, id string, req *models.UpdatePortfolioRequest) (*models.PortfolioItem, error)
	DeactivatePortfolioItem(ctx context.Context, actorID, id string) error

	// Yorumlar
	PublicTestimonials(ctx context.Context) ([]*models.Testimonial, error)
	ListTestimonials(ctx context.Context) ([]*models.Testimonial, error)
	CreateTestimonial(ctx context.Context, actorID string, req *models.CreateTestimonialRequest) (*models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, actorID, id string, req *models.UpdateTestimonialRequest) (*models.Testimonial, error)
	DeactivateTestimonial(ctx context.Context, actorID, id string) error

	// Videolar
	PublicVideos(ctx context.Context) ([]*models.Video, error)
	ListVideos(ctx context.Context) ([]*models.Video, error)
	CreateVideo(ctx context.Context, actorID string, req *models.CreateVideoRequest) (*models.Video, error)
	UpdateVideo(ctx context.Context, actorID, id string, req *models.UpdateVideoRequest) (*models.Video, error)
	DeactivateVideo(ctx context.Context, actorID, id string) error
}

// showcaseService, ShowcaseService'in implementasyonu.
type showcaseService struct {
	portfolioRepo   repository.PortfolioRepository
	testimonialRepo repository.TestimonialRepository
	videoRepo       repository.VideoRepository
	activity        ActivityService
	hub             ws.EventPublisher
}

// NewShowcaseService, constructor.
func NewShowcaseService(
	portfolioRepo repository.PortfolioRepository,
	testimonialRepo repository.TestimonialRepository,
	videoRepo repository.VideoRepository,
	activity ActivityService,
	hub ws.EventPublisher,
) ShowcaseService {
	return &showcaseService{
		portfolioRepo:   portfolioRepo,
		testimonialRepo: testimonialRepo,
		videoRepo:       videoRepo,
		activity:        activity,
		hub:             hub,
	}
}

// ─── Portfolyo ───

func (s *showcaseService) PublicPortfolio(ctx context.Context) ([]*models.PortfolioItem, error) {
	return s.portfolioRepo.ListActive(ctx)
}

func (s *showcaseService) PublicPortfolioByCategory(ctx context.Context, category string) ([]*models.PortfolioItem, error) {
	return s.portfolioRepo.ListActiveByCategory(ctx, category)
}

func (s *showcaseService) ListPortfolio(ctx context.Context) ([]*models.PortfolioItem, error) {
	return s.portfolioRepo.List(ctx)
}

func (s *showcaseService) CreatePortfolioItem(ctx context.Context, actorID string, req *models.CreatePortfolioRequest) (*models.PortfolioItem, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	item := &models.PortfolioItem{
		Title:       req.Title,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}

	if err := s.portfolioRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "create", "portfolio", item.ID)
	return item, nil
}

func (s *showcaseService) UpdatePortfolioItem(ctx context.Context, actorID, id string, req *models.UpdatePortfolioRequest) (*models.PortfolioItem, error) {
	item, err := s.portfolioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.portfolioRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "update", "portfolio", id)
	return item, nil
}

func (s *showcaseService) DeactivatePortfolioItem(ctx context.Context, actorID, id string) error {
	if err := s.portfolioRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, actorID, "delete", "portfolio", id)
	return nil
}

// ─── Yorumlar ───

func (s *showcaseService) PublicTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	return s.testimonialRepo.ListActive(ctx)
}

func (s *showcaseService) ListTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	return s.testimonialRepo.List(ctx)
}

func (s *showcaseService) CreateTestimonial(ctx context.Context, actorID string, req *models.CreateTestimonialRequest) (*models.Testimonial, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	t := &models.Testimonial{
		Name:      req.Name,
		Event:     req.Event,
		Rating:    req.Rating,
		Text:      req.Text,
		Image:     req.Image,
		Location:  req.Location,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}

	if err := s.testimonialRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "create", "testimonial", t.ID)
	return t, nil
}

func (s *showcaseService) UpdateTestimonial(ctx context.Context, actorID, id string, req *models.UpdateTestimonialRequest) (*models.Testimonial, error) {
	t, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Event != nil {
		t.Event = *req.Event
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, fmt.Errorf("%w: rating must be between 1 and 5", pkg.ErrBadRequest)
		}
		t.Rating = *req.Rating
	}
	if req.Text != nil {
		t.Text = *req.Text
	}
	if req.Image != nil {
		t.Image = *req.Image
	}
	if req.Location != nil {
		t.Location = *req.Location
	}
	if req.SortOrder != nil {
		t.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.testimonialRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "update", "testimonial", id)
	return t, nil
}

func (s *showcaseService) DeactivateTestimonial(ctx context.Context, actorID, id string) error {
	if err := s.testimonialRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, actorID, "delete", "testimonial", id)
	return nil
}

// ─── Videolar ───

func (s *showcaseService) PublicVideos(ctx context.Context) ([]*models.Video, error) {
	return s.videoRepo.ListActive(ctx)
}

func (s *showcaseService) ListVideos(ctx context.Context) ([]*models.Video, error) {
	return s.videoRepo.List(ctx)
}

func (s *showcaseService) CreateVideo(ctx context.Context, actorID string, req *models.CreateVideoRequest) (*models.Video, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	video := &models.Video{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Thumbnail:   req.Thumbnail,
		Category:    req.Category,
		Duration:    req.Duration,
		Tags:        req.Tags,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}

	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "create", "video", video.ID)
	return video, nil
}

func (s *showcaseService) UpdateVideo(ctx context.Context, actorID, id string, req *models.UpdateVideoRequest) (*models.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.Description != nil {
		video.Description = *req.Description
	}
	if req.VideoURL != nil {
		video.VideoURL = *req.VideoURL
	}
	if req.Thumbnail != nil {
		video.Thumbnail = *req.Thumbnail
	}
	if req.Category != nil {
		video.Category = *req.Category
	}
	if req.Duration != nil {
		video.Duration = req.Duration
	}
	if req.Tags != nil {
		video.Tags = *req.Tags
	}
	if req.SortOrder != nil {
		video.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		video.IsActive = *req.IsActive
	}

	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "update", "video", id)
	return video, nil
}

func (s *showcaseService) DeactivateVideo(ctx context.Context, actorID, id string) error {
	if err := s.videoRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, actorID, "delete", "video", id)
	return nil
}

func (s *showcaseService) notify(ctx context.Context, actorID, action, resource, id string) {
	s.activity.Record(ctx, actorID, action, resource, &id, nil)
	if s.hub != nil {
		s.hub.BroadcastToAll(ws.Event{
			Op:   ws.OpContentUpdate,
			Data: ws.ContentUpdateData{Resource: resource, Action: action, ID: id},
		})
	}
}
