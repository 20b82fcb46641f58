package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/pkg/preview"
	"github.com/dspstudio/backend/repository"
	"github.com/dspstudio/backend/ws"
)

// PublishingService, blog yazılarını ve serbest sayfaları yönetir.
//
// Draft önizleme: yayınlanmamış içerik public slug endpoint'lerinden
// görünmez, ama MintPreviewToken ile kısa ömürlü imzalı bir link
// üretilebilir. Link, oturumu olmayan birine (ör. müşteriye) taslağı
// göstermek içindir.
type PublishingService interface {
	// Blog
	PublicPosts(ctx context.Context) ([]*models.BlogPost, error)
	PublicPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	ListPosts(ctx context.Context) ([]*models.BlogPost, error)
	GetPost(ctx context.Context, id string) (*models.BlogPost, error)
	CreatePost(ctx context.Context, actorID string, req *models.CreateBlogPostRequest) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, actorID, id string, req *models.UpdateBlogPostRequest) (*models.BlogPost, error)
	DeletePost(ctx context.Context, actorID, id string) error

	// Sayfalar
	PublicPages(ctx context.Context) ([]*models.Page, error)
	PublicPageBySlug(ctx context.Context, slug string) (*models.Page, error)
	ListPages(ctx context.Context) ([]*models.Page, error)
	GetPage(ctx context.Context, id string) (*models.Page, error)
	CreatePage(ctx context.Context, actorID string, req *models.CreatePageRequest) (*models.Page, error)
	UpdatePage(ctx context.Context, actorID, id string, req *models.UpdatePageRequest) (*models.Page, error)
	DeletePage(ctx context.Context, actorID, id string) error

	// Taslak önizleme
	MintPreviewToken(ctx context.Context, kind, resourceID string) (string, error)
	ResolvePreview(ctx context.Context, kind, resourceID, tokenString string) (any, error)
}

// publishingService, PublishingService'in implementasyonu.
type publishingService struct {
	blogRepo repository.BlogRepository
	pageRepo repository.PageRepository
	signer   *preview.Signer
	activity ActivityService
	hub      ws.EventPublisher
}

// NewPublishingService, constructor.
func NewPublishingService(
	blogRepo repository.BlogRepository,
	pageRepo repository.PageRepository,
	signer *preview.Signer,
	activity ActivityService,
	hub ws.EventPublisher,
) PublishingService {
	return &publishingService{
		blogRepo: blogRepo,
		pageRepo: pageRepo,
		signer:   signer,
		activity: activity,
		hub:      hub,
	}
}

// ─── Blog ───

func (s *publishingService) PublicPosts(ctx context.Context) ([]*models.BlogPost, error) {
	return s.blogRepo.ListPublished(ctx)
}

func (s *publishingService) PublicPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return s.blogRepo.GetPublishedBySlug(ctx, slug)
}

func (s *publishingService) ListPosts(ctx context.Context) ([]*models.BlogPost, error) {
	return s.blogRepo.List(ctx)
}

func (s *publishingService) GetPost(ctx context.Context, id string) (*models.BlogPost, error) {
	return s.blogRepo.GetByID(ctx, id)
}

func (s *publishingService) CreatePost(ctx context.Context, actorID string, req *models.CreateBlogPostRequest) (*models.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	post := &models.BlogPost{
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		Excerpt:        req.Excerpt,
		FeaturedImage:  req.FeaturedImage,
		Category:       req.Category,
		Tags:           req.Tags,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		OGImage:        req.OGImage,
		IsPublished:    req.IsPublished,
		PublishedAt:    req.PublishedAt,
	}

	// Yayınlanıyor ama tarih verilmemiş — şimdi yayınlandı say
	if post.IsPublished && post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "create", "blog", post.ID)
	return post, nil
}

func (s *publishingService) UpdatePost(ctx context.Context, actorID, id string, req *models.UpdateBlogPostRequest) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.FeaturedImage != nil {
		post.FeaturedImage = *req.FeaturedImage
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}
	if req.SEOTitle != nil {
		post.SEOTitle = req.SEOTitle
	}
	if req.SEODescription != nil {
		post.SEODescription = req.SEODescription
	}
	if req.OGImage != nil {
		post.OGImage = req.OGImage
	}
	if req.PublishedAt != nil {
		post.PublishedAt = req.PublishedAt
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
		if post.IsPublished && post.PublishedAt == nil {
			now := time.Now().UTC()
			post.PublishedAt = &now
		}
	}

	if err := s.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "update", "blog", id)
	return post, nil
}

func (s *publishingService) DeletePost(ctx context.Context, actorID, id string) error {
	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, actorID, "delete", "blog", id)
	return nil
}

// ─── Sayfalar ───

func (s *publishingService) PublicPages(ctx context.Context) ([]*models.Page, error) {
	return s.pageRepo.ListPublished(ctx)
}

func (s *publishingService) PublicPageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	return s.pageRepo.GetPublishedBySlug(ctx, slug)
}

func (s *publishingService) ListPages(ctx context.Context) ([]*models.Page, error) {
	return s.pageRepo.List(ctx)
}

func (s *publishingService) GetPage(ctx context.Context, id string) (*models.Page, error) {
	return s.pageRepo.GetByID(ctx, id)
}

func (s *publishingService) CreatePage(ctx context.Context, actorID string, req *models.CreatePageRequest) (*models.Page, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	page := &models.Page{
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		Template:       req.Template,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		OGImage:        req.OGImage,
		IsPublished:    req.IsPublished,
	}

	if err := s.pageRepo.Create(ctx, page); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "create", "page", page.ID)
	return page, nil
}

func (s *publishingService) UpdatePage(ctx context.Context, actorID, id string, req *models.UpdatePageRequest) (*models.Page, error) {
	page, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Content != nil {
		page.Content = *req.Content
	}
	if req.Template != nil {
		page.Template = *req.Template
	}
	if req.SEOTitle != nil {
		page.SEOTitle = req.SEOTitle
	}
	if req.SEODescription != nil {
		page.SEODescription = req.SEODescription
	}
	if req.OGImage != nil {
		page.OGImage = req.OGImage
	}
	if req.IsPublished != nil {
		page.IsPublished = *req.IsPublished
	}

	if err := s.pageRepo.Update(ctx, page); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "update", "page", id)
	return page, nil
}

func (s *publishingService) DeletePage(ctx context.Context, actorID, id string) error {
	if err := s.pageRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, actorID, "delete", "page", id)
	return nil
}

// ─── Taslak önizleme ───

// MintPreviewToken, mevcut bir taslak için imzalı önizleme token'ı üretir.
// Kaynak gerçekten var olmalı — yoksa ErrNotFound.
func (s *publishingService) MintPreviewToken(ctx context.Context, kind, resourceID string) (string, error) {
	switch kind {
	case preview.KindBlog:
		if _, err := s.blogRepo.GetByID(ctx, resourceID); err != nil {
			return "", err
		}
	case preview.KindPage:
		if _, err := s.pageRepo.GetByID(ctx, resourceID); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: unknown preview kind %q", pkg.ErrBadRequest, kind)
	}

	return s.signer.Mint(kind, resourceID)
}

// ResolvePreview, geçerli bir token ile taslağın tamamını döner —
// yayınlanmış olma şartı aranmaz. Token süresi dolmuşsa veya başka
// bir kaynak için üretilmişse ErrUnauthorized.
func (s *publishingService) ResolvePreview(ctx context.Context, kind, resourceID, tokenString string) (any, error) {
	if err := s.signer.Verify(tokenString, kind, resourceID); err != nil {
		return nil, fmt.Errorf("%w: invalid or expired preview token", pkg.ErrUnauthorized)
	}

	switch kind {
	case preview.KindBlog:
		return s.blogRepo.GetByID(ctx, resourceID)
	case preview.KindPage:
		return s.pageRepo.GetByID(ctx, resourceID)
	default:
		return nil, fmt.Errorf("%w: unknown preview kind %q", pkg.ErrBadRequest, kind)
	}
}

func (s *publishingService) notify(ctx context.Context, actorID, action, resource, id string) {
	s.activity.Record(ctx, actorID, action, resource, &id, nil)
	if s.hub != nil {
		s.hub.BroadcastToAll(ws.Event{
			Op:   ws.OpContentUpdate,
			Data: ws.ContentUpdateData{Resource: resource, Action: action, ID: id},
		})
	}
}
