package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/pkg/cache"
	"github.com/dspstudio/backend/repository"
)

// statsCacheTTL, dashboard istatistiklerinin önbellek süresi.
// Track yazmaları ucuz ama Stats dört tabloya birden bakar — dashboard'un
// her yenilenmesinde tekrar hesaplamaya gerek yok.
const statsCacheTTL = 30 * time.Second

// AnalyticsService, ziyaretçi olayı kaydı ve dashboard istatistikleri.
type AnalyticsService interface {
	Track(ctx context.Context, req *models.TrackEventRequest, userAgent, ip string) error
	Stats(ctx context.Context) (*models.AnalyticsStats, error)
	Close()
}

// analyticsService, AnalyticsService'in implementasyonu.
type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	inquiryRepo   repository.InquiryRepository
	blogRepo      repository.BlogRepository
	portfolioRepo repository.PortfolioRepository
	statsCache    *cache.TTLCache[string, *models.AnalyticsStats]
}

// NewAnalyticsService, constructor.
func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	inquiryRepo repository.InquiryRepository,
	blogRepo repository.BlogRepository,
	portfolioRepo repository.PortfolioRepository,
) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		inquiryRepo:   inquiryRepo,
		blogRepo:      blogRepo,
		portfolioRepo: portfolioRepo,
		statsCache:    cache.New[string, *models.AnalyticsStats](statsCacheTTL, time.Minute),
	}
}

// Track, public endpoint'ten gelen olayı kaydeder.
// UserAgent ve IP body'den değil istekten gelir — spoof edilemez demek
// değil ama en azından body ile oynamak yetmez.
func (s *analyticsService) Track(ctx context.Context, req *models.TrackEventRequest, userAgent, ip string) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	event := &models.AnalyticsEvent{
		EventType: req.EventType,
		Page:      req.Page,
		Data:      req.Data,
	}
	if userAgent != "" {
		event.UserAgent = &userAgent
	}
	if ip != "" {
		event.IPAddress = &ip
	}

	return s.analyticsRepo.Create(ctx, event)
}

// Stats, dashboard özetini döner. 30 saniyelik cache arkasındadır.
func (s *analyticsService) Stats(ctx context.Context) (*models.AnalyticsStats, error) {
	if cached, ok := s.statsCache.Get("stats"); ok {
		return cached, nil
	}

	pageViews, err := s.analyticsRepo.CountByType(ctx, "page_view")
	if err != nil {
		return nil, err
	}
	inquiries, err := s.inquiryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.blogRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	portfolio, err := s.portfolioRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	topPages, err := s.analyticsRepo.TopPages(ctx, 10)
	if err != nil {
		return nil, err
	}
	recent, err := s.analyticsRepo.RecentByType(ctx, "page_view", 100)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.inquiryRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.AnalyticsStats{
		TotalPageViews:   pageViews,
		TotalInquiries:   inquiries,
		TotalBlogPosts:   posts,
		TotalPortfolio:   portfolio,
		TopPages:         topPages,
		RecentViews:      recent,
		InquiriesByState: byStatus,
	}

	s.statsCache.Set("stats", stats)
	return stats, nil
}

// Close, cache'in temizlik goroutine'ini durdurur.
func (s *analyticsService) Close() {
	s.statsCache.Close()
}
