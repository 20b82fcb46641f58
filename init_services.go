// Package main — Service katmanı başlatma.
//
// initServices, tüm service implementasyonlarını oluşturur.
// Her service, ihtiyaç duyduğu repository interface'lerini ve diğer
// dependency'leri constructor injection ile alır.
//
// Sıralama kuralları:
// 1. activityService her şeyden ÖNCE — diğer service'ler işlem kaydı için ona bağımlı
// 2. copywriterService settingsService'den ÖNCE — settings anahtar değişiminde
//    copywriter'ın sağlayıcı zincirini günceller
package main

import (
	"context"
	"log"
	"time"

	"github.com/dspstudio/backend/config"
	"github.com/dspstudio/backend/pkg/email"
	"github.com/dspstudio/backend/pkg/preview"
	"github.com/dspstudio/backend/pkg/ratelimit"
	"github.com/dspstudio/backend/services"
	"github.com/dspstudio/backend/ws"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth       services.AuthService
	Activity   services.ActivityService
	User       services.UserService
	Content    services.ContentService
	Catalog    services.CatalogService
	Showcase   services.ShowcaseService
	Publishing services.PublishingService
	Inquiry    services.InquiryService
	Media      services.MediaService
	Analytics  services.AnalyticsService
	Marketing  services.MarketingService
	Settings   services.SettingsService
	Copywriter services.CopywriterService
}

// RateLimiters, tüm rate limiter instance'larını tutan container.
type RateLimiters struct {
	Login   *ratelimit.Limiter // Login brute-force koruması
	Inquiry *ratelimit.Limiter // Public form spam koruması
	Track   *ratelimit.Limiter // Analytics flood koruması
}

// initServices, tüm service'leri ve rate limiter'ları oluşturur.
//
// encryptionKey, settings'teki AI anahtarlarının AES-GCM anahtarıdır.
// sender nil olabilir — email yapılandırılmamışsa gönderim sessizce atlanır.
func initServices(
	repos *Repositories,
	hub ws.EventPublisher,
	cfg *config.Config,
	encryptionKey []byte,
	sender email.EmailSender,
) (*Services, *RateLimiters, error) {
	// ActivityService — diğer service'lerin işlem kaydı bağımlılığı
	activityService := services.NewActivityService(repos.Activity, hub)

	authService := services.NewAuthService(
		repos.User, repos.Session, repos.PasswordReset,
		activityService, sender,
		cfg.Session.DefaultTTLDays, cfg.Session.RememberTTLDays,
		cfg.Admin.Email, cfg.Admin.EmergencyResetKey,
	)

	mediaService, err := services.NewMediaService(
		repos.Media, cfg.Upload.Dir, cfg.Upload.MaxSize, activityService, hub,
	)
	if err != nil {
		return nil, nil, err
	}

	// Copywriter — başlangıç anahtarları önce DB'den (settings), DB boşsa env'den.
	groqKey, geminiKey, err := services.LoadAIKeys(context.Background(), repos.Settings, encryptionKey)
	if err != nil {
		return nil, nil, err
	}
	if groqKey == "" {
		groqKey = cfg.AI.GroqAPIKey
	}
	if geminiKey == "" {
		geminiKey = cfg.AI.GeminiAPIKey
	}
	copywriterService := services.NewCopywriterService(
		groqKey, geminiKey, time.Duration(cfg.AI.TimeoutSeconds)*time.Second,
	)

	svcs := &Services{
		Auth:     authService,
		Activity: activityService,
		User:     services.NewUserService(repos.User, repos.Session, activityService),
		Content:  services.NewContentService(repos.Content, activityService, hub),
		Catalog:  services.NewCatalogService(repos.Service, repos.Package, repos.Offer, activityService, hub),
		Showcase: services.NewShowcaseService(repos.Portfolio, repos.Testimonial, repos.Video, activityService, hub),
		Publishing: services.NewPublishingService(
			repos.Blog, repos.Page,
			preview.NewSigner(cfg.Security.PreviewSecret),
			activityService, hub,
		),
		Inquiry:    services.NewInquiryService(repos.Inquiry, sender, activityService, hub),
		Media:      mediaService,
		Analytics:  services.NewAnalyticsService(repos.Analytics, repos.Inquiry, repos.Blog, repos.Portfolio),
		Marketing:  services.NewMarketingService(repos.Marketing, activityService),
		Settings:   services.NewSettingsService(repos.Settings, encryptionKey, copywriterService, activityService),
		Copywriter: copywriterService,
	}

	limiters := &RateLimiters{
		Login:   ratelimit.NewLimiter(5, 15*time.Minute),
		Inquiry: ratelimit.NewLimiter(5, time.Minute),
		Track:   ratelimit.NewLimiter(60, time.Minute),
	}

	log.Println("[init] services initialized")
	return svcs, limiters, nil
}
