// Package main — Handler katmanı başlatma.
//
// initHandlers, tüm HTTP handler'larını oluşturur.
// Her handler, ihtiyaç duyduğu service interface'lerini constructor'dan alır.
// Handler'lar "thin" dir — sadece HTTP parse + service call + response write.
package main

import (
	"github.com/dspstudio/backend/config"
	"github.com/dspstudio/backend/handlers"
	"github.com/dspstudio/backend/ws"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Content    *handlers.ContentHandler
	Catalog    *handlers.CatalogHandler
	Showcase   *handlers.ShowcaseHandler
	Publishing *handlers.PublishingHandler
	Inquiry    *handlers.InquiryHandler
	Media      *handlers.MediaHandler
	Analytics  *handlers.AnalyticsHandler
	Marketing  *handlers.MarketingHandler
	Activity   *handlers.ActivityHandler
	Settings   *handlers.SettingsHandler
	Copywriter *handlers.CopywriterHandler
	WS         *ws.Handler
}

// initHandlers, tüm handler'ları service ve rate limiter dependency'leri ile oluşturur.
func initHandlers(svcs *Services, limiters *RateLimiters, hub *ws.Hub, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:       handlers.NewAuthHandler(svcs.Auth, limiters.Login),
		User:       handlers.NewUserHandler(svcs.User),
		Content:    handlers.NewContentHandler(svcs.Content),
		Catalog:    handlers.NewCatalogHandler(svcs.Catalog),
		Showcase:   handlers.NewShowcaseHandler(svcs.Showcase),
		Publishing: handlers.NewPublishingHandler(svcs.Publishing),
		Inquiry:    handlers.NewInquiryHandler(svcs.Inquiry, limiters.Inquiry),
		Media:      handlers.NewMediaHandler(svcs.Media, cfg.Upload.Dir, cfg.Upload.MaxSize),
		Analytics:  handlers.NewAnalyticsHandler(svcs.Analytics, limiters.Track),
		Marketing:  handlers.NewMarketingHandler(svcs.Marketing),
		Activity:   handlers.NewActivityHandler(svcs.Activity),
		Settings:   handlers.NewSettingsHandler(svcs.Settings),
		Copywriter: handlers.NewCopywriterHandler(svcs.Copywriter),
		WS:         ws.NewHandler(hub, svcs.Auth, cfg.CORS.AllowedOrigins),
	}
}
