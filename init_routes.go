// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Middleware chain helper'ları burada tanımlıdır:
//   - auth: oturum cookie doğrulaması
//   - authPerm: auth + belirli permission kontrolü
package main

import (
	"net/http"

	"github.com/dspstudio/backend/middleware"
	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/services"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
//
// Route sıralama kuralı: Literal path'ler parametrik path'lerden ÖNCE tanımlanmalı.
// Örnek: "/api/portfolio/category/{category}" → "/api/blog/{slug}" gibi
// parametrik route'larla çakışmaz çünkü Go 1.22 router'ı en spesifik
// pattern'i seçer, ama aynı segment sayısında literal öncedir.
func initRoutes(mux *http.ServeMux, h *Handlers, authService services.AuthService) {
	// ─── Middleware ───
	authMw := middleware.NewAuthMiddleware(authService)

	// ─── Middleware Chain Helpers ───
	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(http.HandlerFunc(handler))
	}
	authPerm := func(perm models.Permission, handler http.HandlerFunc) http.Handler {
		return authMw.Require(middleware.RequirePermission(perm, http.HandlerFunc(handler)))
	}

	// ╔══════════════════════════════════════════╗
	// ║  PUBLIC ROUTES (site tarafı)             ║
	// ╚══════════════════════════════════════════╝

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"studio-cms"}`))
	})

	// Site içeriği
	mux.HandleFunc("GET /api/content", h.Content.List)
	mux.HandleFunc("GET /api/services", h.Catalog.PublicServices)
	mux.HandleFunc("GET /api/packages", h.Catalog.PublicPackages)
	mux.HandleFunc("GET /api/offers", h.Catalog.PublicOffers)
	mux.HandleFunc("GET /api/portfolio", h.Showcase.PublicPortfolio)
	mux.HandleFunc("GET /api/portfolio/category/{category}", h.Showcase.PublicPortfolioByCategory)
	mux.HandleFunc("GET /api/testimonials", h.Showcase.PublicTestimonials)
	mux.HandleFunc("GET /api/videos", h.Showcase.PublicVideos)
	mux.HandleFunc("GET /api/blog", h.Publishing.PublicPosts)
	mux.HandleFunc("GET /api/blog/{slug}", h.Publishing.PublicPostBySlug)
	mux.HandleFunc("GET /api/pages", h.Publishing.PublicPages)
	mux.HandleFunc("GET /api/pages/{slug}", h.Publishing.PublicPageBySlug)
	mux.HandleFunc("GET /api/marketing/scripts", h.Marketing.PublicScripts)

	// Taslak önizleme — token'sız hiçbir şey dönmez
	mux.HandleFunc("GET /api/preview/{kind}/{id}", h.Publishing.ResolvePreview)

	// Ziyaretçi etkileşimleri
	mux.HandleFunc("POST /api/inquiries", h.Inquiry.Create)
	mux.HandleFunc("POST /api/analytics/track", h.Analytics.Track)

	// Yüklenmiş dosyalar
	mux.HandleFunc("GET /api/uploads/{name}", h.Media.ServeFile)

	// Auth — public endpoint'ler
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	mux.HandleFunc("POST /api/auth/password-reset/request", h.Auth.RequestPasswordReset)
	mux.HandleFunc("POST /api/auth/password-reset/confirm", h.Auth.ConfirmPasswordReset)
	mux.HandleFunc("POST /api/auth/emergency-reset", h.Auth.EmergencyReset)

	// ╔══════════════════════════════════════════╗
	// ║  ADMIN ROUTES (oturum + yetki gerekir)   ║
	// ╚══════════════════════════════════════════╝

	mux.Handle("GET /api/auth/me", auth(h.Auth.Me))

	// WebSocket — cookie ile doğrulanır, upgrade handler içinde yapılır
	mux.HandleFunc("GET /api/admin/ws", h.WS.HandleConnection)

	// Kullanıcı yönetimi — sadece admin
	mux.Handle("GET /api/admin/users", authPerm(models.PermManageUsers, h.User.List))
	mux.Handle("POST /api/admin/users", authPerm(models.PermManageUsers, h.User.Create))
	mux.Handle("PUT /api/admin/users/{id}", authPerm(models.PermManageUsers, h.User.Update))
	mux.Handle("DELETE /api/admin/users/{id}", authPerm(models.PermManageUsers, h.User.Deactivate))

	// Site içeriği
	mux.Handle("POST /api/admin/content", authPerm(models.PermManageContent, h.Content.Create))
	mux.Handle("PUT /api/admin/content/{id}", authPerm(models.PermManageContent, h.Content.Update))
	mux.Handle("DELETE /api/admin/content/{id}", authPerm(models.PermManageContent, h.Content.Delete))

	// Hizmetler
	mux.Handle("GET /api/admin/services", authPerm(models.PermManageContent, h.Catalog.ListServices))
	mux.Handle("POST /api/admin/services", authPerm(models.PermManageContent, h.Catalog.CreateService))
	mux.Handle("PUT /api/admin/services/{id}", authPerm(models.PermManageContent, h.Catalog.UpdateService))
	mux.Handle("DELETE /api/admin/services/{id}", authPerm(models.PermManageContent, h.Catalog.DeactivateService))

	// Paketler
	mux.Handle("GET /api/admin/packages", authPerm(models.PermManageContent, h.Catalog.ListPackages))
	mux.Handle("POST /api/admin/packages", authPerm(models.PermManageContent, h.Catalog.CreatePackage))
	mux.Handle("PUT /api/admin/packages/{id}", authPerm(models.PermManageContent, h.Catalog.UpdatePackage))
	mux.Handle("DELETE /api/admin/packages/{id}", authPerm(models.PermManageContent, h.Catalog.DeactivatePackage))

	// Kampanyalar
	mux.Handle("GET /api/admin/offers", authPerm(models.PermManageOffers, h.Catalog.ListOffers))
	mux.Handle("POST /api/admin/offers", authPerm(models.PermManageOffers, h.Catalog.CreateOffer))
	mux.Handle("PUT /api/admin/offers/{id}", authPerm(models.PermManageOffers, h.Catalog.UpdateOffer))
	mux.Handle("DELETE /api/admin/offers/{id}", authPerm(models.PermManageOffers, h.Catalog.DeactivateOffer))

	// Portfolyo
	mux.Handle("GET /api/admin/portfolio", authPerm(models.PermManageGallery, h.Showcase.ListPortfolio))
	mux.Handle("POST /api/admin/portfolio", authPerm(models.PermManageGallery, h.Showcase.CreatePortfolioItem))
	mux.Handle("PUT /api/admin/portfolio/{id}", authPerm(models.PermManageGallery, h.Showcase.UpdatePortfolioItem))
	mux.Handle("DELETE /api/admin/portfolio/{id}", authPerm(models.PermManageGallery, h.Showcase.DeactivatePortfolioItem))

	// Müşteri yorumları
	mux.Handle("GET /api/admin/testimonials", authPerm(models.PermManageContent, h.Showcase.ListTestimonials))
	mux.Handle("POST /api/admin/testimonials", authPerm(models.PermManageContent, h.Showcase.CreateTestimonial))
	mux.Handle("PUT /api/admin/testimonials/{id}", authPerm(models.PermManageContent, h.Showcase.UpdateTestimonial))
	mux.Handle("DELETE /api/admin/testimonials/{id}", authPerm(models.PermManageContent, h.Showcase.DeactivateTestimonial))

	// Videolar
	mux.Handle("GET /api/admin/videos", authPerm(models.PermManageVideos, h.Showcase.ListVideos))
	mux.Handle("POST /api/admin/videos", authPerm(models.PermManageVideos, h.Showcase.CreateVideo))
	mux.Handle("PUT /api/admin/videos/{id}", authPerm(models.PermManageVideos, h.Showcase.UpdateVideo))
	mux.Handle("DELETE /api/admin/videos/{id}", authPerm(models.PermManageVideos, h.Showcase.DeactivateVideo))

	// Blog
	mux.Handle("GET /api/admin/blog", authPerm(models.PermManageBlog, h.Publishing.ListPosts))
	mux.Handle("POST /api/admin/blog", authPerm(models.PermManageBlog, h.Publishing.CreatePost))
	mux.Handle("PUT /api/admin/blog/{id}", authPerm(models.PermManageBlog, h.Publishing.UpdatePost))
	mux.Handle("DELETE /api/admin/blog/{id}", authPerm(models.PermManageBlog, h.Publishing.DeletePost))

	// Sayfalar
	mux.Handle("GET /api/admin/pages", authPerm(models.PermManagePages, h.Publishing.ListPages))
	mux.Handle("POST /api/admin/pages", authPerm(models.PermManagePages, h.Publishing.CreatePage))
	mux.Handle("PUT /api/admin/pages/{id}", authPerm(models.PermManagePages, h.Publishing.UpdatePage))
	mux.Handle("DELETE /api/admin/pages/{id}", authPerm(models.PermManagePages, h.Publishing.DeletePage))

	// Taslak önizleme linki üretimi — yetki kontrolü handler'da, tür bazında
	// (blog → manage_blog, page → manage_pages)
	mux.Handle("POST /api/admin/preview/{kind}/{id}", auth(h.Publishing.MintPreviewToken))

	// Talepler
	mux.Handle("GET /api/admin/inquiries", auth(h.Inquiry.List))
	mux.Handle("GET /api/admin/inquiries/{id}", auth(h.Inquiry.Get))
	mux.Handle("PUT /api/admin/inquiries/{id}/status", auth(h.Inquiry.UpdateStatus))
	mux.Handle("DELETE /api/admin/inquiries/{id}", authPerm(models.PermDeleteAny, h.Inquiry.Delete))

	// Medya kütüphanesi
	mux.Handle("GET /api/admin/media", authPerm(models.PermManageGallery, h.Media.List))
	mux.Handle("POST /api/admin/media", authPerm(models.PermManageGallery, h.Media.Upload))
	mux.Handle("PUT /api/admin/media/{id}", authPerm(models.PermManageGallery, h.Media.UpdateMeta))
	mux.Handle("DELETE /api/admin/media/{id}", authPerm(models.PermManageGallery, h.Media.Delete))

	// Analytics — sadece admin
	mux.Handle("GET /api/admin/analytics/stats", authPerm(models.PermManageAnalytics, h.Analytics.Stats))

	// Marketing — sadece admin
	mux.Handle("GET /api/admin/marketing/scripts", authPerm(models.PermManageMarketing, h.Marketing.List))
	mux.Handle("PUT /api/admin/marketing/scripts", authPerm(models.PermManageMarketing, h.Marketing.Upsert))
	mux.Handle("DELETE /api/admin/marketing/scripts/{name}", authPerm(models.PermManageMarketing, h.Marketing.Delete))

	// İşlem geçmişi — sadece admin
	mux.Handle("GET /api/admin/activity", authPerm(models.PermViewActivityLog, h.Activity.List))

	// Ayarlar — sadece admin
	mux.Handle("GET /api/admin/settings", authPerm(models.PermManageSettings, h.Settings.Get))
	mux.Handle("PUT /api/admin/settings", authPerm(models.PermManageSettings, h.Settings.Update))

	// AI metin üretimi — tüm oturumlu kullanıcılar (içerik üreten herkes)
	mux.Handle("POST /api/admin/ai/caption", auth(h.Copywriter.GenerateCaption))
	mux.Handle("POST /api/admin/ai/ad-copy", auth(h.Copywriter.GenerateAdCopy))
	mux.Handle("POST /api/admin/ai/enhance", auth(h.Copywriter.EnhanceContent))
	mux.Handle("POST /api/admin/ai/seo", auth(h.Copywriter.GenerateSEO))
}
