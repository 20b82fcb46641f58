// Package main — Repository katmanı başlatma.
//
// initRepositories, tüm repository implementasyonlarını oluşturur.
// Her repository aynı DB bağlantısını alır ve interface döner.
// main.go'daki wire-up'ı modülerleştirmek için bu dosyaya taşındı.
package main

import (
	"github.com/dspstudio/backend/database"
	"github.com/dspstudio/backend/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
//
// Neden struct? 18 ayrı repository değişkeni yerine tek struct kullanmak:
// 1. Fonksiyon imzalarını temiz tutar
// 2. Yeni repository eklendiğinde sadece struct + initRepositories güncellenir
// 3. IDE auto-complete ile kolay erişim (repos.User, repos.Blog, vb.)
type Repositories struct {
	User          repository.UserRepository
	Session       repository.SessionRepository
	PasswordReset repository.PasswordResetRepository
	Content       repository.ContentRepository
	Service       repository.ServiceRepository
	Portfolio     repository.PortfolioRepository
	Package       repository.PackageRepository
	Testimonial   repository.TestimonialRepository
	Inquiry       repository.InquiryRepository
	Blog          repository.BlogRepository
	Video         repository.VideoRepository
	Offer         repository.OfferRepository
	Page          repository.PageRepository
	Media         repository.MediaRepository
	Analytics     repository.AnalyticsRepository
	Marketing     repository.MarketingRepository
	Activity      repository.ActivityRepository
	Settings      repository.SettingsRepository
}

// initRepositories, veritabanı bağlantısından tüm repository'leri oluşturur.
//
// Her NewSQLite* fonksiyonu aynı bağlantıyı alır — Go'nun sql.DB'si
// thread-safe connection pool'dur, paylaşılması güvenlidir.
func initRepositories(db database.TxQuerier) *Repositories {
	return &Repositories{
		User:          repository.NewSQLiteUserRepo(db),
		Session:       repository.NewSQLiteSessionRepo(db),
		PasswordReset: repository.NewSQLitePasswordResetRepo(db),
		Content:       repository.NewSQLiteContentRepo(db),
		Service:       repository.NewSQLiteServiceRepo(db),
		Portfolio:     repository.NewSQLitePortfolioRepo(db),
		Package:       repository.NewSQLitePackageRepo(db),
		Testimonial:   repository.NewSQLiteTestimonialRepo(db),
		Inquiry:       repository.NewSQLiteInquiryRepo(db),
		Blog:          repository.NewSQLiteBlogRepo(db),
		Video:         repository.NewSQLiteVideoRepo(db),
		Offer:         repository.NewSQLiteOfferRepo(db),
		Page:          repository.NewSQLitePageRepo(db),
		Media:         repository.NewSQLiteMediaRepo(db),
		Analytics:     repository.NewSQLiteAnalyticsRepo(db),
		Marketing:     repository.NewSQLiteMarketingRepo(db),
		Activity:      repository.NewSQLiteActivityRepo(db),
		Settings:      repository.NewSQLiteSettingsRepo(db),
	}
}
