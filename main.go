// Package main, stüdyo CMS backend'inin giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. Database'i başlat (embedded migration'lar ile)
//  3. Repository'leri oluştur (DB bağlantısı ile)
//  4. WebSocket Hub'ı başlat
//  5. Service'leri oluştur (repository'ler + hub ile)
//  6. Handler'ları oluştur (service'ler ile)
//  7. HTTP router'ı kur, route'ları bağla
//  8. CORS yapılandır
//  9. HTTP Server'ı başlat
// 10. Arka plan temizlik görevleri (süresi dolmuş oturum/reset kayıtları)
// 11. Graceful shutdown
//
// Global değişken YOK — her şey bu fonksiyonda oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/dspstudio/backend/config"
	"github.com/dspstudio/backend/database"
	"github.com/dspstudio/backend/pkg/crypto"
	"github.com/dspstudio/backend/pkg/email"
	"github.com/dspstudio/backend/ws"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] studio-cms server starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d)", cfg.Server.Port)

	// ─── 2. Database ───
	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	if err != nil {
		log.Fatalf("[main] failed to open embedded migrations: %v", err)
	}

	db, err := database.New(cfg.Database.Path, migrationsFS)
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. Şifreleme anahtarı ───
	// Settings'teki AI anahtarları bu key ile AES-GCM şifrelenir.
	encryptionKey, err := crypto.DeriveKey(cfg.Security.EncryptionKey)
	if err != nil {
		log.Fatalf("[main] invalid encryption key: %v", err)
	}

	// ─── 4. Email (opsiyonel) ───
	// API key yoksa sender nil kalır — reset ve bildirim mailleri atlanır.
	var sender email.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromEmail, cfg.Admin.Email, cfg.Email.AppURL)
		log.Println("[main] email sender configured")
	} else {
		log.Println("[main] email not configured, notifications disabled")
	}

	// ─── 5. Repository Layer ───
	repos := initRepositories(db.Conn)

	// ─── 6. WebSocket Hub ───
	//
	// Hub, admin panel bağlantılarını yöneten merkezi yapıdır.
	// `go hub.Run()` ayrı bir goroutine'de event loop başlatır.
	// Hub aynı zamanda EventPublisher interface'ini implement eder —
	// service'ler hub'a doğrudan bağımlı olmak yerine interface üzerinden erişir.
	hub := ws.NewHub()
	go hub.Run()

	// ─── 7. Service Layer ───
	svcs, limiters, err := initServices(repos, hub, cfg, encryptionKey, sender)
	if err != nil {
		log.Fatalf("[main] failed to initialize services: %v", err)
	}
	defer svcs.Analytics.Close()
	defer limiters.Login.Close()
	defer limiters.Inquiry.Close()
	defer limiters.Track.Close()

	// ─── 8. Handler Layer + Router ───
	hdlrs := initHandlers(svcs, limiters, hub, cfg)

	mux := http.NewServeMux()
	initRoutes(mux, hdlrs, svcs.Auth)

	// ─── 9. Arka plan temizliği ───
	// Süresi dolmuş oturumlar ve reset token'ları saatte bir silinir.
	// Süre kontrolü zaten sorgularda var — bu sadece tablo şişmesini önler.
	cleanupDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				if err := repos.Session.DeleteExpired(ctx); err != nil {
					log.Printf("[cleanup] failed to delete expired sessions: %v", err)
				}
				if err := repos.PasswordReset.DeleteExpired(ctx); err != nil {
					log.Printf("[cleanup] failed to delete expired reset tokens: %v", err)
				}
				cancel()
			case <-cleanupDone:
				return
			}
		}
	}()

	// ─── 10. CORS ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true, // Cookie'ler cross-origin gidecek
	})

	handler := corsHandler.Handler(mux)

	// ─── 11. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 12. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutting down...")
	close(cleanupDone)

	// Önce WebSocket bağlantılarını kapat — panel'ler kopuşu bilir.
	// Sonra HTTP server'ı kapat — yeni request kabul etmeyi durdurur,
	// mevcut request'lerin bitmesini bekler (5sn timeout).
	hub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[main] forced shutdown: %v", err)
	}

	log.Println("[main] server stopped gracefully")
}
