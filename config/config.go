// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Her alt bölüm ayrı bir struct — her struct tek bir concern'ü temsil eder.
// Handler/service katmanlarında ayrı ayrı os.Getenv() çağrısı YOKTUR;
// tüm ayarlar process başında bir kez okunur ve Config nesnesi taşınır.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Upload   UploadConfig
	Email    EmailConfig
	AI       AIConfig
	Admin    AdminConfig
	Security SecurityConfig
	CORS     CORSConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/studio.db)
}

// SessionConfig, admin oturum süreleri.
//
// İki pencere vardır: varsayılan (kısa) ve "remember me" (uzun).
// Oturumlar kullanım sayısıyla değil, saat ile expire olur.
type SessionConfig struct {
	DefaultTTLDays  int // Varsayılan oturum süresi (gün)
	RememberTTLDays int // "Beni hatırla" oturum süresi (gün)
}

// UploadConfig, medya yükleme ayarları.
type UploadConfig struct {
	Dir     string // Dosyaların kaydedileceği dizin
	MaxSize int64  // Byte cinsinden max dosya boyutu
}

// EmailConfig, Resend email ayarları. Boş bırakılırsa email gönderimi
// devre dışı kalır — uygulama çalışmaya devam eder.
type EmailConfig struct {
	ResendAPIKey string
	FromEmail    string // Doğrulanmış domain altında gönderici adresi
	AppURL       string // Admin panelin public URL'i (reset linkleri için)
}

// AIConfig, text-generation sağlayıcı ayarları.
// Key'ler burada sadece başlangıç değeridir — admin panelden güncellenebilir
// ve güncel değerler DB'de şifreli saklanır.
type AIConfig struct {
	GroqAPIKey     string
	GeminiAPIKey   string
	TimeoutSeconds int // Sağlayıcı başına deneme süresi sınırı
}

// AdminConfig, yönetici hesabı ve acil durum ayarları.
type AdminConfig struct {
	Email             string // Emergency reset'in hedeflediği admin hesabı
	EmergencyResetKey string // Boşsa emergency reset endpoint'i devre dışıdır
}

// SecurityConfig, imzalama ve şifreleme anahtarları.
type SecurityConfig struct {
	PreviewSecret string // Önizleme token'ları için HS256 secret — ZORUNLU
	EncryptionKey string // 64 hex karakter AES-256 anahtarı — ZORUNLU
}

// CORSConfig, izin verilen origin listesi.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler — dosya yoksa sessizce devam eder,
// production'da gerçek env variable'lar kullanılır.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	defaultTTL, err := strconv.Atoi(getEnv("SESSION_TTL_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_DAYS: %w", err)
	}

	rememberTTL, err := strconv.Atoi(getEnv("SESSION_REMEMBER_TTL_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_REMEMBER_TTL_DAYS: %w", err)
	}

	maxSize, err := strconv.ParseInt(getEnv("UPLOAD_MAX_SIZE", "16777216"), 10, 64) // 16MB
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_SIZE: %w", err)
	}

	aiTimeout, err := strconv.Atoi(getEnv("AI_TIMEOUT_SECONDS", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_TIMEOUT_SECONDS: %w", err)
	}

	previewSecret := getEnv("PREVIEW_SECRET", "")
	if previewSecret == "" {
		return nil, fmt.Errorf("PREVIEW_SECRET environment variable is required")
	}

	encryptionKey := getEnv("ENCRYPTION_KEY", "")
	if encryptionKey == "" {
		return nil, fmt.Errorf("ENCRYPTION_KEY environment variable is required")
	}

	origins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/studio.db"),
		},
		Session: SessionConfig{
			DefaultTTLDays:  defaultTTL,
			RememberTTLDays: rememberTTL,
		},
		Upload: UploadConfig{
			Dir:     getEnv("UPLOAD_DIR", "./data/uploads"),
			MaxSize: maxSize,
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromEmail:    getEnv("RESEND_FROM", ""),
			AppURL:       getEnv("APP_URL", ""),
		},
		AI: AIConfig{
			GroqAPIKey:     getEnv("GROQ_API_KEY", ""),
			GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
			TimeoutSeconds: aiTimeout,
		},
		Admin: AdminConfig{
			Email:             getEnv("ADMIN_EMAIL", ""),
			EmergencyResetKey: getEnv("EMERGENCY_RESET_KEY", ""),
		},
		Security: SecurityConfig{
			PreviewSecret: previewSecret,
			EncryptionKey: encryptionKey,
		},
		CORS: CORSConfig{
			AllowedOrigins: origins,
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:8080").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
