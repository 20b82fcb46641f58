package services

import (
	"context"
	"fmt"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg/crypto"
	"github.com/dspstudio/backend/repository"
)

// SettingsService, tek satırlık sistem ayarlarını yönetir.
//
// AI anahtarları DB'ye AES-GCM ile şifreli yazılır ve asla JSON'a
// dönmez — API yalnızca HasGroqKey/HasGeminiKey bayraklarını görür.
// Anahtar değişince copywriter'ın sağlayıcı zinciri canlı güncellenir,
// restart gerekmez.
type SettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, actorID string, req *models.UpdateSettingsRequest) (*models.Settings, error)
}

// settingsService, SettingsService'in implementasyonu.
type settingsService struct {
	settingsRepo  repository.SettingsRepository
	encryptionKey []byte
	copywriter    CopywriterService
	activity      ActivityService
}

// NewSettingsService, constructor.
func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	encryptionKey []byte,
	copywriter CopywriterService,
	activity ActivityService,
) SettingsService {
	return &settingsService{
		settingsRepo:  settingsRepo,
		encryptionKey: encryptionKey,
		copywriter:    copywriter,
		activity:      activity,
	}
}

func (s *settingsService) Get(ctx context.Context) (*models.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

// Update, nil olmayan alanları uygular. AI anahtarı boş string gelirse
// anahtar silinir; dolu gelirse şifrelenip saklanır.
func (s *settingsService) Update(ctx context.Context, actorID string, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	keysChanged := false
	if req.GroqAPIKey != nil {
		enc, err := encryptKey(*req.GroqAPIKey, s.encryptionKey)
		if err != nil {
			return nil, err
		}
		settings.GroqAPIKeyEnc = enc
		settings.HasGroqKey = enc != ""
		keysChanged = true
	}
	if req.GeminiAPIKey != nil {
		enc, err := encryptKey(*req.GeminiAPIKey, s.encryptionKey)
		if err != nil {
			return nil, err
		}
		settings.GeminiAPIKeyEnc = enc
		settings.HasGeminiKey = enc != ""
		keysChanged = true
	}

	if req.FacebookPixelID != nil {
		settings.FacebookPixelID = *req.FacebookPixelID
	}
	if req.GoogleAnalyticsID != nil {
		settings.GoogleAnalyticsID = *req.GoogleAnalyticsID
	}
	if req.GoogleTagManagerID != nil {
		settings.GoogleTagManagerID = *req.GoogleTagManagerID
	}
	if req.EnableFacebookPixel != nil {
		settings.EnableFacebookPixel = *req.EnableFacebookPixel
	}
	if req.EnableGoogleAnalytics != nil {
		settings.EnableGoogleAnalytics = *req.EnableGoogleAnalytics
	}
	if req.EnableGoogleTagManager != nil {
		settings.EnableGoogleTagManager = *req.EnableGoogleTagManager
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	if keysChanged && s.copywriter != nil {
		groq, gemini, err := s.decryptKeys(settings)
		if err != nil {
			return nil, err
		}
		s.copywriter.UpdateKeys(groq, gemini)
	}

	s.activity.Record(ctx, actorID, "update", "settings", &settings.ID, nil)
	return settings, nil
}

// LoadAIKeys, başlangıçta DB'deki şifreli anahtarları çözüp döner —
// main, copywriter'ı bu anahtarlarla kurar.
func LoadAIKeys(ctx context.Context, settingsRepo repository.SettingsRepository, encryptionKey []byte) (groq, gemini string, err error) {
	settings, err := settingsRepo.Get(ctx)
	if err != nil {
		return "", "", err
	}
	s := &settingsService{encryptionKey: encryptionKey}
	return s.decryptKeys(settings)
}

func (s *settingsService) decryptKeys(settings *models.Settings) (groq, gemini string, err error) {
	if settings.GroqAPIKeyEnc != "" {
		groq, err = crypto.Decrypt(settings.GroqAPIKeyEnc, s.encryptionKey)
		if err != nil {
			return "", "", fmt.Errorf("failed to decrypt groq key: %w", err)
		}
	}
	if settings.GeminiAPIKeyEnc != "" {
		gemini, err = crypto.Decrypt(settings.GeminiAPIKeyEnc, s.encryptionKey)
		if err != nil {
			return "", "", fmt.Errorf("failed to decrypt gemini key: %w", err)
		}
	}
	return groq, gemini, nil
}

// encryptKey, boş anahtarı boş bırakır, dolusunu şifreler.
func encryptKey(plain string, key []byte) (string, error) {
	if plain == "" {
		return "", nil
	}
	enc, err := crypto.Encrypt(plain, key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt api key: %w", err)
	}
	return enc, nil
}
