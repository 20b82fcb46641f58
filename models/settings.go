package models

import "time"

// Settings, sistem ayarlarının tek satırlık kaydıdır (type = "system").
//
// AI anahtarları DB'de AES-GCM ile şifreli saklanır (Enc alanları) ve
// API response'larına asla yazılmaz — yerine HasGroqKey/HasGeminiKey
// bayrakları döner, panel "anahtar tanımlı" gösterir.
type Settings struct {
	ID                     string    `json:"id"`
	GroqAPIKeyEnc          string    `json:"-"`
	GeminiAPIKeyEnc        string    `json:"-"`
	HasGroqKey             bool      `json:"has_groq_key"`
	HasGeminiKey           bool      `json:"has_gemini_key"`
	FacebookPixelID        string    `json:"facebook_pixel_id"`
	GoogleAnalyticsID      string    `json:"google_analytics_id"`
	GoogleTagManagerID     string    `json:"google_tag_manager_id"`
	EnableFacebookPixel    bool      `json:"enable_facebook_pixel"`
	EnableGoogleAnalytics  bool      `json:"enable_google_analytics"`
	EnableGoogleTagManager bool      `json:"enable_google_tag_manager"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// UpdateSettingsRequest, ayar güncellemesi. AI anahtarları düz metin
// gelir, service katmanında şifrelenip saklanır. nil alanlara dokunulmaz.
type UpdateSettingsRequest struct {
	GroqAPIKey             *string `json:"groq_api_key"`
	GeminiAPIKey           *string `json:"gemini_api_key"`
	FacebookPixelID        *string `json:"facebook_pixel_id"`
	GoogleAnalyticsID      *string `json:"google_analytics_id"`
	GoogleTagManagerID     *string `json:"google_tag_manager_id"`
	EnableFacebookPixel    *bool   `json:"enable_facebook_pixel"`
	EnableGoogleAnalytics  *bool   `json:"enable_google_analytics"`
	EnableGoogleTagManager *bool   `json:"enable_google_tag_manager"`
}
