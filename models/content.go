package models

import (
	"fmt"
	"strings"
	"time"
)

// SiteContent, site üzerindeki küçük metin parçalarını temsil eder.
// section/key çifti benzersizdir (ör: hero/title, contact/email).
type SiteContent struct {
	ID        string    `json:"id"`
	Section   string    `json:"section"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Type      string    `json:"type"` // text, html, image_url
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateContentRequest, yeni içerik parçası oluşturma isteği.
type CreateContentRequest struct {
	Section string `json:"section"`
	Key     string `json:"key"`
	Value   string `json:"value"`
	Type    string `json:"type"`
}

func (r *CreateContentRequest) Validate() error {
	r.Section = strings.TrimSpace(r.Section)
	r.Key = strings.TrimSpace(r.Key)
	if r.Section == "" || r.Key == "" {
		return fmt.Errorf("section and key are required")
	}
	if r.Type == "" {
		r.Type = "text"
	}
	return nil
}

// UpdateContentRequest, içerik parçası güncelleme isteği.
// nil alanlara dokunulmaz.
type UpdateContentRequest struct {
	Value *string `json:"value"`
	Type  *string `json:"type"`
}
