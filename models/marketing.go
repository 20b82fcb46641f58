package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// MarketingScript, üçüncü parti bir takip script'inin kaydıdır
// (facebook_pixel, ga4, gtm ...). Name benzersizdir; ScriptID,
// sağlayıcının verdiği kimliktir (pixel ID, GA measurement ID vb.).
type MarketingScript struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	ScriptID  string          `json:"script_id"`
	IsActive  bool            `json:"is_active"`
	Config    json.RawMessage `json:"config,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// UpsertMarketingScriptRequest, script kaydı oluşturma/güncelleme.
// Name üzerinden upsert edilir — aynı isim tekrar gönderilirse günceller.
type UpsertMarketingScriptRequest struct {
	Name     string          `json:"name"`
	ScriptID string          `json:"script_id"`
	IsActive bool            `json:"is_active"`
	Config   json.RawMessage `json:"config,omitempty"`
}

func (r *UpsertMarketingScriptRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
