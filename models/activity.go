package models

import (
	"encoding/json"
	"time"
)

// ActivityEntry, admin panelde yapılan bir işlemin günlük kaydıdır.
// Kayıtlar sadece eklenir, güncellenmez ve silinmez (append-only).
type ActivityEntry struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Action     string          `json:"action"`   // create, update, delete, login, logout ...
	Resource   string          `json:"resource"` // blog, portfolio, user, settings ...
	ResourceID *string         `json:"resource_id"`
	Details    json.RawMessage `json:"details,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
