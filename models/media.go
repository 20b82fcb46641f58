package models

import "time"

// Media, yüklenmiş bir dosyayı temsil eder.
// Filename kullanıcının verdiği orijinal addır; StoredName diskteki
// UUID'li addır — path traversal'a karşı asla kullanıcı adı diske yazılmaz.
type Media struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	StoredName string    `json:"-"`
	URL        string    `json:"url"`
	Type       string    `json:"type"` // image, video, document
	Size       int64     `json:"size"`
	Alt        *string   `json:"alt"`
	Caption    *string   `json:"caption"`
	CreatedAt  time.Time `json:"created_at"`
}

// UpdateMediaRequest, medya metadata güncellemesi (alt/caption).
type UpdateMediaRequest struct {
	Alt     *string `json:"alt"`
	Caption *string `json:"caption"`
}
