package models

import "time"

// Session, bir admin oturumunu temsil eder.
//
// Raw token DB'de ASLA saklanmaz — sadece SHA-256 hash'i (TokenHash).
// DB sızsa bile saldırgan token'ları kullanamaz, çünkü hash'ten
// raw token'a dönüş yoktur. Raw token sadece cookie'de yaşar.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired, oturumun süresinin dolup dolmadığını kontrol eder.
func (s *Session) Expired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}
