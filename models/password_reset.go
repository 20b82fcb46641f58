package models

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// PasswordReset, tek kullanımlık şifre sıfırlama token'ını temsil eder.
// Session token'larıyla aynı kural geçerlidir: raw token saklanmaz,
// sadece hash'i. Used işaretlenen token tekrar kullanılamaz.
type PasswordReset struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PasswordResetRequest, sıfırlama linki isteği.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirm, linkteki token ile yeni şifre.
type PasswordResetConfirm struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// Validate, PasswordResetConfirm'in geçerli olup olmadığını kontrol eder.
func (r *PasswordResetConfirm) Validate() error {
	if r.Token == "" {
		return fmt.Errorf("token is required")
	}
	if utf8.RuneCountInString(r.NewPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

// EmergencyResetRequest, pre-shared key ile acil admin şifre sıfırlama.
type EmergencyResetRequest struct {
	ResetKey    string `json:"reset_key"`
	NewPassword string `json:"new_password"`
}
