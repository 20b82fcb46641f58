// Package token — opak oturum token'ı üretimi ve digest'i.
//
// Oturum modeli: login'de rastgele bir token üretilir ve kullanıcıya
// cookie olarak verilir. Veritabanına token'ın KENDİSİ değil, SHA-256
// digest'i yazılır. Böylece DB sızıntısında saldırganın elinde sadece
// geri döndürülemez hash'ler olur — hiçbir session replay edilemez.
//
// Aynı digest fonksiyonu hem oturum oluştururken hem her request'te
// lookup yaparken kullanılır: deterministik olduğu için raw token'dan
// her zaman aynı DB anahtarı elde edilir.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// tokenBytes: 32 byte = 256 bit entropi. Brute-force ile tahmin edilemez.
const tokenBytes = 32

// New, yeni bir opak oturum token'ı üretir (base64url, padding'siz).
// crypto/rand kullanılır — math/rand ASLA değil, tahmin edilebilir olur.
func New() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Hash, raw token'ın SHA-256 digest'ini hex string olarak döner.
// DB'de saklanan ve lookup'ta kullanılan tek değer budur.
func Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
