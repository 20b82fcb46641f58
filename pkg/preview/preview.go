// Package preview — yayınlanmamış taslaklar için imzalı önizleme token'ları.
//
// Editör, taslak bir blog yazısını veya sayfayı müşteriyle paylaşmak
// istediğinde kısa ömürlü bir HS256 JWT üretilir. Public preview endpoint'i
// token'ı doğrular ve SADECE token'ın işaret ettiği kaynağı servis eder.
// Oturum gerektirmez — link tek başına yeterlidir, süresi dolunca ölür.
//
// Token claims:
//   - sub: kaynak ID'si
//   - knd: kaynak türü ("blog" | "page")
//   - exp/iat: standart süre alanları
package preview

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind, önizlenebilir kaynak türleri.
const (
	KindBlog = "blog"
	KindPage = "page"
)

// TokenTTL, bir önizleme linkinin yaşam süresi.
const TokenTTL = 30 * time.Minute

// claims, preview token'ının JWT claim yapısı.
type claims struct {
	Kind string `json:"knd"`
	jwt.RegisteredClaims
}

// Signer, önizleme token'ı üretir ve doğrular.
type Signer struct {
	secret []byte
}

// NewSigner, HS256 imzalama secret'ı ile yeni bir Signer oluşturur.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Mint, verilen kaynak için imzalı bir önizleme token'ı üretir.
func (s *Signer) Mint(kind, resourceID string) (string, error) {
	if kind != KindBlog && kind != KindPage {
		return "", fmt.Errorf("unknown preview kind: %s", kind)
	}

	now := time.Now()
	c := &claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   resourceID,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "studio-cms",
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign preview token: %w", err)
	}
	return signed, nil
}

// Verify, token'ı doğrular ve beklenen kind+resourceID ile eşleştiğini
// kontrol eder. İmza, süre veya kaynak uyuşmazlığında error döner.
func (s *Signer) Verify(tokenString, kind, resourceID string) error {
	tok, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return fmt.Errorf("invalid preview token: %w", err)
	}

	c, ok := tok.Claims.(*claims)
	if !ok || !tok.Valid {
		return fmt.Errorf("invalid preview token claims")
	}
	if c.Kind != kind || c.Subject != resourceID {
		return fmt.Errorf("preview token does not match resource")
	}
	return nil
}
