// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Middleware Pattern nedir?
// Her HTTP request, handler'a ulaşmadan önce bir veya daha fazla middleware'dan geçer.
// Middleware'lar zincir şeklinde çalışır: Auth → Permission → Handler
//
// Go'da middleware bir fonksiyondur:
//   func(next http.Handler) http.Handler
//
// "next" parametresi zincirdeki bir sonraki handler'dır.
// Middleware kendi işini yapar (ör: oturum doğrula), sonra next'i çağırır.
// Eğer hata varsa next'i çağırmaz → request burada durur.
package middleware

import (
	"context"
	"net/http"

	"github.com/dspstudio/backend/handlers"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/services"
)

// AuthMiddleware, cookie tabanlı oturum doğrulama middleware'ı.
type AuthMiddleware struct {
	authService services.AuthService
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Require, geçerli admin oturumu zorunlu kılan middleware.
// Cookie yoksa veya oturum geçersizse → 401 Unauthorized.
//
// Akış:
// 1. "admin_session" cookie'sini oku
// 2. AuthService.ResolveSession ile doğrula (hash'le, DB'de ara, süre kontrolü)
// 3. Geçerliyse → kullanıcıyı context'e ekle → next handler'ı çağır
// 4. Geçersizse → 401 döndür, next ÇAĞIRILMAZ
//
// Hata mesajı kasıtlı olarak tektir: cookie yok, süre dolmuş, hesap
// deaktive — dışarıya hepsi "not authenticated" görünür.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(handlers.SessionCookieName)
		if err != nil || cookie.Value == "" {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		user, err := m.authService.ResolveSession(r.Context(), cookie.Value)
		if err != nil {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		// Password hash'i temizle — context'te taşınmamalı
		user.PasswordHash = ""

		ctx := context.WithValue(r.Context(), handlers.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
