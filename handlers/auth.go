// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler'ın görevi çok basit ve "ince" (thin) olmalı:
// 1. Request body'yi parse et (JSON → struct)
// 2. Service katmanını çağır
// 3. Sonucu HTTP response olarak döndür
//
// Handler ASLA iş mantığı (business logic) içermez.
// Handler ASLA doğrudan DB'ye erişmez.
// Tüm akıl service'de, handler sadece köprü.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/pkg/ratelimit"
	"github.com/dspstudio/backend/services"
)

// AuthHandler, auth endpoint'lerini yöneten struct.
// Service interface'i ve rate limiter constructor'dan alınır (DI).
type AuthHandler struct {
	authService  services.AuthService
	loginLimiter *ratelimit.Limiter
}

// NewAuthHandler, constructor.
// loginLimiter: Login brute-force koruması. nil ise rate limiting devre dışı kalır.
func NewAuthHandler(authService services.AuthService, loginLimiter *ratelimit.Limiter) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		loginLimiter: loginLimiter,
	}
}

// setSessionCookie, oturum cookie'sini yazar.
//
// HttpOnly: JavaScript cookie'yi okuyamaz — XSS ile token çalınamaz.
// SameSite=Lax: cross-site POST'larda cookie gitmez — CSRF'in büyük kısmı biter.
// Secure bayrağı reverse proxy'nin arkasında TLS terminasyonuna bırakılmıştır.
func setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie, cookie'yi geçersiz kılar (MaxAge=-1 → tarayıcı siler).
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Login godoc
// POST /api/auth/login
//
// Rate limiting: IP bazlı brute-force koruması.
// - Limit aşıldığında 429 Too Many Requests döner.
// - Başarılı login sayacı sıfırlar — meşru kullanıcı bloke olmaz.
//
// Token response body'ye yazılmaz; tek taşıyıcı Set-Cookie header'ıdır.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ExtractIP(r)
	if h.loginLimiter != nil && !h.loginLimiter.Allow(ip) {
		retryAfter := h.loginLimiter.RetryAfterSeconds(ip)
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
			fmt.Sprintf("too many login attempts, please try again in %s",
				ratelimit.FormatRetryMessage(retryAfter)))
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	// Başarılı login — sayacı sıfırla
	if h.loginLimiter != nil {
		h.loginLimiter.Reset(ip)
	}

	setSessionCookie(w, result.RawToken, result.MaxAge)
	pkg.JSON(w, http.StatusOK, result.User)
}

// Logout godoc
// POST /api/auth/logout
// Cookie'siz çağrılsa bile 200 döner — logout idempotenttir.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		token = cookie.Value
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		pkg.Error(w, err)
		return
	}

	clearSessionCookie(w)
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me godoc
// GET /api/auth/me
// Auth middleware'ından geçmiş isteğin kullanıcısını döner.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	pkg.JSON(w, http.StatusOK, user)
}

// RequestPasswordReset godoc
// POST /api/auth/password-reset/request
//
// Hesap olsun olmasın AYNI yanıt döner — email enumeration'a kapı açılmaz.
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{
		"message": "if the account exists, a reset email has been sent",
	})
}

// ConfirmPasswordReset godoc
// POST /api/auth/password-reset/confirm
// Body: { "token": "...", "new_password": "..." }
func (h *AuthHandler) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetConfirm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.ConfirmPasswordReset(r.Context(), &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

// EmergencyReset godoc
// POST /api/auth/emergency-reset
//
// Son çare: email altyapısı çökmüş ve admin şifresini kaybetmişse,
// deployment sırasında belirlenen reset key ile admin şifresi sıfırlanır.
// Key yapılandırılmamışsa endpoint 404 gibi davranır.
func (h *AuthHandler) EmergencyReset(w http.ResponseWriter, r *http.Request) {
	var req models.EmergencyResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.EmergencyReset(r.Context(), req.ResetKey, req.NewPassword); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "admin password reset"})
}
