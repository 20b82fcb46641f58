package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/pkg/ratelimit"
	"github.com/dspstudio/backend/services"
)

// fakeAuthService, handler testleri için kontrollü bir AuthService.
type fakeAuthService struct {
	loginResult  *services.LoginResult
	loginErr     error
	logoutTokens []string
}

func (f *fakeAuthService) Login(ctx context.Context, req *models.LoginRequest) (*services.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, rawToken string) error {
	f.logoutTokens = append(f.logoutTokens, rawToken)
	return nil
}

func (f *fakeAuthService) ResolveSession(ctx context.Context, rawToken string) (*models.User, error) {
	return nil, fmt.Errorf("%w: not authenticated", pkg.ErrUnauthorized)
}

func (f *fakeAuthService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	return nil
}

func (f *fakeAuthService) ConfirmPasswordReset(ctx context.Context, req *models.PasswordResetConfirm) error {
	return nil
}

func (f *fakeAuthService) EmergencyReset(ctx context.Context, resetKey, newPassword string) error {
	return nil
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func TestLogin_SetsCookieAndOmitsToken(t *testing.T) {
	svc := &fakeAuthService{
		loginResult: &services.LoginResult{
			User:      &models.User{ID: "user-1", Email: "admin@studio.com", Role: models.RoleAdmin},
			RawToken:  "raw-session-token",
			ExpiresAt: time.Now().UTC().Add(7 * 24 * time.Hour),
			MaxAge:    604800,
		},
	}
	h := NewAuthHandler(svc, nil)

	req := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"admin@studio.com","password":"pw"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	c := sessionCookie(t, rec)
	require.NotNil(t, c)
	assert.Equal(t, "raw-session-token", c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 604800, c.MaxAge)

	// Token sadece cookie'de yaşar — body'de asla
	assert.NotContains(t, rec.Body.String(), "raw-session-token")

	var resp pkg.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{
		loginErr: fmt.Errorf("%w: invalid credentials", pkg.ErrUnauthorized),
	}
	h := NewAuthHandler(svc, nil)

	req := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"admin@studio.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, sessionCookie(t, rec))
}

func TestLogin_MalformedBody(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{}, nil)

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_RateLimited(t *testing.T) {
	limiter := ratelimit.NewLimiter(1, time.Minute)
	defer limiter.Close()

	svc := &fakeAuthService{
		loginErr: fmt.Errorf("%w: invalid credentials", pkg.ErrUnauthorized),
	}
	h := NewAuthHandler(svc, limiter)

	body := `{"email":"admin@studio.com","password":"wrong"}`

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	req.RemoteAddr = "9.9.9.9:1234"
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Limit doldu: ikinci deneme 429 + Retry-After
	req = httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	req.RemoteAddr = "9.9.9.9:1234"
	rec = httptest.NewRecorder()
	h.Login(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestLogin_SuccessResetsRateLimit(t *testing.T) {
	limiter := ratelimit.NewLimiter(1, time.Minute)
	defer limiter.Close()

	svc := &fakeAuthService{
		loginResult: &services.LoginResult{
			User:     &models.User{ID: "user-1"},
			RawToken: "raw-session-token",
			MaxAge:   3600,
		},
	}
	h := NewAuthHandler(svc, limiter)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/api/auth/login",
			strings.NewReader(`{"email":"admin@studio.com","password":"pw"}`))
		req.RemoteAddr = "9.9.9.9:1234"
		rec := httptest.NewRecorder()
		h.Login(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	svc := &fakeAuthService{}
	h := NewAuthHandler(svc, nil)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "raw-session-token"})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"raw-session-token"}, svc.logoutTokens)

	c := sessionCookie(t, rec)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}

func TestLogout_WithoutCookieStillSucceeds(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{}, nil)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMe(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{}, nil)

	// Context'te kullanıcı yok → 401
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	h.Me(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Middleware'in koyduğu kullanıcı ile → 200
	user := &models.User{ID: "user-1", Email: "admin@studio.com"}
	ctx := context.WithValue(req.Context(), UserContextKey, user)
	req = req.WithContext(ctx)
	rec = httptest.NewRecorder()
	h.Me(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@studio.com")
}

func TestRequestPasswordReset_UniformResponse(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{}, nil)

	req := httptest.NewRequest("POST", "/api/auth/password-reset/request",
		strings.NewReader(`{"email":"whoever@studio.com"}`))
	rec := httptest.NewRecorder()
	h.RequestPasswordReset(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "if the account exists")
}
