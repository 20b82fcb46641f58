package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/pkg/token"
)

// --- in-memory fake'ler ---

type fakeUserRepo struct {
	users map[string]*models.User // id → user
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *models.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return pkg.ErrNotFound
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, id string) error { return nil }

type fakeSessionRepo struct {
	sessions map[string]*models.Session // tokenHash → session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*models.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *models.Session) error {
	if s.ID == "" {
		s.ID = fmt.Sprintf("sess-%d", len(r.sessions)+1)
	}
	r.sessions[s.TokenHash] = s
	return nil
}

// GetByTokenHash, SQL karşılığı gibi süresi dolmuş oturumları yok sayar.
func (r *fakeSessionRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	s, ok := r.sessions[tokenHash]
	if !ok || s.Expired() {
		return nil, pkg.ErrNotFound
	}
	return s, nil
}

func (r *fakeSessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	delete(r.sessions, tokenHash)
	return nil
}

func (r *fakeSessionRepo) DeleteByUserID(ctx context.Context, userID string) error {
	for hash, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, hash)
		}
	}
	return nil
}

func (r *fakeSessionRepo) DeleteExpired(ctx context.Context) error { return nil }

type fakeResetRepo struct {
	resets map[string]*models.PasswordReset // tokenHash → reset
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{resets: make(map[string]*models.PasswordReset)}
}

func (r *fakeResetRepo) Create(ctx context.Context, reset *models.PasswordReset) error {
	if reset.ID == "" {
		reset.ID = fmt.Sprintf("reset-%d", len(r.resets)+1)
	}
	r.resets[reset.TokenHash] = reset
	return nil
}

func (r *fakeResetRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordReset, error) {
	reset, ok := r.resets[tokenHash]
	if !ok || reset.Used || time.Now().UTC().After(reset.ExpiresAt) {
		return nil, pkg.ErrNotFound
	}
	return reset, nil
}

func (r *fakeResetRepo) MarkUsed(ctx context.Context, id string) error {
	for _, reset := range r.resets {
		if reset.ID == id {
			reset.Used = true
		}
	}
	return nil
}

func (r *fakeResetRepo) DeleteExpired(ctx context.Context) error { return nil }

type noopActivity struct{}

func (noopActivity) Record(ctx context.Context, userID, action, resource string, resourceID *string, details any) {
}

func (noopActivity) List(ctx context.Context, limit int) ([]*models.ActivityEntry, error) {
	return nil, nil
}

// --- fixtures ---

const testPassword = "correct-password"

func newTestUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           "user-1",
		Email:        "admin@studio.com",
		Name:         "Admin",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Status:       models.UserStatusActive,
	}
}

type authFixture struct {
	svc      AuthService
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	resets   *fakeResetRepo
}

func newAuthFixture(t *testing.T, users ...*models.User) *authFixture {
	t.Helper()
	userRepo := newFakeUserRepo(users...)
	sessionRepo := newFakeSessionRepo()
	resetRepo := newFakeResetRepo()
	svc := NewAuthService(userRepo, sessionRepo, resetRepo, noopActivity{}, nil,
		7, 30, "admin@studio.com", "emergency-key")
	return &authFixture{svc: svc, users: userRepo, sessions: sessionRepo, resets: resetRepo}
}

// --- tests ---

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture(t, newTestUser(t))

	result, err := f.svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@studio.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RawToken)
	assert.Equal(t, "user-1", result.User.ID)
	assert.Greater(t, result.MaxAge, 0)

	// Oturum DB'de hash olarak durur, raw token olarak değil
	_, ok := f.sessions.sessions[result.RawToken]
	assert.False(t, ok)
	_, ok = f.sessions.sessions[token.Hash(result.RawToken)]
	assert.True(t, ok)
}

func TestLogin_OpaqueFailures(t *testing.T) {
	f := newAuthFixture(t, newTestUser(t))

	_, errWrongPassword := f.svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@studio.com",
		Password: "wrong-password",
	})
	_, errUnknownEmail := f.svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@studio.com",
		Password: testPassword,
	})

	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownEmail)

	// Email enumeration engeli: iki hata mesajı birbirinden ayırt edilemez
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	assert.ErrorIs(t, errWrongPassword, pkg.ErrUnauthorized)
	assert.ErrorIs(t, errUnknownEmail, pkg.ErrUnauthorized)
}

func TestLogin_DeactivatedUserFails(t *testing.T) {
	user := newTestUser(t)
	user.Status = models.UserStatusDeactivated
	f := newAuthFixture(t, user)

	_, err := f.svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@studio.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestLogin_RememberExtendsSession(t *testing.T) {
	f := newAuthFixture(t, newTestUser(t))

	short, err := f.svc.Login(context.Background(), &models.LoginRequest{
		Email: "admin@studio.com", Password: testPassword,
	})
	require.NoError(t, err)

	long, err := f.svc.Login(context.Background(), &models.LoginRequest{
		Email: "admin@studio.com", Password: testPassword, Remember: true,
	})
	require.NoError(t, err)

	assert.True(t, long.ExpiresAt.After(short.ExpiresAt))
	assert.Greater(t, long.MaxAge, short.MaxAge)
}

func TestResolveSession(t *testing.T) {
	f := newAuthFixture(t, newTestUser(t))

	result, err := f.svc.Login(context.Background(), &models.LoginRequest{
		Email: "admin@studio.com", Password: testPassword,
	})
	require.NoError(t, err)

	user, err := f.svc.ResolveSession(context.Background(), result.RawToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	_, err = f.svc.ResolveSession(context.Background(), "bogus-token")
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	_, err = f.svc.ResolveSession(context.Background(), "")
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestResolveSession_ExpiredSessionFails(t *testing.T) {
	f := newAuthFixture(t, newTestUser(t))

	raw, err := token.New()
	require.NoError(t, err)
	require.NoError(t, f.sessions.Create(context.Background(), &models.Session{
		UserID:    "user-1",
		TokenHash: token.Hash(raw),
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}))

	_, err = f.svc.ResolveSession(context.Background(), raw)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestResolveSession_DeactivatedUserPurgesSessions(t *testing.T) {
	user := newTestUser(t)
	f := newAuthFixture(t, user)

	result, err := f.svc.Login(context.Background(), &models.LoginRequest{
		Email: "admin@studio.com", Password: testPassword,
	})
	require.NoError(t, err)

	// Login'den sonra hesap pasifleştirilir
	user.Status = models.UserStatusDeactivated
	require.NoError(t, f.users.Update(context.Background(), user))

	_, err = f.svc.ResolveSession(context.Background(), result.RawToken)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
	assert.Empty(t, f.sessions.sessions)
}

func TestLogout_Idempotent(t *testing.T) {
	f := newAuthFixture(t, newTestUser(t))

	result, err := f.svc.Login(context.Background(), &models.LoginRequest{
		Email: "admin@studio.com", Password: testPassword,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(context.Background(), result.RawToken))
	assert.Empty(t, f.sessions.sessions)

	// İkinci logout ve boş token da hata değildir
	assert.NoError(t, f.svc.Logout(context.Background(), result.RawToken))
	assert.NoError(t, f.svc.Logout(context.Background(), ""))
}

func TestRequestPasswordReset_UnknownEmailStillSucceeds(t *testing.T) {
	f := newAuthFixture(t, newTestUser(t))

	assert.NoError(t, f.svc.RequestPasswordReset(context.Background(), "nobody@studio.com"))
	assert.Empty(t, f.resets.resets)

	assert.NoError(t, f.svc.RequestPasswordReset(context.Background(), "admin@studio.com"))
	assert.Len(t, f.resets.resets, 1)
}

func TestConfirmPasswordReset(t *testing.T) {
	f := newAuthFixture(t, newTestUser(t))

	// Aktif oturum aç — reset sonrası silinmeli
	login, err := f.svc.Login(context.Background(), &models.LoginRequest{
		Email: "admin@studio.com", Password: testPassword,
	})
	require.NoError(t, err)

	raw, err := token.New()
	require.NoError(t, err)
	require.NoError(t, f.resets.Create(context.Background(), &models.PasswordReset{
		UserID:    "user-1",
		TokenHash: token.Hash(raw),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}))

	err = f.svc.ConfirmPasswordReset(context.Background(), &models.PasswordResetConfirm{
		Token:       raw,
		NewPassword: "brand-new-password",
	})
	require.NoError(t, err)

	// Yeni şifre geçerli, eski şifre ve eski oturumlar geçersiz
	_, err = f.svc.Login(context.Background(), &models.LoginRequest{
		Email: "admin@studio.com", Password: "brand-new-password",
	})
	assert.NoError(t, err)

	_, err = f.svc.ResolveSession(context.Background(), login.RawToken)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	// Token tek kullanımlık
	err = f.svc.ConfirmPasswordReset(context.Background(), &models.PasswordResetConfirm{
		Token:       raw,
		NewPassword: "another-password",
	})
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestConfirmPasswordReset_InvalidToken(t *testing.T) {
	f := newAuthFixture(t, newTestUser(t))

	err := f.svc.ConfirmPasswordReset(context.Background(), &models.PasswordResetConfirm{
		Token:       "bogus",
		NewPassword: "brand-new-password",
	})
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestEmergencyReset(t *testing.T) {
	f := newAuthFixture(t, newTestUser(t))

	// Yanlış key
	err := f.svc.EmergencyReset(context.Background(), "wrong-key", "brand-new-password")
	assert.ErrorIs(t, err, pkg.ErrForbidden)

	// Kısa şifre
	err = f.svc.EmergencyReset(context.Background(), "emergency-key", "short")
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	// Başarılı reset
	err = f.svc.EmergencyReset(context.Background(), "emergency-key", "brand-new-password")
	require.NoError(t, err)

	_, err = f.svc.Login(context.Background(), &models.LoginRequest{
		Email: "admin@studio.com", Password: "brand-new-password",
	})
	assert.NoError(t, err)
}

// Taze kurulumda hiç kullanıcı yoktur — ilk admin emergency reset ile açılır.
func TestEmergencyReset_CreatesAdminOnFreshInstall(t *testing.T) {
	f := newAuthFixture(t) // kullanıcı yok

	err := f.svc.EmergencyReset(context.Background(), "emergency-key", "brand-new-password")
	require.NoError(t, err)

	result, err := f.svc.Login(context.Background(), &models.LoginRequest{
		Email: "admin@studio.com", Password: "brand-new-password",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, result.User.Role)
	assert.Equal(t, models.UserStatusActive, result.User.Status)
}

func TestEmergencyReset_UnconfiguredActsAsMissing(t *testing.T) {
	userRepo := newFakeUserRepo(newTestUser(t))
	svc := NewAuthService(userRepo, newFakeSessionRepo(), newFakeResetRepo(),
		noopActivity{}, nil, 7, 30, "admin@studio.com", "")

	err := svc.EmergencyReset(context.Background(), "any-key", "brand-new-password")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}
