// Package services, business logic katmanını barındırır.
//
// Service Layer Pattern nedir?
// Handler (HTTP) ile Repository (DB) arasında oturan katmandır.
// Tüm iş kuralları burada yaşar:
//   - Şifre hash'leme
//   - Oturum token'ı üretme ve doğrulama
//   - Yetki ve durum kontrolleri
//
// Service ASLA http.Request/Response bilmez — sadece domain modelleri alır/verir.
// Service ASLA doğrudan SQL çalıştırmaz — Repository interface'i kullanır.
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/pkg/email"
	"github.com/dspstudio/backend/pkg/token"
	"github.com/dspstudio/backend/repository"
)

// bcryptCost, şifre hash maliyeti. 12, modern donanımda ~250ms'dir —
// brute force'u anlamsızlaştırır ama login'i hissedilir yavaşlatmaz.
const bcryptCost = 12

// resetTokenTTL, şifre sıfırlama linkinin geçerlilik süresi.
const resetTokenTTL = time.Hour

// dummyHash, var olmayan email için de bcrypt karşılaştırması yapmak
// içindir. Bu olmadan "email yok" cevabı "şifre yanlış" cevabından
// ölçülebilir derecede hızlı döner ve email enumeration'a izin verir.
// ("correct horse battery staple" hash'i — asla eşleşmez.)
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// AuthService interface'i — dışarıya açık API.
// Handler bu interface'e bağımlıdır, concrete struct'a değil.
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	ResolveSession(ctx context.Context, rawToken string) (*models.User, error)
	RequestPasswordReset(ctx context.Context, emailAddr string) error
	ConfirmPasswordReset(ctx context.Context, req *models.PasswordResetConfirm) error
	EmergencyReset(ctx context.Context, resetKey, newPassword string) error
}

// LoginResult, başarılı login sonrası dönen veri.
//
// RawToken sadece Set-Cookie header'ına yazılır, response body'ye ASLA
// konmaz — token'ın tek yaşam alanı HttpOnly cookie'dir.
type LoginResult struct {
	User      *models.User
	RawToken  string
	ExpiresAt time.Time
	MaxAge    int // Cookie Max-Age (saniye)
}

// authService, AuthService interface'inin implementasyonu.
type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	resetRepo   repository.PasswordResetRepository
	activity    ActivityService
	sender      email.EmailSender

	defaultTTL  time.Duration
	rememberTTL time.Duration

	adminEmail        string
	emergencyResetKey string
}

// NewAuthService, constructor.
// sender nil olabilir — email yapılandırılmamışsa reset linki loglanır.
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	resetRepo repository.PasswordResetRepository,
	activity ActivityService,
	sender email.EmailSender,
	defaultTTLDays, rememberTTLDays int,
	adminEmail, emergencyResetKey string,
) AuthService {
	return &authService{
		userRepo:          userRepo,
		sessionRepo:       sessionRepo,
		resetRepo:         resetRepo,
		activity:          activity,
		sender:            sender,
		defaultTTL:        time.Duration(defaultTTLDays) * 24 * time.Hour,
		rememberTTL:       time.Duration(rememberTTLDays) * 24 * time.Hour,
		adminEmail:        adminEmail,
		emergencyResetKey: emergencyResetKey,
	}
}

// Login, email+şifre doğrular ve yeni bir oturum açar.
//
// Başarısızlık nedeni (email yok / şifre yanlış / hesap pasif) cevaba
// yansıtılmaz — hepsi aynı opak ErrUnauthorized döner. Ayrım yapmak
// saldırgana hangi email'lerin kayıtlı olduğunu söylemek olur.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if errors.Is(err, pkg.ErrNotFound) {
		// Timing eşitleme: kullanıcı yokken de bcrypt çalıştır
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Password))
		return nil, fmt.Errorf("%w: invalid credentials", pkg.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", pkg.ErrUnauthorized)
	}

	// Şifre doğru ama hesap pasif — yine aynı opak cevap
	if !user.IsActive() {
		return nil, fmt.Errorf("%w: invalid credentials", pkg.ErrUnauthorized)
	}

	ttl := s.defaultTTL
	if req.Remember {
		ttl = s.rememberTTL
	}

	rawToken, err := token.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &models.Session{
		UserID:    user.ID,
		TokenHash: token.Hash(rawToken),
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		log.Printf("[auth] failed to update last login for %s: %v", user.ID, err)
	}

	s.activity.Record(ctx, user.ID, "login", "auth", nil, nil)

	return &LoginResult{
		User:      user,
		RawToken:  rawToken,
		ExpiresAt: session.ExpiresAt,
		MaxAge:    int(ttl.Seconds()),
	}, nil
}

// Logout, oturumu sonlandırır. Idempotenttir: token geçersiz ya da
// zaten silinmiş olsa bile hata dönmez — ikinci logout da başarılıdır.
func (s *authService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	return s.sessionRepo.DeleteByTokenHash(ctx, token.Hash(rawToken))
}

// ResolveSession, cookie'deki raw token'dan kullanıcıyı çözer.
// Oturum yoksa/süresi dolmuşsa veya kullanıcı pasifse ErrUnauthorized.
// Pasif kullanıcının kalan oturumları da burada temizlenir.
func (s *authService) ResolveSession(ctx context.Context, rawToken string) (*models.User, error) {
	if rawToken == "" {
		return nil, fmt.Errorf("%w: not authenticated", pkg.ErrUnauthorized)
	}

	session, err := s.sessionRepo.GetByTokenHash(ctx, token.Hash(rawToken))
	if errors.Is(err, pkg.ErrNotFound) {
		return nil, fmt.Errorf("%w: not authenticated", pkg.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if errors.Is(err, pkg.ErrNotFound) {
		return nil, fmt.Errorf("%w: not authenticated", pkg.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}

	if !user.IsActive() {
		if delErr := s.sessionRepo.DeleteByUserID(ctx, user.ID); delErr != nil {
			log.Printf("[auth] failed to purge sessions for deactivated user %s: %v", user.ID, delErr)
		}
		return nil, fmt.Errorf("%w: not authenticated", pkg.ErrUnauthorized)
	}

	return user, nil
}

// RequestPasswordReset, sıfırlama linki üretir ve email gönderir.
//
// Her durumda nil döner: email kayıtlı değilse de "gönderildi" denir.
// Aksi halde endpoint bir email-var-mı sorgusuna dönüşür.
func (s *authService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if !errors.Is(err, pkg.ErrNotFound) {
			log.Printf("[auth] password reset lookup failed: %v", err)
		}
		return nil
	}
	if !user.IsActive() {
		return nil
	}

	rawToken, err := token.New()
	if err != nil {
		log.Printf("[auth] failed to generate reset token: %v", err)
		return nil
	}

	reset := &models.PasswordReset{
		UserID:    user.ID,
		TokenHash: token.Hash(rawToken),
		ExpiresAt: time.Now().UTC().Add(resetTokenTTL),
	}
	if err := s.resetRepo.Create(ctx, reset); err != nil {
		log.Printf("[auth] failed to store reset token: %v", err)
		return nil
	}

	if s.sender == nil {
		log.Printf("[auth] email sender not configured, reset token for %s not delivered", user.Email)
		return nil
	}

	// Email gönderimi response'u bekletmez — başarısızlık loglanır.
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.sender.SendPasswordReset(sendCtx, user.Email, rawToken); err != nil {
			log.Printf("[auth] failed to send reset email: %v", err)
		}
	}()

	return nil
}

// ConfirmPasswordReset, geçerli token ile yeni şifre belirler.
// Token tek kullanımlıktır; başarıda kullanıcının TÜM oturumları silinir.
func (s *authService) ConfirmPasswordReset(ctx context.Context, req *models.PasswordResetConfirm) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	reset, err := s.resetRepo.GetByTokenHash(ctx, token.Hash(req.Token))
	if errors.Is(err, pkg.ErrNotFound) {
		return fmt.Errorf("%w: invalid or expired token", pkg.ErrUnauthorized)
	}
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, reset.UserID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.resetRepo.MarkUsed(ctx, reset.ID); err != nil {
		return err
	}

	// Şifre değişti — eski oturumların hepsi geçersiz
	if err := s.sessionRepo.DeleteByUserID(ctx, user.ID); err != nil {
		log.Printf("[auth] failed to purge sessions after password reset: %v", err)
	}

	s.activity.Record(ctx, user.ID, "password_reset", "auth", nil, nil)

	return nil
}

// EmergencyReset, pre-shared key ile yapılandırılmış admin hesabının
// şifresini sıfırlar. Panele erişim tamamen kaybolduğunda son çaredir.
// Key yapılandırılmamışsa endpoint yok gibi davranır.
//
// Admin hesabı hiç yoksa OLUŞTURULUR — taze kurulumda ilk admin bu yolla
// açılır; seed verisi kullanıcı içermez.
func (s *authService) EmergencyReset(ctx context.Context, resetKey, newPassword string) error {
	if s.emergencyResetKey == "" || s.adminEmail == "" {
		return pkg.ErrNotFound
	}
	if resetKey != s.emergencyResetKey {
		return fmt.Errorf("%w: invalid reset key", pkg.ErrForbidden)
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", pkg.ErrBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, s.adminEmail)
	if errors.Is(err, pkg.ErrNotFound) {
		user = &models.User{
			Email:        s.adminEmail,
			Name:         "Admin",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
			Status:       models.UserStatusActive,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}

		s.activity.Record(ctx, user.ID, "emergency_reset", "auth", nil, nil)
		log.Printf("[auth] emergency reset created admin account %s", user.Email)
		return nil
	}
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.Status = models.UserStatusActive
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.sessionRepo.DeleteByUserID(ctx, user.ID); err != nil {
		log.Printf("[auth] failed to purge sessions after emergency reset: %v", err)
	}

	s.activity.Record(ctx, user.ID, "emergency_reset", "auth", nil, nil)
	log.Printf("[auth] emergency password reset performed for %s", user.Email)

	return nil
}
