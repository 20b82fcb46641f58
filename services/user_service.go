package services

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/repository"
)

// UserService, panel kullanıcılarının yönetimini sağlar (sadece admin).
type UserService interface {
	List(ctx context.Context) ([]*models.User, error)
	Create(ctx context.Context, actorID string, req *models.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, actorID, userID string, req *models.UpdateUserRequest) (*models.User, error)
	Deactivate(ctx context.Context, actorID, userID string) error
}

// userService, UserService'in implementasyonu.
type userService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	activity    ActivityService
}

// NewUserService, constructor.
func NewUserService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	activity ActivityService,
) UserService {
	return &userService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		activity:    activity,
	}
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) Create(ctx context.Context, actorID string, req *models.CreateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         req.Role,
		Status:       models.UserStatusActive,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actorID, "create", "user", &user.ID, map[string]string{"email": user.Email})

	return user, nil
}

func (s *userService) Update(ctx context.Context, actorID, userID string, req *models.UpdateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Kendi rolünü/durumunu düşürmek kilitlenmeye yol açar — engelle
	if actorID == userID && (req.Role != nil || req.Status != nil) {
		return nil, fmt.Errorf("%w: cannot change own role or status", pkg.ErrBadRequest)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
		// Şifre değişti — mevcut oturumlar geçersiz
		if err := s.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
			log.Printf("[user] failed to purge sessions after password change: %v", err)
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	// Deaktive edilince açık oturumlar da gider
	if req.Status != nil && *req.Status == models.UserStatusDeactivated {
		if err := s.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
			log.Printf("[user] failed to purge sessions after deactivation: %v", err)
		}
	}

	s.activity.Record(ctx, actorID, "update", "user", &userID, nil)

	return user, nil
}

// Deactivate, kullanıcıyı pasife çeker ve oturumlarını sonlandırır.
// Fiziksel silme yoktur — activity_log kayıtları sahipsiz kalmasın.
// Kullanıcı kendini deaktive edemez (panelden kilitlenme koruması).
func (s *userService) Deactivate(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return fmt.Errorf("%w: cannot deactivate own account", pkg.ErrBadRequest)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Status = models.UserStatusDeactivated
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
		log.Printf("[user] failed to purge sessions after deactivation: %v", err)
	}

	s.activity.Record(ctx, actorID, "deactivate", "user", &userID, nil)

	return nil
}
