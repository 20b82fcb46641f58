package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// PasswordResetRepository, tek kullanımlık sıfırlama token'ları için interface.
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *models.PasswordReset) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordReset, error)
	MarkUsed(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) error
}
