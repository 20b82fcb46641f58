package repository

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// SessionRepository, opak cookie oturumları için interface.
// Tüm lookup'lar token'ın SHA-256 hash'i üzerinden yapılır —
// raw token bu katmana hiç inmez.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) error
}
