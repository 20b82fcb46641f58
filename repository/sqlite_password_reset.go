package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dspstudio/backend/database"
	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
)

// sqlitePasswordResetRepo, PasswordResetRepository'nin SQLite implementasyonu.
type sqlitePasswordResetRepo struct {
	db database.TxQuerier
}

// NewSQLitePasswordResetRepo, constructor.
func NewSQLitePasswordResetRepo(db database.TxQuerier) PasswordResetRepository {
	return &sqlitePasswordResetRepo{db: db}
}

func (r *sqlitePasswordResetRepo) Create(ctx context.Context, reset *models.PasswordReset) error {
	reset.ID = uuid.NewString()
	reset.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO password_resets (id, user_id, token_hash, used, created_at, expires_at)
		VALUES (?, ?, ?, 0, ?, ?)`,
		reset.ID, reset.UserID, reset.TokenHash, reset.CreatedAt, reset.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create password reset: %w", err)
	}

	return nil
}

// GetByTokenHash, kullanılmamış ve süresi dolmamış token'ı döner.
func (r *sqlitePasswordResetRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordReset, error) {
	reset := &models.PasswordReset{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, token_hash, used, created_at, expires_at
		FROM password_resets
		WHERE token_hash = ? AND used = 0 AND expires_at > CURRENT_TIMESTAMP`,
		tokenHash,
	).Scan(
		&reset.ID, &reset.UserID, &reset.TokenHash,
		&reset.Used, &reset.CreatedAt, &reset.ExpiresAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get password reset: %w", err)
	}

	return reset, nil
}

func (r *sqlitePasswordResetRepo) MarkUsed(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE password_resets SET used = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark password reset used: %w", err)
	}
	return nil
}

func (r *sqlitePasswordResetRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM password_resets WHERE expires_at < CURRENT_TIMESTAMP`)
	if err != nil {
		return fmt.Errorf("failed to delete expired password resets: %w", err)
	}
	return nil
}
