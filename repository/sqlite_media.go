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

// sqliteMediaRepo, MediaRepository'nin SQLite implementasyonu.
type sqliteMediaRepo struct {
	db database.TxQuerier
}

// NewSQLiteMediaRepo, constructor.
func NewSQLiteMediaRepo(db database.TxQuerier) MediaRepository {
	return &sqliteMediaRepo{db: db}
}

const mediaColumns = `id, filename, stored_name, url, type, size, alt, caption, created_at`

func (r *sqliteMediaRepo) Create(ctx context.Context, media *models.Media) error {
	media.ID = uuid.NewString()
	media.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO media (`+mediaColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		media.ID, media.Filename, media.StoredName, media.URL,
		media.Type, media.Size, media.Alt, media.Caption, media.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create media record: %w", err)
	}

	return nil
}

func (r *sqliteMediaRepo) GetByID(ctx context.Context, id string) (*models.Media, error) {
	media := &models.Media{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+mediaColumns+` FROM media WHERE id = ?`, id,
	).Scan(&media.ID, &media.Filename, &media.StoredName, &media.URL,
		&media.Type, &media.Size, &media.Alt, &media.Caption, &media.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get media record: %w", err)
	}

	return media, nil
}

func (r *sqliteMediaRepo) List(ctx context.Context) ([]*models.Media, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+mediaColumns+` FROM media ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	defer rows.Close()

	var items []*models.Media
	for rows.Next() {
		media := &models.Media{}
		if err := rows.Scan(&media.ID, &media.Filename, &media.StoredName, &media.URL,
			&media.Type, &media.Size, &media.Alt, &media.Caption, &media.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan media record: %w", err)
		}
		items = append(items, media)
	}

	return items, rows.Err()
}

func (r *sqliteMediaRepo) Update(ctx context.Context, media *models.Media) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE media SET alt = ?, caption = ? WHERE id = ?`,
		media.Alt, media.Caption, media.ID)
	if err != nil {
		return fmt.Errorf("failed to update media record: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteMediaRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM media WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete media record: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}
