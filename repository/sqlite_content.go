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

// sqliteContentRepo, ContentRepository'nin SQLite implementasyonu.
type sqliteContentRepo struct {
	db database.TxQuerier
}

// NewSQLiteContentRepo, constructor.
func NewSQLiteContentRepo(db database.TxQuerier) ContentRepository {
	return &sqliteContentRepo{db: db}
}

func (r *sqliteContentRepo) Create(ctx context.Context, content *models.SiteContent) error {
	content.ID = uuid.NewString()
	content.UpdatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO site_content (id, section, key, value, type, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		content.ID, content.Section, content.Key, content.Value,
		content.Type, content.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return fmt.Errorf("%w: content for this section/key already exists", pkg.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to create content: %w", err)
	}

	return nil
}

func (r *sqliteContentRepo) GetByID(ctx context.Context, id string) (*models.SiteContent, error) {
	content := &models.SiteContent{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, section, key, value, type, updated_at
		FROM site_content WHERE id = ?`, id,
	).Scan(&content.ID, &content.Section, &content.Key,
		&content.Value, &content.Type, &content.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get content: %w", err)
	}

	return content, nil
}

func (r *sqliteContentRepo) List(ctx context.Context) ([]*models.SiteContent, error) {
	return r.queryContent(ctx, `
		SELECT id, section, key, value, type, updated_at
		FROM site_content ORDER BY section, key`)
}

func (r *sqliteContentRepo) ListBySection(ctx context.Context, section string) ([]*models.SiteContent, error) {
	return r.queryContent(ctx, `
		SELECT id, section, key, value, type, updated_at
		FROM site_content WHERE section = ? ORDER BY key`, section)
}

func (r *sqliteContentRepo) Update(ctx context.Context, content *models.SiteContent) error {
	content.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		UPDATE site_content SET value = ?, type = ?, updated_at = ?
		WHERE id = ?`,
		content.Value, content.Type, content.UpdatedAt, content.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update content: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteContentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM site_content WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteContentRepo) queryContent(ctx context.Context, query string, args ...any) ([]*models.SiteContent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	defer rows.Close()

	var items []*models.SiteContent
	for rows.Next() {
		content := &models.SiteContent{}
		if err := rows.Scan(&content.ID, &content.Section, &content.Key,
			&content.Value, &content.Type, &content.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan content: %w", err)
		}
		items = append(items, content)
	}

	return items, rows.Err()
}
