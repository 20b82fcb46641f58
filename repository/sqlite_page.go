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

// sqlitePageRepo, PageRepository'nin SQLite implementasyonu.
type sqlitePageRepo struct {
	db database.TxQuerier
}

// NewSQLitePageRepo, constructor.
func NewSQLitePageRepo(db database.TxQuerier) PageRepository {
	return &sqlitePageRepo{db: db}
}

const pageColumns = `id, title, slug, content, template, seo_title, seo_description,
	og_image, is_published, created_at, updated_at`

func (r *sqlitePageRepo) Create(ctx context.Context, page *models.Page) error {
	page.ID = uuid.NewString()
	now := time.Now().UTC()
	page.CreatedAt = now
	page.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pages (`+pageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		page.ID, page.Title, page.Slug, page.Content, page.Template,
		page.SEOTitle, page.SEODescription, page.OGImage,
		page.IsPublished, page.CreatedAt, page.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return fmt.Errorf("%w: slug already in use", pkg.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}

	return nil
}

func (r *sqlitePageRepo) GetByID(ctx context.Context, id string) (*models.Page, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE id = ?`, id)
	return wrapPageScan(scanPage(row.Scan))
}

func (r *sqlitePageRepo) GetPublishedBySlug(ctx context.Context, slug string) (*models.Page, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE slug = ? AND is_published = 1`, slug)
	return wrapPageScan(scanPage(row.Scan))
}

func (r *sqlitePageRepo) List(ctx context.Context) ([]*models.Page, error) {
	return r.queryPages(ctx,
		`SELECT `+pageColumns+` FROM pages ORDER BY created_at DESC`)
}

func (r *sqlitePageRepo) ListPublished(ctx context.Context) ([]*models.Page, error) {
	return r.queryPages(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE is_published = 1 ORDER BY title ASC`)
}

func (r *sqlitePageRepo) Update(ctx context.Context, page *models.Page) error {
	page.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		UPDATE pages
		SET title = ?, content = ?, template = ?, seo_title = ?,
		    seo_description = ?, og_image = ?, is_published = ?, updated_at = ?
		WHERE id = ?`,
		page.Title, page.Content, page.Template, page.SEOTitle,
		page.SEODescription, page.OGImage, page.IsPublished,
		page.UpdatedAt, page.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update page: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlitePageRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlitePageRepo) queryPages(ctx context.Context, query string, args ...any) ([]*models.Page, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	var pages []*models.Page
	for rows.Next() {
		page, err := scanPage(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, page)
	}

	return pages, rows.Err()
}

func scanPage(scan func(...any) error) (*models.Page, error) {
	page := &models.Page{}
	if err := scan(
		&page.ID, &page.Title, &page.Slug, &page.Content, &page.Template,
		&page.SEOTitle, &page.SEODescription, &page.OGImage,
		&page.IsPublished, &page.CreatedAt, &page.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return page, nil
}

func wrapPageScan(page *models.Page, err error) (*models.Page, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return page, nil
}
