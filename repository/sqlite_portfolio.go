package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dspstudio/backend/database"
	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
)

// sqlitePortfolioRepo, PortfolioRepository'nin SQLite implementasyonu.
type sqlitePortfolioRepo struct {
	db database.TxQuerier
}

// NewSQLitePortfolioRepo, constructor.
func NewSQLitePortfolioRepo(db database.TxQuerier) PortfolioRepository {
	return &sqlitePortfolioRepo{db: db}
}

const portfolioColumns = `id, title, category, image, description, sort_order, is_active`

func (r *sqlitePortfolioRepo) Create(ctx context.Context, item *models.PortfolioItem) error {
	item.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO portfolio (`+portfolioColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.Category, item.Image,
		item.Description, item.SortOrder, item.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create portfolio item: %w", err)
	}

	return nil
}

func (r *sqlitePortfolioRepo) GetByID(ctx context.Context, id string) (*models.PortfolioItem, error) {
	item := &models.PortfolioItem{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+portfolioColumns+` FROM portfolio WHERE id = ?`, id,
	).Scan(&item.ID, &item.Title, &item.Category, &item.Image,
		&item.Description, &item.SortOrder, &item.IsActive)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio item: %w", err)
	}

	return item, nil
}

func (r *sqlitePortfolioRepo) List(ctx context.Context) ([]*models.PortfolioItem, error) {
	return r.queryItems(ctx,
		`SELECT `+portfolioColumns+` FROM portfolio ORDER BY sort_order ASC`)
}

func (r *sqlitePortfolioRepo) ListActive(ctx context.Context) ([]*models.PortfolioItem, error) {
	return r.queryItems(ctx,
		`SELECT `+portfolioColumns+` FROM portfolio WHERE is_active = 1 ORDER BY sort_order ASC`)
}

func (r *sqlitePortfolioRepo) ListActiveByCategory(ctx context.Context, category string) ([]*models.PortfolioItem, error) {
	return r.queryItems(ctx,
		`SELECT `+portfolioColumns+` FROM portfolio
		 WHERE is_active = 1 AND category = ? ORDER BY sort_order ASC`, category)
}

func (r *sqlitePortfolioRepo) Update(ctx context.Context, item *models.PortfolioItem) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE portfolio
		SET title = ?, category = ?, image = ?, description = ?, sort_order = ?, is_active = ?
		WHERE id = ?`,
		item.Title, item.Category, item.Image, item.Description,
		item.SortOrder, item.IsActive, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update portfolio item: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlitePortfolioRepo) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE portfolio SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate portfolio item: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlitePortfolioRepo) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM portfolio WHERE is_active = 1`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count portfolio items: %w", err)
	}
	return count, nil
}

func (r *sqlitePortfolioRepo) queryItems(ctx context.Context, query string, args ...any) ([]*models.PortfolioItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio: %w", err)
	}
	defer rows.Close()

	var items []*models.PortfolioItem
	for rows.Next() {
		item := &models.PortfolioItem{}
		if err := rows.Scan(&item.ID, &item.Title, &item.Category, &item.Image,
			&item.Description, &item.SortOrder, &item.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
