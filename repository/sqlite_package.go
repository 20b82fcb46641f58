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

// sqlitePackageRepo, PackageRepository'nin SQLite implementasyonu.
type sqlitePackageRepo struct {
	db database.TxQuerier
}

// NewSQLitePackageRepo, constructor.
func NewSQLitePackageRepo(db database.TxQuerier) PackageRepository {
	return &sqlitePackageRepo{db: db}
}

const packageColumns = `id, name, price, duration, category, features, popular, color, sort_order, is_active`

func (r *sqlitePackageRepo) Create(ctx context.Context, p *models.Package) error {
	p.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO packages (`+packageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Price, p.Duration, p.Category,
		marshalList(p.Features), p.Popular, p.Color, p.SortOrder, p.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}

	return nil
}

func (r *sqlitePackageRepo) GetByID(ctx context.Context, id string) (*models.Package, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+packageColumns+` FROM packages WHERE id = ?`, id)

	p, err := scanPackage(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	return p, nil
}

func (r *sqlitePackageRepo) List(ctx context.Context) ([]*models.Package, error) {
	return r.queryPackages(ctx,
		`SELECT `+packageColumns+` FROM packages ORDER BY sort_order ASC`)
}

func (r *sqlitePackageRepo) ListActive(ctx context.Context) ([]*models.Package, error) {
	return r.queryPackages(ctx,
		`SELECT `+packageColumns+` FROM packages WHERE is_active = 1 ORDER BY sort_order ASC`)
}

func (r *sqlitePackageRepo) Update(ctx context.Context, p *models.Package) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE packages
		SET name = ?, price = ?, duration = ?, category = ?, features = ?,
		    popular = ?, color = ?, sort_order = ?, is_active = ?
		WHERE id = ?`,
		p.Name, p.Price, p.Duration, p.Category, marshalList(p.Features),
		p.Popular, p.Color, p.SortOrder, p.IsActive, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlitePackageRepo) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE packages SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate package: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlitePackageRepo) queryPackages(ctx context.Context, query string, args ...any) ([]*models.Package, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer rows.Close()

	var packages []*models.Package
	for rows.Next() {
		p, err := scanPackage(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		packages = append(packages, p)
	}

	return packages, rows.Err()
}

func scanPackage(scan func(...any) error) (*models.Package, error) {
	p := &models.Package{}
	var features string
	if err := scan(
		&p.ID, &p.Name, &p.Price, &p.Duration, &p.Category,
		&features, &p.Popular, &p.Color, &p.SortOrder, &p.IsActive,
	); err != nil {
		return nil, err
	}
	p.Features = unmarshalList(features)
	return p, nil
}
