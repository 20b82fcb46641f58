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

// sqliteServiceRepo, ServiceRepository'nin SQLite implementasyonu.
type sqliteServiceRepo struct {
	db database.TxQuerier
}

// NewSQLiteServiceRepo, constructor.
func NewSQLiteServiceRepo(db database.TxQuerier) ServiceRepository {
	return &sqliteServiceRepo{db: db}
}

const serviceColumns = `id, title, description, features, image, icon, color, sort_order, is_active`

func (r *sqliteServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	svc.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO services (`+serviceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		svc.ID, svc.Title, svc.Description, marshalList(svc.Features),
		svc.Image, svc.Icon, svc.Color, svc.SortOrder, svc.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	return nil
}

func (r *sqliteServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = ?`, id)

	svc, err := scanService(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return svc, nil
}

func (r *sqliteServiceRepo) List(ctx context.Context) ([]*models.Service, error) {
	return r.queryServices(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY sort_order ASC`)
}

func (r *sqliteServiceRepo) ListActive(ctx context.Context) ([]*models.Service, error) {
	return r.queryServices(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE is_active = 1 ORDER BY sort_order ASC`)
}

func (r *sqliteServiceRepo) Update(ctx context.Context, svc *models.Service) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE services
		SET title = ?, description = ?, features = ?, image = ?, icon = ?,
		    color = ?, sort_order = ?, is_active = ?
		WHERE id = ?`,
		svc.Title, svc.Description, marshalList(svc.Features), svc.Image,
		svc.Icon, svc.Color, svc.SortOrder, svc.IsActive, svc.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

// Deactivate, hizmeti silmez — pasife çeker. Public listeden düşer,
// admin panelde geri açılabilir.
func (r *sqliteServiceRepo) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE services SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate service: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteServiceRepo) queryServices(ctx context.Context, query string, args ...any) ([]*models.Service, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		svc, err := scanService(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, svc)
	}

	return services, rows.Err()
}

// scanService, *sql.Row ve *sql.Rows için ortak scan — ikisinin de
// Scan metodu aynı imzaya sahiptir, fonksiyon değeri olarak geçilir.
func scanService(scan func(...any) error) (*models.Service, error) {
	svc := &models.Service{}
	var features string
	if err := scan(
		&svc.ID, &svc.Title, &svc.Description, &features,
		&svc.Image, &svc.Icon, &svc.Color, &svc.SortOrder, &svc.IsActive,
	); err != nil {
		return nil, err
	}
	svc.Features = unmarshalList(features)
	return svc, nil
}
