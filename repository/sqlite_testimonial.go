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

// sqliteTestimonialRepo, TestimonialRepository'nin SQLite implementasyonu.
type sqliteTestimonialRepo struct {
	db database.TxQuerier
}

// NewSQLiteTestimonialRepo, constructor.
func NewSQLiteTestimonialRepo(db database.TxQuerier) TestimonialRepository {
	return &sqliteTestimonialRepo{db: db}
}

const testimonialColumns = `id, name, event, rating, text, image, location, sort_order, is_active`

func (r *sqliteTestimonialRepo) Create(ctx context.Context, t *models.Testimonial) error {
	t.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO testimonials (`+testimonialColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Event, t.Rating, t.Text,
		t.Image, t.Location, t.SortOrder, t.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}

	return nil
}

func (r *sqliteTestimonialRepo) GetByID(ctx context.Context, id string) (*models.Testimonial, error) {
	t := &models.Testimonial{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = ?`, id,
	).Scan(&t.ID, &t.Name, &t.Event, &t.Rating, &t.Text,
		&t.Image, &t.Location, &t.SortOrder, &t.IsActive)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}

	return t, nil
}

func (r *sqliteTestimonialRepo) List(ctx context.Context) ([]*models.Testimonial, error) {
	return r.queryTestimonials(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials ORDER BY sort_order ASC`)
}

func (r *sqliteTestimonialRepo) ListActive(ctx context.Context) ([]*models.Testimonial, error) {
	return r.queryTestimonials(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE is_active = 1 ORDER BY sort_order ASC`)
}

func (r *sqliteTestimonialRepo) Update(ctx context.Context, t *models.Testimonial) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE testimonials
		SET name = ?, event = ?, rating = ?, text = ?, image = ?,
		    location = ?, sort_order = ?, is_active = ?
		WHERE id = ?`,
		t.Name, t.Event, t.Rating, t.Text, t.Image,
		t.Location, t.SortOrder, t.IsActive, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update testimonial: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteTestimonialRepo) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE testimonials SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate testimonial: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteTestimonialRepo) queryTestimonials(ctx context.Context, query string, args ...any) ([]*models.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	defer rows.Close()

	var items []*models.Testimonial
	for rows.Next() {
		t := &models.Testimonial{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Event, &t.Rating, &t.Text,
			&t.Image, &t.Location, &t.SortOrder, &t.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		items = append(items, t)
	}

	return items, rows.Err()
}
