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

// sqliteInquiryRepo, InquiryRepository'nin SQLite implementasyonu.
type sqliteInquiryRepo struct {
	db database.TxQuerier
}

// NewSQLiteInquiryRepo, constructor.
func NewSQLiteInquiryRepo(db database.TxQuerier) InquiryRepository {
	return &sqliteInquiryRepo{db: db}
}

const inquiryColumns = `id, name, email, phone, event_type, event_date, message, status, created_at`

func (r *sqliteInquiryRepo) Create(ctx context.Context, inq *models.Inquiry) error {
	inq.ID = uuid.NewString()
	inq.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inquiries (`+inquiryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inq.ID, inq.Name, inq.Email, inq.Phone, inq.EventType,
		inq.EventDate, inq.Message, inq.Status, inq.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}

func (r *sqliteInquiryRepo) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	inq := &models.Inquiry{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+inquiryColumns+` FROM inquiries WHERE id = ?`, id,
	).Scan(&inq.ID, &inq.Name, &inq.Email, &inq.Phone, &inq.EventType,
		&inq.EventDate, &inq.Message, &inq.Status, &inq.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}

	return inq, nil
}

// List, en yeni başvuru en üstte olacak şekilde döner.
func (r *sqliteInquiryRepo) List(ctx context.Context) ([]*models.Inquiry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inquiryColumns+` FROM inquiries ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []*models.Inquiry
	for rows.Next() {
		inq := &models.Inquiry{}
		if err := rows.Scan(&inq.ID, &inq.Name, &inq.Email, &inq.Phone, &inq.EventType,
			&inq.EventDate, &inq.Message, &inq.Status, &inq.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}

	return inquiries, rows.Err()
}

func (r *sqliteInquiryRepo) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE inquiries SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteInquiryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inquiries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteInquiryRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inquiries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return count, nil
}

func (r *sqliteInquiryRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM inquiries GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count inquiries by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
