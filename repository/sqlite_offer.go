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

// sqliteOfferRepo, OfferRepository'nin SQLite implementasyonu.
type sqliteOfferRepo struct {
	db database.TxQuerier
}

// NewSQLiteOfferRepo, constructor.
func NewSQLiteOfferRepo(db database.TxQuerier) OfferRepository {
	return &sqliteOfferRepo{db: db}
}

const offerColumns = `id, title, description, discount_percent, valid_from, valid_until, terms, is_active, created_at`

func (r *sqliteOfferRepo) Create(ctx context.Context, offer *models.Offer) error {
	offer.ID = uuid.NewString()
	offer.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO offers (`+offerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		offer.ID, offer.Title, offer.Description, offer.DiscountPercent,
		offer.ValidFrom, offer.ValidUntil, marshalList(offer.Terms),
		offer.IsActive, offer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}

	return nil
}

func (r *sqliteOfferRepo) GetByID(ctx context.Context, id string) (*models.Offer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE id = ?`, id)

	offer, err := scanOffer(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	return offer, nil
}

func (r *sqliteOfferRepo) List(ctx context.Context) ([]*models.Offer, error) {
	return r.queryOffers(ctx,
		`SELECT `+offerColumns+` FROM offers ORDER BY created_at DESC`)
}

func (r *sqliteOfferRepo) ListCurrent(ctx context.Context) ([]*models.Offer, error) {
	return r.queryOffers(ctx, `
		SELECT `+offerColumns+` FROM offers
		WHERE is_active = 1
		  AND valid_from <= CURRENT_TIMESTAMP
		  AND valid_until >= CURRENT_TIMESTAMP
		ORDER BY valid_until ASC`)
}

func (r *sqliteOfferRepo) Update(ctx context.Context, offer *models.Offer) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE offers
		SET title = ?, description = ?, discount_percent = ?,
		    valid_from = ?, valid_until = ?, terms = ?, is_active = ?
		WHERE id = ?`,
		offer.Title, offer.Description, offer.DiscountPercent,
		offer.ValidFrom, offer.ValidUntil, marshalList(offer.Terms),
		offer.IsActive, offer.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update offer: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteOfferRepo) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE offers SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate offer: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteOfferRepo) queryOffers(ctx context.Context, query string, args ...any) ([]*models.Offer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	var offers []*models.Offer
	for rows.Next() {
		offer, err := scanOffer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, offer)
	}

	return offers, rows.Err()
}

func scanOffer(scan func(...any) error) (*models.Offer, error) {
	offer := &models.Offer{}
	var terms string
	if err := scan(
		&offer.ID, &offer.Title, &offer.Description, &offer.DiscountPercent,
		&offer.ValidFrom, &offer.ValidUntil, &terms,
		&offer.IsActive, &offer.CreatedAt,
	); err != nil {
		return nil, err
	}
	offer.Terms = unmarshalList(terms)
	return offer, nil
}
