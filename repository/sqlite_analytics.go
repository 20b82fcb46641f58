package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dspstudio/backend/database"
	"github.com/dspstudio/backend/models"
)

// sqliteAnalyticsRepo, AnalyticsRepository'nin SQLite implementasyonu.
type sqliteAnalyticsRepo struct {
	db database.TxQuerier
}

// NewSQLiteAnalyticsRepo, constructor.
func NewSQLiteAnalyticsRepo(db database.TxQuerier) AnalyticsRepository {
	return &sqliteAnalyticsRepo{db: db}
}

func (r *sqliteAnalyticsRepo) Create(ctx context.Context, event *models.AnalyticsEvent) error {
	event.ID = uuid.NewString()
	event.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO analytics_events (id, event_type, page, data, user_agent, ip_address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.EventType, event.Page, rawOrNil(event.Data),
		event.UserAgent, event.IPAddress, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record analytics event: %w", err)
	}

	return nil
}

func (r *sqliteAnalyticsRepo) CountByType(ctx context.Context, eventType string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM analytics_events WHERE event_type = ?`, eventType,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count analytics events: %w", err)
	}
	return count, nil
}

func (r *sqliteAnalyticsRepo) TopPages(ctx context.Context, limit int) ([]models.PageCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT page, COUNT(*) AS views
		FROM analytics_events
		WHERE event_type = 'page_view'
		GROUP BY page
		ORDER BY views DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top pages: %w", err)
	}
	defer rows.Close()

	var pages []models.PageCount
	for rows.Next() {
		var pc models.PageCount
		if err := rows.Scan(&pc.Page, &pc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan page count: %w", err)
		}
		pages = append(pages, pc)
	}

	return pages, rows.Err()
}

func (r *sqliteAnalyticsRepo) RecentByType(ctx context.Context, eventType string, limit int) ([]models.AnalyticsEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, event_type, page, data, user_agent, ip_address, created_at
		FROM analytics_events
		WHERE event_type = ?
		ORDER BY created_at DESC
		LIMIT ?`, eventType, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent events: %w", err)
	}
	defer rows.Close()

	var events []models.AnalyticsEvent
	for rows.Next() {
		var event models.AnalyticsEvent
		var data *string
		if err := rows.Scan(&event.ID, &event.EventType, &event.Page, &data,
			&event.UserAgent, &event.IPAddress, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analytics event: %w", err)
		}
		event.Data = nilOrRaw(data)
		events = append(events, event)
	}

	return events, rows.Err()
}
