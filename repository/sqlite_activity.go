package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dspstudio/backend/database"
	"github.com/dspstudio/backend/models"
)

// sqliteActivityRepo, ActivityRepository'nin SQLite implementasyonu.
type sqliteActivityRepo struct {
	db database.TxQuerier
}

// NewSQLiteActivityRepo, constructor.
func NewSQLiteActivityRepo(db database.TxQuerier) ActivityRepository {
	return &sqliteActivityRepo{db: db}
}

func (r *sqliteActivityRepo) Create(ctx context.Context, entry *models.ActivityEntry) error {
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_log (id, user_id, action, resource, resource_id, details, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.UserID, entry.Action, entry.Resource,
		entry.ResourceID, rawOrNil(entry.Details), entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}

	return nil
}

func (r *sqliteActivityRepo) List(ctx context.Context, limit int) ([]*models.ActivityEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, action, resource, resource_id, details, created_at
		FROM activity_log
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []*models.ActivityEntry
	for rows.Next() {
		entry := &models.ActivityEntry{}
		var details *string
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Action, &entry.Resource,
			&entry.ResourceID, &details, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entry.Details = nilOrRaw(details)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
