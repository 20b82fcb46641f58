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

// sqliteSettingsRepo, SettingsRepository'nin SQLite implementasyonu.
type sqliteSettingsRepo struct {
	db database.TxQuerier
}

// NewSQLiteSettingsRepo, constructor.
func NewSQLiteSettingsRepo(db database.TxQuerier) SettingsRepository {
	return &sqliteSettingsRepo{db: db}
}

func (r *sqliteSettingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	s := &models.Settings{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, groq_api_key_enc, gemini_api_key_enc,
		       facebook_pixel_id, google_analytics_id, google_tag_manager_id,
		       enable_facebook_pixel, enable_google_analytics, enable_google_tag_manager,
		       updated_at
		FROM settings WHERE type = 'system'`,
	).Scan(
		&s.ID, &s.GroqAPIKeyEnc, &s.GeminiAPIKeyEnc,
		&s.FacebookPixelID, &s.GoogleAnalyticsID, &s.GoogleTagManagerID,
		&s.EnableFacebookPixel, &s.EnableGoogleAnalytics, &s.EnableGoogleTagManager,
		&s.UpdatedAt,
	)

	// Seed satırı silinmişse varsayılanlarla yeniden oluştur
	if errors.Is(err, sql.ErrNoRows) {
		s = &models.Settings{ID: uuid.NewString(), UpdatedAt: time.Now().UTC()}
		if _, insErr := r.db.ExecContext(ctx,
			`INSERT INTO settings (id, type, updated_at) VALUES (?, 'system', ?)`,
			s.ID, s.UpdatedAt,
		); insErr != nil {
			return nil, fmt.Errorf("failed to initialize settings: %w", insErr)
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	s.HasGroqKey = s.GroqAPIKeyEnc != ""
	s.HasGeminiKey = s.GeminiAPIKeyEnc != ""

	return s, nil
}

func (r *sqliteSettingsRepo) Update(ctx context.Context, settings *models.Settings) error {
	settings.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		UPDATE settings
		SET groq_api_key_enc = ?, gemini_api_key_enc = ?,
		    facebook_pixel_id = ?, google_analytics_id = ?, google_tag_manager_id = ?,
		    enable_facebook_pixel = ?, enable_google_analytics = ?, enable_google_tag_manager = ?,
		    updated_at = ?
		WHERE type = 'system'`,
		settings.GroqAPIKeyEnc, settings.GeminiAPIKeyEnc,
		settings.FacebookPixelID, settings.GoogleAnalyticsID, settings.GoogleTagManagerID,
		settings.EnableFacebookPixel, settings.EnableGoogleAnalytics, settings.EnableGoogleTagManager,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}
