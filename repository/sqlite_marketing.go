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

// sqliteMarketingRepo, MarketingRepository'nin SQLite implementasyonu.
type sqliteMarketingRepo struct {
	db database.TxQuerier
}

// NewSQLiteMarketingRepo, constructor.
func NewSQLiteMarketingRepo(db database.TxQuerier) MarketingRepository {
	return &sqliteMarketingRepo{db: db}
}

const marketingColumns = `id, name, script_id, is_active, config, updated_at`

// Upsert, name üzerinden insert-or-update yapar.
// SQLite'ın ON CONFLICT clause'u tek round-trip'te upsert sağlar.
func (r *sqliteMarketingRepo) Upsert(ctx context.Context, script *models.MarketingScript) error {
	script.UpdatedAt = time.Now().UTC()
	newID := uuid.NewString()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO marketing_scripts (id, name, script_id, is_active, config, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			script_id = excluded.script_id,
			is_active = excluded.is_active,
			config = excluded.config,
			updated_at = excluded.updated_at`,
		newID, script.Name, script.ScriptID, script.IsActive,
		rawOrNil(script.Config), script.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert marketing script: %w", err)
	}

	// Upsert sonrası gerçek ID'yi geri oku (insert mi update mi bilinmez)
	stored, err := r.GetByName(ctx, script.Name)
	if err != nil {
		return err
	}
	script.ID = stored.ID

	return nil
}

func (r *sqliteMarketingRepo) GetByName(ctx context.Context, name string) (*models.MarketingScript, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+marketingColumns+` FROM marketing_scripts WHERE name = ?`, name)

	script, err := scanMarketingScript(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get marketing script: %w", err)
	}

	return script, nil
}

func (r *sqliteMarketingRepo) List(ctx context.Context) ([]*models.MarketingScript, error) {
	return r.queryScripts(ctx,
		`SELECT `+marketingColumns+` FROM marketing_scripts ORDER BY name ASC`)
}

func (r *sqliteMarketingRepo) ListActive(ctx context.Context) ([]*models.MarketingScript, error) {
	return r.queryScripts(ctx,
		`SELECT `+marketingColumns+` FROM marketing_scripts WHERE is_active = 1 ORDER BY name ASC`)
}

func (r *sqliteMarketingRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM marketing_scripts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete marketing script: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteMarketingRepo) queryScripts(ctx context.Context, query string, args ...any) ([]*models.MarketingScript, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list marketing scripts: %w", err)
	}
	defer rows.Close()

	var scripts []*models.MarketingScript
	for rows.Next() {
		script, err := scanMarketingScript(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan marketing script: %w", err)
		}
		scripts = append(scripts, script)
	}

	return scripts, rows.Err()
}

func scanMarketingScript(scan func(...any) error) (*models.MarketingScript, error) {
	script := &models.MarketingScript{}
	var config *string
	if err := scan(
		&script.ID, &script.Name, &script.ScriptID,
		&script.IsActive, &config, &script.UpdatedAt,
	); err != nil {
		return nil, err
	}
	script.Config = nilOrRaw(config)
	return script, nil
}
