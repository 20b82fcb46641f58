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

// sqliteVideoRepo, VideoRepository'nin SQLite implementasyonu.
type sqliteVideoRepo struct {
	db database.TxQuerier
}

// NewSQLiteVideoRepo, constructor.
func NewSQLiteVideoRepo(db database.TxQuerier) VideoRepository {
	return &sqliteVideoRepo{db: db}
}

const videoColumns = `id, title, description, video_url, thumbnail, category, duration, tags, sort_order, is_active`

func (r *sqliteVideoRepo) Create(ctx context.Context, video *models.Video) error {
	video.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO videos (`+videoColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		video.ID, video.Title, video.Description, video.VideoURL,
		video.Thumbnail, video.Category, video.Duration,
		marshalList(video.Tags), video.SortOrder, video.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

func (r *sqliteVideoRepo) GetByID(ctx context.Context, id string) (*models.Video, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE id = ?`, id)

	video, err := scanVideo(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	return video, nil
}

func (r *sqliteVideoRepo) List(ctx context.Context) ([]*models.Video, error) {
	return r.queryVideos(ctx,
		`SELECT `+videoColumns+` FROM videos ORDER BY sort_order ASC`)
}

func (r *sqliteVideoRepo) ListActive(ctx context.Context) ([]*models.Video, error) {
	return r.queryVideos(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE is_active = 1 ORDER BY sort_order ASC`)
}

func (r *sqliteVideoRepo) Update(ctx context.Context, video *models.Video) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE videos
		SET title = ?, description = ?, video_url = ?, thumbnail = ?,
		    category = ?, duration = ?, tags = ?, sort_order = ?, is_active = ?
		WHERE id = ?`,
		video.Title, video.Description, video.VideoURL, video.Thumbnail,
		video.Category, video.Duration, marshalList(video.Tags),
		video.SortOrder, video.IsActive, video.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteVideoRepo) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE videos SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate video: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteVideoRepo) queryVideos(ctx context.Context, query string, args ...any) ([]*models.Video, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	var videos []*models.Video
	for rows.Next() {
		video, err := scanVideo(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}

	return videos, rows.Err()
}

func scanVideo(scan func(...any) error) (*models.Video, error) {
	video := &models.Video{}
	var tags string
	if err := scan(
		&video.ID, &video.Title, &video.Description, &video.VideoURL,
		&video.Thumbnail, &video.Category, &video.Duration,
		&tags, &video.SortOrder, &video.IsActive,
	); err != nil {
		return nil, err
	}
	video.Tags = unmarshalList(tags)
	return video, nil
}
