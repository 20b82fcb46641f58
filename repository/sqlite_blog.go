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

// sqliteBlogRepo, BlogRepository'nin SQLite implementasyonu.
type sqliteBlogRepo struct {
	db database.TxQuerier
}

// NewSQLiteBlogRepo, constructor.
func NewSQLiteBlogRepo(db database.TxQuerier) BlogRepository {
	return &sqliteBlogRepo{db: db}
}

const blogColumns = `id, title, slug, content, excerpt, featured_image, category, tags,
	seo_title, seo_description, og_image, is_published, published_at, created_at, updated_at`

func (r *sqliteBlogRepo) Create(ctx context.Context, post *models.BlogPost) error {
	post.ID = uuid.NewString()
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO blog_posts (`+blogColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID, post.Title, post.Slug, post.Content, post.Excerpt,
		post.FeaturedImage, post.Category, marshalList(post.Tags),
		post.SEOTitle, post.SEODescription, post.OGImage,
		post.IsPublished, post.PublishedAt, post.CreatedAt, post.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return fmt.Errorf("%w: slug already in use", pkg.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}

	return nil
}

func (r *sqliteBlogRepo) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+blogColumns+` FROM blog_posts WHERE id = ?`, id)
	return wrapBlogScan(scanBlogPost(row.Scan))
}

func (r *sqliteBlogRepo) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+blogColumns+` FROM blog_posts WHERE slug = ? AND is_published = 1`, slug)
	return wrapBlogScan(scanBlogPost(row.Scan))
}

func (r *sqliteBlogRepo) List(ctx context.Context) ([]*models.BlogPost, error) {
	return r.queryPosts(ctx,
		`SELECT `+blogColumns+` FROM blog_posts ORDER BY created_at DESC`)
}

func (r *sqliteBlogRepo) ListPublished(ctx context.Context) ([]*models.BlogPost, error) {
	return r.queryPosts(ctx,
		`SELECT `+blogColumns+` FROM blog_posts
		 WHERE is_published = 1 ORDER BY published_at DESC`)
}

func (r *sqliteBlogRepo) Update(ctx context.Context, post *models.BlogPost) error {
	post.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		UPDATE blog_posts
		SET title = ?, content = ?, excerpt = ?, featured_image = ?, category = ?,
		    tags = ?, seo_title = ?, seo_description = ?, og_image = ?,
		    is_published = ?, published_at = ?, updated_at = ?
		WHERE id = ?`,
		post.Title, post.Content, post.Excerpt, post.FeaturedImage, post.Category,
		marshalList(post.Tags), post.SEOTitle, post.SEODescription, post.OGImage,
		post.IsPublished, post.PublishedAt, post.UpdatedAt, post.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteBlogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteBlogRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	return count, nil
}

func (r *sqliteBlogRepo) queryPosts(ctx context.Context, query string, args ...any) ([]*models.BlogPost, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func scanBlogPost(scan func(...any) error) (*models.BlogPost, error) {
	post := &models.BlogPost{}
	var tags string
	if err := scan(
		&post.ID, &post.Title, &post.Slug, &post.Content, &post.Excerpt,
		&post.FeaturedImage, &post.Category, &tags,
		&post.SEOTitle, &post.SEODescription, &post.OGImage,
		&post.IsPublished, &post.PublishedAt, &post.CreatedAt, &post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	post.Tags = unmarshalList(tags)
	return post, nil
}

func wrapBlogScan(post *models.BlogPost, err error) (*models.BlogPost, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return post, nil
}
