package repository

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dspstudio/backend/database"
	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
)

// newTestDB, geçici bir SQLite dosyası açar ve gerçek migration'ları uygular.
func newTestDB(t *testing.T) database.TxQuerier {
	t.Helper()
	migrations, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrations)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db.Conn
}

func newTestPost(slug string, published bool) *models.BlogPost {
	return &models.BlogPost{
		Title:       "Behind the Lens",
		Slug:        slug,
		Content:     "Full post body",
		Excerpt:     "Short teaser",
		Category:    "weddings",
		Tags:        []string{"weddings", "bts"},
		IsPublished: published,
	}
}

func TestBlogRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteBlogRepo(newTestDB(t))
	ctx := context.Background()

	post := newTestPost("behind-the-lens", true)
	require.NoError(t, repo.Create(ctx, post))
	require.NotEmpty(t, post.ID)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Behind the Lens", got.Title)
	assert.Equal(t, []string{"weddings", "bts"}, got.Tags)
	assert.True(t, got.IsPublished)

	_, err = repo.GetByID(ctx, "missing-id")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestBlogRepo_SlugMustBeUnique(t *testing.T) {
	repo := NewSQLiteBlogRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestPost("same-slug", true)))
	err := repo.Create(ctx, newTestPost("same-slug", false))
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
}

func TestBlogRepo_PublishedFiltering(t *testing.T) {
	repo := NewSQLiteBlogRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestPost("published-post", true)))
	require.NoError(t, repo.Create(ctx, newTestPost("draft-post", false)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	published, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "published-post", published[0].Slug)

	_, err = repo.GetPublishedBySlug(ctx, "published-post")
	assert.NoError(t, err)

	// Draft, public slug lookup'ta yok sayılır
	_, err = repo.GetPublishedBySlug(ctx, "draft-post")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestBlogRepo_UpdateAndDelete(t *testing.T) {
	repo := NewSQLiteBlogRepo(newTestDB(t))
	ctx := context.Background()

	post := newTestPost("edit-me", false)
	require.NoError(t, repo.Create(ctx, post))

	post.Title = "Updated Title"
	post.IsPublished = true
	require.NoError(t, repo.Update(ctx, post))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", got.Title)
	assert.True(t, got.IsPublished)

	require.NoError(t, repo.Delete(ctx, post.ID))
	_, err = repo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, post.ID), pkg.ErrNotFound)
}

func TestInquiryRepo_Lifecycle(t *testing.T) {
	repo := NewSQLiteInquiryRepo(newTestDB(t))
	ctx := context.Background()

	inq := &models.Inquiry{
		Name:      "Ananya",
		Email:     "ananya@example.com",
		Phone:     "+91 98765 43210",
		EventType: "wedding",
		Message:   "Looking for a two-day package",
		Status:    models.InquiryStatusNew,
	}
	require.NoError(t, repo.Create(ctx, inq))
	require.NotEmpty(t, inq.ID)

	got, err := repo.GetByID(ctx, inq.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusNew, got.Status)

	require.NoError(t, repo.UpdateStatus(ctx, inq.ID, models.InquiryStatusResponded))
	got, err = repo.GetByID(ctx, inq.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusResponded, got.Status)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[string(models.InquiryStatusResponded)])

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestInquiryRepo_Delete(t *testing.T) {
	repo := NewSQLiteInquiryRepo(newTestDB(t))
	ctx := context.Background()

	inq := &models.Inquiry{
		Name:    "Priya",
		Email:   "priya@example.com",
		Message: "Maternity shoot availability?",
		Status:  models.InquiryStatusNew,
	}
	require.NoError(t, repo.Create(ctx, inq))

	require.NoError(t, repo.Delete(ctx, inq.ID))
	_, err := repo.GetByID(ctx, inq.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, inq.ID), pkg.ErrNotFound)
}
