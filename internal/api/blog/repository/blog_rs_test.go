package blogRepository

import (
	"context"
	"io"
	"testing"
	"time"

	"BlogPlatform/internal/api/blog"
	"BlogPlatform/internal/entity"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"id", "title", "body", "category", "author_id", "tags", "subcategory",
	"is_published", "published_at", "is_deleted", "deleted_at", "created_at", "updated_at",
}

func newMockClient(t *testing.T) (Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client, err := New(sqlx.NewDb(db, "postgres"), logger).NewClient(false)
	require.NoError(t, err)
	return client, mock
}

func TestCreateBlog(t *testing.T) {
	client, mock := newMockClient(t)
	now := time.Now().UTC()

	mock.ExpectExec(`INSERT INTO blogs`).
		WithArgs("blog-1", "Go", "b", "tech", "author-1", `{"go"}`, `{}`, true, now, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := client.Blogs.CreateBlog(context.Background(), entity.Blog{
		ID: "blog-1", Title: "Go", Body: "b", Category: "tech", AuthorID: "author-1",
		Tags: []string{"go"}, IsPublished: true, PublishedAt: &now, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlogByID(t *testing.T) {
	client, mock := newMockClient(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM blogs\s+WHERE id = \$1 AND is_deleted = FALSE`).
		WithArgs("blog-1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"blog-1", "Go", "b", "tech", "author-1", `{go,web}`, `{}`,
			true, created, false, nil, created, created,
		))

	found, err := client.Blogs.GetBlogByID(context.Background(), "blog-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "web"}, found.Tags)
	assert.Equal(t, []string{}, found.Subcategory)
	require.NotNil(t, found.PublishedAt)
	assert.Equal(t, created, *found.PublishedAt)
	assert.Nil(t, found.DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlogByIDNotFound(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery(`SELECT .+ FROM blogs`).WillReturnRows(sqlmock.NewRows(columns))

	_, err := client.Blogs.GetBlogByID(context.Background(), "missing")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestBuildListConditions(t *testing.T) {
	published := true

	conditions, args := buildListConditions(entity.BlogFilter{})
	assert.Equal(t, []string{"is_deleted = FALSE"}, conditions)
	assert.Empty(t, args)

	conditions, args = buildListConditions(entity.BlogFilter{
		AuthorID:    "author-1",
		Category:    "tech",
		Tags:        []string{"go"},
		Subcategory: []string{"lang"},
		IsPublished: &published,
	})
	assert.Equal(t, []string{
		"is_deleted = FALSE",
		"author_id = :author_id",
		"category = :category",
		"tags @> CAST(:tags AS text[])",
		"subcategory @> CAST(:subcategory AS text[])",
		"is_published = :is_published",
	}, conditions)
	assert.Len(t, args, 5)
	assert.Equal(t, true, args["is_published"])
}

func TestListBlogs(t *testing.T) {
	client, mock := newMockClient(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	published := true

	mock.ExpectQuery(`WHERE is_deleted = FALSE AND category = \$1 AND tags @> CAST\(\$2 AS text\[\]\) AND is_published = \$3\s+ORDER BY created_at ASC, id ASC`).
		WithArgs("tech", `{"go"}`, true).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("b1", "1", "b", "tech", "a1", `{go}`, `{}`, true, created, false, nil, created, created).
			AddRow("b2", "2", "b", "tech", "a2", `{go,web}`, `{x}`, true, created, false, nil, created, created))

	found, err := client.Blogs.ListBlogs(context.Background(), entity.BlogFilter{
		Category:    "tech",
		Tags:        []string{"go"},
		IsPublished: &published,
	})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "b1", found[0].ID)
	assert.Equal(t, []string{"x"}, found[1].Subcategory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBlog(t *testing.T) {
	client, mock := newMockClient(t)
	now := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	title := "Rust"
	published := true

	mock.ExpectQuery(`UPDATE blogs\s+SET.+WHERE id = \$\d+ AND author_id = \$\d+ AND is_deleted = FALSE\s+RETURNING`).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"blog-1", "Rust", "b", "tech", "author-1", `{go,web}`, `{}`,
			true, now, false, nil, now.Add(-time.Hour), now,
		))

	updated, err := client.Blogs.UpdateBlog(context.Background(), "blog-1", "author-1", entity.BlogPatch{
		Title:       &title,
		Tags:        []string{"web"},
		IsPublished: &published,
		UpdatedAt:   now,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rust", updated.Title)
	assert.Equal(t, []string{"go", "web"}, updated.Tags)
	require.NotNil(t, updated.PublishedAt)
	assert.Equal(t, now, *updated.PublishedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBlogNoQualifyingRow(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery(`UPDATE blogs`).WillReturnRows(sqlmock.NewRows(columns))

	_, err := client.Blogs.UpdateBlog(context.Background(), "blog-1", "author-1", entity.BlogPatch{UpdatedAt: time.Now()})
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestSoftDeleteBlog(t *testing.T) {
	client, mock := newMockClient(t)
	now := time.Now().UTC()

	mock.ExpectExec(`UPDATE blogs\s+SET\s+is_deleted = TRUE`).
		WithArgs(now, now, "blog-1", "author-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE blogs\s+SET\s+is_deleted = TRUE`).
		WithArgs(now, now, "blog-1", "author-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, client.Blogs.SoftDeleteBlog(context.Background(), "blog-1", "author-1", now))
	assert.ErrorIs(t, client.Blogs.SoftDeleteBlog(context.Background(), "blog-1", "author-1", now), blogs.ErrBlogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteBlogs(t *testing.T) {
	client, mock := newMockClient(t)
	now := time.Now().UTC()

	mock.ExpectExec(`WHERE id = ANY\(CAST\(\$3 AS text\[\]\)\) AND author_id = \$4 AND is_deleted = FALSE`).
		WithArgs(now, now, `{"b1","b2","b3"}`, "author-1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := client.Blogs.SoftDeleteBlogs(context.Background(), []string{"b1", "b2", "b3"}, "author-1", now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = client.Blogs.SoftDeleteBlogs(context.Background(), nil, "author-1", now)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, mock.ExpectationsWereMet())
}
