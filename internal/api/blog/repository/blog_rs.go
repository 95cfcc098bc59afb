package blogRepository

import (
	"BlogPlatform/internal/api/blog"
	"BlogPlatform/internal/entity"
	contextPkg "BlogPlatform/pkg/context"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"strings"
	"time"
)

type BlogDB struct {
	ID          sql.NullString `db:"id"`
	Title       sql.NullString `db:"title"`
	Body        sql.NullString `db:"body"`
	Category    sql.NullString `db:"category"`
	AuthorID    sql.NullString `db:"author_id"`
	Tags        pq.StringArray `db:"tags"`
	Subcategory pq.StringArray `db:"subcategory"`
	IsPublished sql.NullBool   `db:"is_published"`
	PublishedAt sql.NullTime   `db:"published_at"`
	IsDeleted   sql.NullBool   `db:"is_deleted"`
	DeletedAt   sql.NullTime   `db:"deleted_at"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           blog.ID,
		"title":        blog.Title,
		"body":         blog.Body,
		"category":     blog.Category,
		"author_id":    blog.AuthorID,
		"tags":         pq.Array(nonNil(blog.Tags)),
		"subcategory":  pq.Array(nonNil(blog.Subcategory)),
		"is_published": blog.IsPublished,
		"published_at": blog.PublishedAt,
		"created_at":   blog.CreatedAt,
		"updated_at":   blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blogDB BlogDB

	query, args, err := sqlx.Named(queryGetBlogByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.Blog{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blogDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.Blog{}, err
	}

	return makeBlog(blogDB), nil
}

// ListBlogs returns non-deleted blogs matching every set filter field, in
// insertion order.
func (r *blogsRepository) ListBlogs(ctx context.Context, filter entity.BlogFilter) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	conditions, argsKV := buildListConditions(filter)
	namedQuery := fmt.Sprintf(queryListBlogs, strings.Join(conditions, " AND "))

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListBlogs named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListBlogs execution err")
		return nil, err
	}
	defer rows.Close()

	var result []entity.Blog
	for rows.Next() {
		var blogDB BlogDB
		if err := rows.StructScan(&blogDB); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to scan blog row")
			return nil, err
		}
		result = append(result, makeBlog(blogDB))
	}

	if err := rows.Err(); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Error iterating blog rows")
		return nil, err
	}

	return result, nil
}

func buildListConditions(filter entity.BlogFilter) ([]string, map[string]interface{}) {
	conditions := []string{"is_deleted = FALSE"}
	argsKV := map[string]interface{}{}

	if filter.AuthorID != "" {
		conditions = append(conditions, "author_id = :author_id")
		argsKV["author_id"] = filter.AuthorID
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = :category")
		argsKV["category"] = filter.Category
	}
	if len(filter.Tags) > 0 {
		conditions = append(conditions, "tags @> CAST(:tags AS text[])")
		argsKV["tags"] = pq.Array(filter.Tags)
	}
	if len(filter.Subcategory) > 0 {
		conditions = append(conditions, "subcategory @> CAST(:subcategory AS text[])")
		argsKV["subcategory"] = pq.Array(filter.Subcategory)
	}
	if filter.IsPublished != nil {
		conditions = append(conditions, "is_published = :is_published")
		argsKV["is_published"] = *filter.IsPublished
	}

	return conditions, argsKV
}

// UpdateBlog applies patch only while the blog is live and owned by
// authorID. It returns ErrBlogNotFound when no row qualified.
func (r *blogsRepository) UpdateBlog(ctx context.Context, id string, authorID string, patch entity.BlogPatch) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           id,
		"author_id":    authorID,
		"title":        patch.Title,
		"body":         patch.Body,
		"category":     patch.Category,
		"tags":         pq.Array(nonNil(patch.Tags)),
		"subcategory":  pq.Array(nonNil(patch.Subcategory)),
		"is_published": patch.IsPublished,
		"updated_at":   patch.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateBlog")
		return entity.Blog{}, err
	}
	query = r.q.Rebind(query)

	var blogDB BlogDB
	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blogDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    id,
			}).Warn("No live blog owned by author to update")
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating blog")
		return entity.Blog{}, err
	}

	return makeBlog(blogDB), nil
}

func (r *blogsRepository) SoftDeleteBlog(ctx context.Context, id string, authorID string, at time.Time) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"author_id":  authorID,
		"deleted_at": at,
	}

	affected, err := r.execAffected(ctx, querySoftDeleteBlog, argsKV, "SoftDeleteBlog")
	if err != nil {
		return err
	}

	if affected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    id,
		}).Warn("No live blog owned by author to delete")
		return blogs.ErrBlogNotFound
	}

	return nil
}

// SoftDeleteBlogs marks the live blogs among ids owned by authorID as
// deleted and reports how many rows changed.
func (r *blogsRepository) SoftDeleteBlogs(ctx context.Context, ids []string, authorID string, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	argsKV := map[string]interface{}{
		"ids":        pq.Array(ids),
		"author_id":  authorID,
		"deleted_at": at,
	}

	return r.execAffected(ctx, querySoftDeleteBlogs, argsKV, "SoftDeleteBlogs")
}

func (r *blogsRepository) execAffected(ctx context.Context, namedQuery string, argsKV map[string]interface{}, op string) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " rows affected err")
		return 0, err
	}

	return affected, nil
}

func makeBlog(b BlogDB) entity.Blog {
	return entity.Blog{
		ID:          b.ID.String,
		Title:       b.Title.String,
		Body:        b.Body.String,
		Category:    b.Category.String,
		AuthorID:    b.AuthorID.String,
		Tags:        nonNil(b.Tags),
		Subcategory: nonNil(b.Subcategory),
		IsPublished: b.IsPublished.Bool,
		PublishedAt: timePtr(b.PublishedAt),
		IsDeleted:   b.IsDeleted.Bool,
		DeletedAt:   timePtr(b.DeletedAt),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
