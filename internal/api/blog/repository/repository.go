package blogRepository

import (
	"BlogPlatform/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var db sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	db = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		db = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Blogs:    &blogsRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Blogs interface {
		CreateBlog(ctx context.Context, blog entity.Blog) error
		GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
		ListBlogs(ctx context.Context, filter entity.BlogFilter) ([]entity.Blog, error)
		UpdateBlog(ctx context.Context, id string, authorID string, patch entity.BlogPatch) (entity.Blog, error)
		SoftDeleteBlog(ctx context.Context, id string, authorID string, at time.Time) error
		SoftDeleteBlogs(ctx context.Context, ids []string, authorID string, at time.Time) (int64, error)
	}

	Commit   func() error
	Rollback func() error
}

type blogsRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
