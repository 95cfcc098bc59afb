package authorRepository

import (
	"BlogPlatform/internal/api/author"
	"BlogPlatform/internal/entity"
	contextPkg "BlogPlatform/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"time"
)

const uniqueViolation = "23505"

type AuthorDB struct {
	ID        sql.NullString `db:"id"`
	FirstName sql.NullString `db:"fname"`
	LastName  sql.NullString `db:"lname"`
	Title     sql.NullString `db:"title"`
	Email     sql.NullString `db:"email"`
	Password  sql.NullString `db:"password"`
	CreatedAt sql.NullTime   `db:"created_at"`
	UpdatedAt sql.NullTime   `db:"updated_at"`
}

func (r *authorRepository) CreateAuthor(c context.Context, a entity.Author) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         a.ID,
		"fname":      a.FirstName,
		"lname":      a.LastName,
		"title":      a.Title,
		"email":      a.Email,
		"password":   a.Password,
		"created_at": a.CreatedAt,
		"updated_at": a.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateAuthor, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateAuthor")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == "authors_email_key" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Email already registered")
			return author.ErrEmailAlreadyRegistered
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating author")
		return err
	}

	return nil
}

func (r *authorRepository) GetByID(c context.Context, id string) (entity.Author, error) {
	return r.getOne(c, queryGetAuthorByID, map[string]interface{}{"id": id}, "GetByID")
}

func (r *authorRepository) GetByEmail(c context.Context, email string) (entity.Author, error) {
	return r.getOne(c, queryGetAuthorByEmail, map[string]interface{}{"email": email}, "GetByEmail")
}

func (r *authorRepository) getOne(c context.Context, namedQuery string, argsKV map[string]interface{}, op string) (entity.Author, error) {
	requestID := contextPkg.GetRequestID(c)
	var row AuthorDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return entity.Author{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Debug(op + " no rows found")
			return entity.Author{}, author.ErrAuthorNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return entity.Author{}, err
	}

	return makeAuthor(row), nil
}

func makeAuthor(a AuthorDB) entity.Author {
	return entity.Author{
		ID:        a.ID.String,
		FirstName: a.FirstName.String,
		LastName:  a.LastName.String,
		Title:     a.Title.String,
		Email:     a.Email.String,
		Password:  a.Password.String,
		CreatedAt: nullTime(a.CreatedAt),
		UpdatedAt: nullTime(a.UpdatedAt),
	}
}

func nullTime(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}
