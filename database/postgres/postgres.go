package postgres

import (
	"fmt"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"net/url"
	"os"
	"time"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// FormatDSN builds a postgres:// URL from the DB_* environment.
func FormatDSN() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(env("DB_USER", "postgres"), os.Getenv("DB_PASSWORD")),
		Host:   fmt.Sprintf("%s:%s", env("DB_HOST", "localhost"), env("DB_PORT", "5432")),
		Path:   env("DB_NAME", "blog"),
	}

	q := dsn.Query()
	q.Set("sslmode", env("DB_SSLMODE", "disable"))
	dsn.RawQuery = q.Encode()

	return dsn.String()
}

func New() (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", FormatDSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	logrus.WithFields(logrus.Fields{
		"host": env("DB_HOST", "localhost"),
		"name": env("DB_NAME", "blog"),
	}).Info("Connected to postgres")

	return db, nil
}
