package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/XSAM/otelsql"
	_ "github.com/jackc/pgx/v5/stdlib"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"bindash/internal/config"
)

// ApplicationName tags the seed reader's sessions in pg_stat_activity.
const ApplicationName = "bindash"

const defaultPort = "5432"

// ErrIncompleteConfig is returned when a required DB_* variable is unset.
var ErrIncompleteConfig = errors.New("incomplete database config")

var (
	sqlOpen     = sql.Open
	pingTimeout = 5 * time.Second
)

// DSN renders c as a postgres URL for the seed reader. DB_HOST, DB_USER and
// DB_NAME are required; the port defaults to 5432.
func DSN(c config.DatabaseConfig) (string, error) {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.User == "" {
		missing = append(missing, "DB_USER")
	}
	if c.Name == "" {
		missing = append(missing, "DB_NAME")
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s unset", ErrIncompleteConfig, strings.Join(missing, ", "))
	}

	port := c.Port
	if port == "" {
		port = defaultPort
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   url.User(c.User),
		Host:   net.JoinHostPort(c.Host, port),
		Path:   "/" + c.Name,
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}

	q := url.Values{}
	q.Set("application_name", ApplicationName)
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Open connects the pool the postgres seed source reads trash_bins through.
// Queries are traced with otelsql. The pool is pinged before it is returned
// and closed again when the ping fails.
func Open(ctx context.Context, c config.DatabaseConfig) (*sql.DB, error) {
	dsn, err := DSN(c)
	if err != nil {
		return nil, err
	}

	driverName, err := otelsql.Register("pgx",
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL, semconv.DBName(c.Name)),
		otelsql.WithSQLCommenter(true),
	)
	if err != nil {
		return nil, fmt.Errorf("register traced pgx driver: %w", err)
	}

	db, err := sqlOpen(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open seed pool: %w", err)
	}
	sizePool(db, c)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s/%s: %w", c.Host, c.Name, err)
	}

	return db, nil
}

// sizePool applies the DB_* pool limits; zero leaves the database/sql default.
func sizePool(db *sql.DB, c config.DatabaseConfig) {
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetimeSec > 0 {
		db.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetimeSec) * time.Second)
	}
}
