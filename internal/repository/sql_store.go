package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// unicodeLower is registered on SQLite, whose built-in LOWER folds ASCII letters only
const unicodeLower = "unicode_lower"

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
	sqlite.MustRegisterDeterministicScalarFunction(unicodeLower, 1, lowerValue)
}

func lowerValue(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// Ensure SQLStore implements ShareItDB
var _ ShareItDB = (*SQLStore)(nil)

// SQLStore is the sqlx-backed implementation of ShareItDB for SQLite and PostgreSQL
type SQLStore struct {
	db     *sqlx.DB
	q      sqlx.ExtContext
	driver string
	tracer trace.Tracer
	inTx   bool
}

// Open connects to the database, applies the schema and returns a ready store.
// For SQLite the dsn is a file path; parent directories are created.
func Open(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	switch driver {
	case DriverSQLite:
		if dir := filepath.Dir(dsn); dir != "" && !strings.HasPrefix(dsn, ":memory:") {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("repository: create database directory: %w", err)
			}
		}
		dsn = "file:" + dsn + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("repository: unsupported driver %q", driver)
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("repository: connect %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		// single writer; transactions must not wait on a second connection
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	store := &SQLStore{
		db:     db,
		q:      db,
		driver: driver,
		tracer: otel.Tracer("shareit/repository"),
	}

	if err := store.runMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("repository: %w", err)
	}

	return store, nil
}

// Close closes the underlying connection pool
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithinTx runs fn inside a single transaction and commits if fn returns nil
func (s *SQLStore) WithinTx(ctx context.Context, fn func(tx ShareItDB) error) error {
	if s.inTx {
		return fn(s)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txStore := &SQLStore{
		db:     s.db,
		q:      tx,
		driver: s.driver,
		tracer: s.tracer,
		inTx:   true,
	}

	if err := fn(txStore); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// startSpan opens a span for a single repository operation
func (s *SQLStore) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("db.system", s.driver))
	return s.tracer.Start(ctx, "repository."+op, trace.WithAttributes(attrs...))
}

// endSpan records err on the span, if any, and ends it
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// isUniqueViolation reports whether err is a unique constraint violation on either backend
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// lowerFunc names the SQL function that lowercases any Unicode letter on the store's backend
func (s *SQLStore) lowerFunc() string {
	if s.driver == DriverSQLite {
		return unicodeLower
	}
	return "LOWER"
}

// escapeLike escapes the LIKE wildcards so user text matches literally
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
