package repository

import (
	"context"
	"fmt"
	"strings"
)

// schemaStatements creates the tables. {{pk}} is replaced by the auto-increment primary key
// definition of the backend. Timestamps are Unix milliseconds in UTC.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id {{pk}},
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS requests (
		id {{pk}},
		description TEXT NOT NULL,
		requestor_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id {{pk}},
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		available BOOLEAN NOT NULL,
		owner_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		request_id BIGINT REFERENCES requests(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id {{pk}},
		start_date BIGINT NOT NULL,
		end_date BIGINT NOT NULL,
		item_id BIGINT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		booker_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id {{pk}},
		text TEXT NOT NULL,
		item_id BIGINT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_owner ON items(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_items_request ON items(request_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_booker ON bookings(booker_id, start_date)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_item ON bookings(item_id, start_date)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_item ON comments(item_id)`,
	`CREATE INDEX IF NOT EXISTS idx_requests_requestor ON requests(requestor_id, created)`,
}

func primaryKeyFor(driver string) string {
	if driver == DriverPostgres {
		return "BIGSERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

// runMigrations creates the schema if it does not exist yet
func (s *SQLStore) runMigrations(ctx context.Context) error {
	pk := primaryKeyFor(s.driver)
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, strings.ReplaceAll(stmt, "{{pk}}", pk)); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
