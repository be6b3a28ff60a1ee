package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	model "shareit/internal/models"
	"shareit/internal/shareiterrors"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
)

// CreateUser inserts a user and sets its generated ID
func (s *SQLStore) CreateUser(ctx context.Context, user *model.User) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { endSpan(span, err) }()

	query := s.db.Rebind(`INSERT INTO users (name, email) VALUES (?, ?) RETURNING id`)
	if err = sqlx.GetContext(ctx, s.q, &user.ID, query, user.Name, user.Email); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create user %s: %w", user.Email, shareiterrors.ErrEmailTaken)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUser returns a user by ID
func (s *SQLStore) GetUser(ctx context.Context, id int64) (user model.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUser", attribute.Int64("user.id", id))
	defer func() { endSpan(span, err) }()

	query := s.db.Rebind(`SELECT id, name, email FROM users WHERE id = ?`)
	if err = sqlx.GetContext(ctx, s.q, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, fmt.Errorf("get user %d: %w", id, shareiterrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

// ListUsers returns all users ordered by ID
func (s *SQLStore) ListUsers(ctx context.Context) (users []model.User, err error) {
	ctx, span := s.startSpan(ctx, "ListUsers")
	defer func() { endSpan(span, err) }()

	users = []model.User{}
	if err = sqlx.SelectContext(ctx, s.q, &users, `SELECT id, name, email FROM users ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUser overwrites name and email of an existing user
func (s *SQLStore) UpdateUser(ctx context.Context, user model.User) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUser", attribute.Int64("user.id", user.ID))
	defer func() { endSpan(span, err) }()

	query := s.db.Rebind(`UPDATE users SET name = ?, email = ? WHERE id = ?`)
	res, err := s.q.ExecContext(ctx, query, user.Name, user.Email, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update user %d: %w", user.ID, shareiterrors.ErrEmailTaken)
		}
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
	return requireAffected(res, fmt.Sprintf("update user %d", user.ID), shareiterrors.ErrUserNotFound)
}

// DeleteUser removes a user; owned items, bookings, comments and requests cascade
func (s *SQLStore) DeleteUser(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteUser", attribute.Int64("user.id", id))
	defer func() { endSpan(span, err) }()

	res, err := s.q.ExecContext(ctx, s.db.Rebind(`DELETE FROM users WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return requireAffected(res, fmt.Sprintf("delete user %d", id), shareiterrors.ErrUserNotFound)
}

// UserExists reports whether a user with the ID exists
func (s *SQLStore) UserExists(ctx context.Context, id int64) (exists bool, err error) {
	ctx, span := s.startSpan(ctx, "UserExists", attribute.Int64("user.id", id))
	defer func() { endSpan(span, err) }()

	query := s.db.Rebind(`SELECT EXISTS (SELECT 1 FROM users WHERE id = ?)`)
	if err = sqlx.GetContext(ctx, s.q, &exists, query, id); err != nil {
		return false, fmt.Errorf("check user %d: %w", id, err)
	}
	return exists, nil
}

// EmailTaken reports whether another user than exceptID already uses the email
func (s *SQLStore) EmailTaken(ctx context.Context, email string, exceptID int64) (taken bool, err error) {
	ctx, span := s.startSpan(ctx, "EmailTaken")
	defer func() { endSpan(span, err) }()

	query := s.db.Rebind(`SELECT EXISTS (SELECT 1 FROM users WHERE email = ? AND id <> ?)`)
	if err = sqlx.GetContext(ctx, s.q, &taken, query, email, exceptID); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return taken, nil
}

func requireAffected(res sql.Result, op string, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, notFound)
	}
	return nil
}
