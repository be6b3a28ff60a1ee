package user

import (
	"context"
	"fmt"
	"strings"

	"shareit/internal/models"
	"shareit/internal/repository"
	"shareit/internal/shareiterrors"
)

// UserService defines the business logic for managing users
type UserService struct {
	repo repository.ShareItDB
}

// NewUserService creates a new UserService instance
func NewUserService(repo repository.ShareItDB) *UserService {
	return &UserService{
		repo: repo,
	}
}

// CreateUser registers a user with a unique email
func (s *UserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.Email) == "" {
		return models.User{}, fmt.Errorf("service: %w - name and email are required", shareiterrors.ErrInvalidInput)
	}

	err := s.repo.WithinTx(ctx, func(tx repository.ShareItDB) error {
		taken, err := tx.EmailTaken(ctx, user.Email, 0)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: %s", shareiterrors.ErrEmailTaken, user.Email)
		}
		return tx.CreateUser(ctx, &user)
	})
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to create user: %w", err)
	}

	return user, nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %d: %w", id, err)
	}
	return user, nil
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies the present fields of patch to the user
func (s *UserService) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.User, error) {
	var updated models.User

	err := s.repo.WithinTx(ctx, func(tx repository.ShareItDB) error {
		user, err := tx.GetUser(ctx, id)
		if err != nil {
			return err
		}

		if patch.Email != nil && *patch.Email != user.Email {
			taken, err := tx.EmailTaken(ctx, *patch.Email, id)
			if err != nil {
				return err
			}
			if taken {
				return fmt.Errorf("%w: %s", shareiterrors.ErrEmailTaken, *patch.Email)
			}
		}

		patch.Apply(&user)
		if err := tx.UpdateUser(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to update user %d: %w", id, err)
	}

	return updated, nil
}

// DeleteUser removes a user together with everything they own
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete user %d: %w", id, err)
	}
	return nil
}
