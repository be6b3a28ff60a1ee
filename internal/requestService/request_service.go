package request

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shareit/internal/models"
	"shareit/internal/repository"
	"shareit/internal/shareiterrors"
)

// RequestService defines the business logic for item requests
type RequestService struct {
	repo repository.ShareItDB
	now  func() time.Time
}

// NewRequestService creates a new RequestService instance
func NewRequestService(repo repository.ShareItDB) *RequestService {
	return &RequestService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source; used by tests
func (s *RequestService) WithClock(now func() time.Time) *RequestService {
	s.now = now
	return s
}

// CreateRequest stores a new request stamped with the current time
func (s *RequestService) CreateRequest(ctx context.Context, userID int64, description string) (models.ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return models.ItemRequest{}, fmt.Errorf("service: %w - empty description", shareiterrors.ErrInvalidInput)
	}

	request := models.ItemRequest{
		Description: description,
		RequestorID: userID,
		Created:     s.now(),
		Items:       []models.Item{},
	}

	err := s.repo.WithinTx(ctx, func(tx repository.ShareItDB) error {
		if err := s.requireUser(ctx, tx, userID); err != nil {
			return err
		}
		return tx.CreateRequest(ctx, &request)
	})
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to create request for user %d: %w", userID, err)
	}

	return request, nil
}

// ListUserRequests returns the caller's own requests, newest first
func (s *RequestService) ListUserRequests(ctx context.Context, userID int64) ([]models.ItemRequest, error) {
	if err := s.requireUser(ctx, s.repo, userID); err != nil {
		return nil, fmt.Errorf("service: failed to list requests of user %d: %w", userID, err)
	}

	requests, err := s.repo.ListRequestsByRequestor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list requests of user %d: %w", userID, err)
	}

	if err := s.attachItems(ctx, requests); err != nil {
		return nil, fmt.Errorf("service: failed to list requests of user %d: %w", userID, err)
	}
	return requests, nil
}

// ListOtherRequests returns one page of requests made by other users, newest first
func (s *RequestService) ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]models.ItemRequest, error) {
	if from < 0 || size <= 0 {
		return nil, fmt.Errorf("service: %w - from must be >= 0 and size > 0", shareiterrors.ErrInvalidInput)
	}
	if err := s.requireUser(ctx, s.repo, userID); err != nil {
		return nil, fmt.Errorf("service: failed to list requests: %w", err)
	}

	requests, err := s.repo.ListRequestsExcept(ctx, userID, from, size)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list requests: %w", err)
	}

	if err := s.attachItems(ctx, requests); err != nil {
		return nil, fmt.Errorf("service: failed to list requests: %w", err)
	}
	return requests, nil
}

// GetRequest returns a request with the items created in answer to it
func (s *RequestService) GetRequest(ctx context.Context, userID, requestID int64) (models.ItemRequest, error) {
	if err := s.requireUser(ctx, s.repo, userID); err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to get request %d: %w", requestID, err)
	}

	request, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to get request %d: %w", requestID, err)
	}

	requests := []models.ItemRequest{request}
	if err := s.attachItems(ctx, requests); err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to get request %d: %w", requestID, err)
	}
	return requests[0], nil
}

// attachItems fills Items of every request with one batched lookup
func (s *RequestService) attachItems(ctx context.Context, requests []models.ItemRequest) error {
	if len(requests) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}

	items, err := s.repo.ListItemsByRequests(ctx, ids)
	if err != nil {
		return err
	}

	byRequest := make(map[int64][]models.Item, len(requests))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}

	for i := range requests {
		requests[i].Items = byRequest[requests[i].ID]
		if requests[i].Items == nil {
			requests[i].Items = []models.Item{}
		}
	}
	return nil
}

func (s *RequestService) requireUser(ctx context.Context, store repository.UserStore, userID int64) error {
	exists, err := store.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("user %d: %w", userID, shareiterrors.ErrUserNotFound)
	}
	return nil
}
