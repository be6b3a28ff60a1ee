package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shareit/internal/models"
	"shareit/internal/repository"
	"shareit/internal/shareiterrors"
)

// ItemService defines the business logic for items, comments and search
type ItemService struct {
	repo repository.ShareItDB
	now  func() time.Time
}

// NewItemService creates a new ItemService instance
func NewItemService(repo repository.ShareItDB) *ItemService {
	return &ItemService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source; used by tests
func (s *ItemService) WithClock(now func() time.Time) *ItemService {
	s.now = now
	return s
}

// CreateItem stores a new item owned by ownerID
func (s *ItemService) CreateItem(ctx context.Context, ownerID int64, item models.Item) (models.Item, error) {
	item.OwnerID = ownerID

	err := s.repo.WithinTx(ctx, func(tx repository.ShareItDB) error {
		if err := requireUser(ctx, tx, ownerID); err != nil {
			return err
		}
		if item.RequestID != nil {
			if _, err := tx.GetRequest(ctx, *item.RequestID); err != nil {
				return err
			}
		}
		return tx.CreateItem(ctx, &item)
	})
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to create item for user %d: %w", ownerID, err)
	}

	return item, nil
}

// UpdateItem applies the present fields of patch to an item owned by userID
func (s *ItemService) UpdateItem(ctx context.Context, userID, itemID int64, patch models.ItemPatch) (models.Item, error) {
	var updated models.Item

	err := s.repo.WithinTx(ctx, func(tx repository.ShareItDB) error {
		if err := requireUser(ctx, tx, userID); err != nil {
			return err
		}

		item, err := tx.GetItem(ctx, itemID)
		if err != nil {
			return err
		}
		if item.OwnerID != userID {
			return fmt.Errorf("%w: item %d, user %d", shareiterrors.ErrNotOwner, itemID, userID)
		}

		patch.Apply(&item)
		if err := tx.UpdateItem(ctx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to update item %d: %w", itemID, err)
	}

	return updated, nil
}

// GetItem returns an item with its comments. The owner also sees the
// last and next booking dates.
func (s *ItemService) GetItem(ctx context.Context, userID, itemID int64) (models.ItemDetails, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return models.ItemDetails{}, fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}

	details, err := s.enrich(ctx, []models.Item{item}, item.OwnerID == userID)
	if err != nil {
		return models.ItemDetails{}, fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}

	return details[0], nil
}

// ListUserItems returns the items owned by userID, each with booking dates and comments
func (s *ItemService) ListUserItems(ctx context.Context, userID int64) ([]models.ItemDetails, error) {
	if err := requireUser(ctx, s.repo, userID); err != nil {
		return nil, fmt.Errorf("service: failed to list items of user %d: %w", userID, err)
	}

	items, err := s.repo.ListItemsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items of user %d: %w", userID, err)
	}

	details, err := s.enrich(ctx, items, true)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items of user %d: %w", userID, err)
	}

	return details, nil
}

// SearchItems returns available items matching text. Blank text matches nothing.
func (s *ItemService) SearchItems(ctx context.Context, text string) ([]models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []models.Item{}, nil
	}

	items, err := s.repo.SearchAvailableItems(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search items: %w", err)
	}
	return items, nil
}

// AddComment stores a comment by a user who has finished a booking of the item
func (s *ItemService) AddComment(ctx context.Context, userID, itemID int64, text string) (models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return models.Comment{}, fmt.Errorf("service: %w - empty comment", shareiterrors.ErrInvalidInput)
	}

	var comment models.Comment

	err := s.repo.WithinTx(ctx, func(tx repository.ShareItDB) error {
		author, err := tx.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		if _, err := tx.GetItem(ctx, itemID); err != nil {
			return err
		}

		now := s.now()
		booked, err := tx.HasFinishedBooking(ctx, userID, itemID, now)
		if err != nil {
			return err
		}
		if !booked {
			return fmt.Errorf("%w: item %d, user %d", shareiterrors.ErrNotBooked, itemID, userID)
		}

		comment = models.Comment{
			ItemID:     itemID,
			AuthorID:   userID,
			AuthorName: author.Name,
			Text:       text,
			Created:    now,
		}
		return tx.CreateComment(ctx, &comment)
	})
	if err != nil {
		return models.Comment{}, fmt.Errorf("service: failed to comment item %d: %w", itemID, err)
	}

	return comment, nil
}

// DeleteItem removes an item by ID
func (s *ItemService) DeleteItem(ctx context.Context, itemID int64) error {
	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("service: failed to delete item %d: %w", itemID, err)
	}
	return nil
}

// enrich attaches comments to every item and, for owners, the booking dates
func (s *ItemService) enrich(ctx context.Context, items []models.Item, owner bool) ([]models.ItemDetails, error) {
	details := make([]models.ItemDetails, 0, len(items))
	if len(items) == 0 {
		return details, nil
	}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	comments, err := s.repo.ListCommentsByItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	byItem := make(map[int64][]models.Comment, len(items))
	for _, c := range comments {
		byItem[c.ItemID] = append(byItem[c.ItemID], c)
	}

	var dates map[int64]repository.ItemBookingDates
	if owner {
		dates, err = s.repo.BookingDates(ctx, ids, s.now())
		if err != nil {
			return nil, err
		}
	}

	for _, it := range items {
		d := models.ItemDetails{Item: it, Comments: byItem[it.ID]}
		if d.Comments == nil {
			d.Comments = []models.Comment{}
		}
		if bd, ok := dates[it.ID]; ok {
			d.LastBooking = bd.LastEnd
			d.NextBooking = bd.NextStart
		}
		details = append(details, d)
	}
	return details, nil
}

func requireUser(ctx context.Context, store repository.UserStore, userID int64) error {
	exists, err := store.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("user %d: %w", userID, shareiterrors.ErrUserNotFound)
	}
	return nil
}
