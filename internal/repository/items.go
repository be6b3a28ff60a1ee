package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	model "shareit/internal/models"
	"shareit/internal/shareiterrors"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
)

const itemColumns = `id, name, description, available, owner_id, request_id`

type itemRow struct {
	ID          int64         `db:"id"`
	Name        string        `db:"name"`
	Description string        `db:"description"`
	Available   bool          `db:"available"`
	OwnerID     int64         `db:"owner_id"`
	RequestID   sql.NullInt64 `db:"request_id"`
}

func (r itemRow) toModel() model.Item {
	item := model.Item{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
		OwnerID:     r.OwnerID,
	}
	if r.RequestID.Valid {
		id := r.RequestID.Int64
		item.RequestID = &id
	}
	return item
}

func itemsFromRows(rows []itemRow) []model.Item {
	items := make([]model.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toModel())
	}
	return items
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

// CreateItem inserts an item and sets its generated ID
func (s *SQLStore) CreateItem(ctx context.Context, item *model.Item) (err error) {
	ctx, span := s.startSpan(ctx, "CreateItem", attribute.Int64("owner.id", item.OwnerID))
	defer func() { endSpan(span, err) }()

	query := s.db.Rebind(`INSERT INTO items (name, description, available, owner_id, request_id)
		VALUES (?, ?, ?, ?, ?) RETURNING id`)
	err = sqlx.GetContext(ctx, s.q, &item.ID, query,
		item.Name, item.Description, item.Available, item.OwnerID, nullableID(item.RequestID))
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetItem returns an item by ID
func (s *SQLStore) GetItem(ctx context.Context, id int64) (item model.Item, err error) {
	ctx, span := s.startSpan(ctx, "GetItem", attribute.Int64("item.id", id))
	defer func() { endSpan(span, err) }()

	var row itemRow
	query := s.db.Rebind(`SELECT ` + itemColumns + ` FROM items WHERE id = ?`)
	if err = sqlx.GetContext(ctx, s.q, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, fmt.Errorf("get item %d: %w", id, shareiterrors.ErrItemNotFound)
		}
		return model.Item{}, fmt.Errorf("get item %d: %w", id, err)
	}
	return row.toModel(), nil
}

// UpdateItem overwrites the mutable fields of an existing item
func (s *SQLStore) UpdateItem(ctx context.Context, item model.Item) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateItem", attribute.Int64("item.id", item.ID))
	defer func() { endSpan(span, err) }()

	query := s.db.Rebind(`UPDATE items SET name = ?, description = ?, available = ? WHERE id = ?`)
	res, err := s.q.ExecContext(ctx, query, item.Name, item.Description, item.Available, item.ID)
	if err != nil {
		return fmt.Errorf("update item %d: %w", item.ID, err)
	}
	return requireAffected(res, fmt.Sprintf("update item %d", item.ID), shareiterrors.ErrItemNotFound)
}

// DeleteItem removes an item by ID. Deleting a missing item is not an error.
func (s *SQLStore) DeleteItem(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteItem", attribute.Int64("item.id", id))
	defer func() { endSpan(span, err) }()

	if _, err = s.q.ExecContext(ctx, s.db.Rebind(`DELETE FROM items WHERE id = ?`), id); err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	return nil
}

// ListItemsByOwner returns the owner's items ordered by ID
func (s *SQLStore) ListItemsByOwner(ctx context.Context, ownerID int64) (items []model.Item, err error) {
	ctx, span := s.startSpan(ctx, "ListItemsByOwner", attribute.Int64("owner.id", ownerID))
	defer func() { endSpan(span, err) }()

	var rows []itemRow
	query := s.db.Rebind(`SELECT ` + itemColumns + ` FROM items WHERE owner_id = ? ORDER BY id`)
	if err = sqlx.SelectContext(ctx, s.q, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("list items of owner %d: %w", ownerID, err)
	}
	return itemsFromRows(rows), nil
}

// SearchAvailableItems returns available items whose name or description
// contains text, ignoring case
func (s *SQLStore) SearchAvailableItems(ctx context.Context, text string) (items []model.Item, err error) {
	ctx, span := s.startSpan(ctx, "SearchAvailableItems")
	defer func() { endSpan(span, err) }()

	pattern := "%" + escapeLike(strings.ToLower(text)) + "%"
	lower := s.lowerFunc()
	query := s.db.Rebind(`SELECT ` + itemColumns + ` FROM items
		WHERE available = ?
		AND (` + lower + `(name) LIKE ? ESCAPE '\' OR ` + lower + `(description) LIKE ? ESCAPE '\')
		ORDER BY id`)

	var rows []itemRow
	if err = sqlx.SelectContext(ctx, s.q, &rows, query, true, pattern, pattern); err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return itemsFromRows(rows), nil
}

// ListItemsByRequests returns the items created in answer to any of the requests
func (s *SQLStore) ListItemsByRequests(ctx context.Context, requestIDs []int64) (items []model.Item, err error) {
	if len(requestIDs) == 0 {
		return []model.Item{}, nil
	}

	ctx, span := s.startSpan(ctx, "ListItemsByRequests", attribute.Int("request.count", len(requestIDs)))
	defer func() { endSpan(span, err) }()

	query, args, err := sqlx.In(`SELECT `+itemColumns+` FROM items WHERE request_id IN (?) ORDER BY id`, requestIDs)
	if err != nil {
		return nil, fmt.Errorf("list items by requests: %w", err)
	}

	var rows []itemRow
	if err = sqlx.SelectContext(ctx, s.q, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list items by requests: %w", err)
	}
	return itemsFromRows(rows), nil
}
