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

const requestColumns = `id, description, requestor_id, created`

type requestRow struct {
	ID          int64  `db:"id"`
	Description string `db:"description"`
	RequestorID int64  `db:"requestor_id"`
	Created     int64  `db:"created"`
}

func (r requestRow) toModel() model.ItemRequest {
	return model.ItemRequest{
		ID:          r.ID,
		Description: r.Description,
		RequestorID: r.RequestorID,
		Created:     fromMillis(r.Created),
	}
}

func requestsFromRows(rows []requestRow) []model.ItemRequest {
	requests := make([]model.ItemRequest, 0, len(rows))
	for _, r := range rows {
		requests = append(requests, r.toModel())
	}
	return requests
}

// CreateRequest inserts an item request and sets its generated ID
func (s *SQLStore) CreateRequest(ctx context.Context, request *model.ItemRequest) (err error) {
	ctx, span := s.startSpan(ctx, "CreateRequest", attribute.Int64("requestor.id", request.RequestorID))
	defer func() { endSpan(span, err) }()

	query := s.db.Rebind(`INSERT INTO requests (description, requestor_id, created) VALUES (?, ?, ?) RETURNING id`)
	err = sqlx.GetContext(ctx, s.q, &request.ID, query,
		request.Description, request.RequestorID, toMillis(request.Created))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return nil
}

// GetRequest returns an item request by ID, without its items
func (s *SQLStore) GetRequest(ctx context.Context, id int64) (request model.ItemRequest, err error) {
	ctx, span := s.startSpan(ctx, "GetRequest", attribute.Int64("request.id", id))
	defer func() { endSpan(span, err) }()

	var row requestRow
	query := s.db.Rebind(`SELECT ` + requestColumns + ` FROM requests WHERE id = ?`)
	if err = sqlx.GetContext(ctx, s.q, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ItemRequest{}, fmt.Errorf("get request %d: %w", id, shareiterrors.ErrRequestNotFound)
		}
		return model.ItemRequest{}, fmt.Errorf("get request %d: %w", id, err)
	}
	return row.toModel(), nil
}

// ListRequestsByRequestor returns the requestor's requests, newest first
func (s *SQLStore) ListRequestsByRequestor(ctx context.Context, requestorID int64) (requests []model.ItemRequest, err error) {
	ctx, span := s.startSpan(ctx, "ListRequestsByRequestor", attribute.Int64("requestor.id", requestorID))
	defer func() { endSpan(span, err) }()

	var rows []requestRow
	query := s.db.Rebind(`SELECT ` + requestColumns + ` FROM requests
		WHERE requestor_id = ? ORDER BY created DESC, id DESC`)
	if err = sqlx.SelectContext(ctx, s.q, &rows, query, requestorID); err != nil {
		return nil, fmt.Errorf("list requests of %d: %w", requestorID, err)
	}
	return requestsFromRows(rows), nil
}

// ListRequestsExcept returns one page of other users' requests, newest first
func (s *SQLStore) ListRequestsExcept(ctx context.Context, requestorID int64, offset, limit int) (requests []model.ItemRequest, err error) {
	ctx, span := s.startSpan(ctx, "ListRequestsExcept",
		attribute.Int64("requestor.id", requestorID),
		attribute.Int("page.offset", offset),
		attribute.Int("page.limit", limit),
	)
	defer func() { endSpan(span, err) }()

	var rows []requestRow
	query := s.db.Rebind(`SELECT ` + requestColumns + ` FROM requests
		WHERE requestor_id <> ? ORDER BY created DESC, id DESC LIMIT ? OFFSET ?`)
	if err = sqlx.SelectContext(ctx, s.q, &rows, query, requestorID, limit, offset); err != nil {
		return nil, fmt.Errorf("list requests except %d: %w", requestorID, err)
	}
	return requestsFromRows(rows), nil
}
