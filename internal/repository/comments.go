package repository

import (
	"context"
	"fmt"

	model "shareit/internal/models"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
)

type commentRow struct {
	ID         int64  `db:"id"`
	Text       string `db:"text"`
	ItemID     int64  `db:"item_id"`
	AuthorID   int64  `db:"author_id"`
	AuthorName string `db:"author_name"`
	Created    int64  `db:"created"`
}

// CreateComment inserts a comment and sets its generated ID
func (s *SQLStore) CreateComment(ctx context.Context, comment *model.Comment) (err error) {
	ctx, span := s.startSpan(ctx, "CreateComment",
		attribute.Int64("item.id", comment.ItemID),
		attribute.Int64("author.id", comment.AuthorID),
	)
	defer func() { endSpan(span, err) }()

	query := s.db.Rebind(`INSERT INTO comments (text, item_id, author_id, created) VALUES (?, ?, ?, ?) RETURNING id`)
	err = sqlx.GetContext(ctx, s.q, &comment.ID, query,
		comment.Text, comment.ItemID, comment.AuthorID, toMillis(comment.Created))
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// ListCommentsByItems returns the comments of the items, oldest first, with author names
func (s *SQLStore) ListCommentsByItems(ctx context.Context, itemIDs []int64) (comments []model.Comment, err error) {
	if len(itemIDs) == 0 {
		return []model.Comment{}, nil
	}

	ctx, span := s.startSpan(ctx, "ListCommentsByItems", attribute.Int("item.count", len(itemIDs)))
	defer func() { endSpan(span, err) }()

	query, args, err := sqlx.In(`SELECT c.id, c.text, c.item_id, c.author_id, u.name AS author_name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id IN (?)
		ORDER BY c.created, c.id`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	var rows []commentRow
	if err = sqlx.SelectContext(ctx, s.q, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments = make([]model.Comment, 0, len(rows))
	for _, r := range rows {
		comments = append(comments, model.Comment{
			ID:         r.ID,
			ItemID:     r.ItemID,
			AuthorID:   r.AuthorID,
			AuthorName: r.AuthorName,
			Text:       r.Text,
			Created:    fromMillis(r.Created),
		})
	}
	return comments, nil
}
