package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	model "shareit/internal/models"
	"shareit/internal/shareiterrors"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
)

const bookingSelect = `SELECT b.id, b.start_date, b.end_date, b.status,
	i.id AS item_id, i.name AS item_name, i.description AS item_description,
	i.available AS item_available, i.owner_id AS item_owner_id, i.request_id AS item_request_id,
	u.id AS booker_id, u.name AS booker_name, u.email AS booker_email
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

type bookingRow struct {
	ID              int64         `db:"id"`
	Start           int64         `db:"start_date"`
	End             int64         `db:"end_date"`
	Status          string        `db:"status"`
	ItemID          int64         `db:"item_id"`
	ItemName        string        `db:"item_name"`
	ItemDescription string        `db:"item_description"`
	ItemAvailable   bool          `db:"item_available"`
	ItemOwnerID     int64         `db:"item_owner_id"`
	ItemRequestID   sql.NullInt64 `db:"item_request_id"`
	BookerID        int64         `db:"booker_id"`
	BookerName      string        `db:"booker_name"`
	BookerEmail     string        `db:"booker_email"`
}

func (r bookingRow) toModel() model.Booking {
	item := itemRow{
		ID:          r.ItemID,
		Name:        r.ItemName,
		Description: r.ItemDescription,
		Available:   r.ItemAvailable,
		OwnerID:     r.ItemOwnerID,
		RequestID:   r.ItemRequestID,
	}
	return model.Booking{
		ID:     r.ID,
		Item:   item.toModel(),
		Booker: model.User{ID: r.BookerID, Name: r.BookerName, Email: r.BookerEmail},
		Start:  fromMillis(r.Start),
		End:    fromMillis(r.End),
		Status: model.BookingStatus(r.Status),
	}
}

// CreateBooking inserts a booking of booking.Item by booking.Booker and sets its generated ID
func (s *SQLStore) CreateBooking(ctx context.Context, booking *model.Booking) (err error) {
	ctx, span := s.startSpan(ctx, "CreateBooking",
		attribute.Int64("item.id", booking.Item.ID),
		attribute.Int64("booker.id", booking.Booker.ID),
	)
	defer func() { endSpan(span, err) }()

	query := s.db.Rebind(`INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES (?, ?, ?, ?, ?) RETURNING id`)
	err = sqlx.GetContext(ctx, s.q, &booking.ID, query,
		toMillis(booking.Start), toMillis(booking.End), booking.Item.ID, booking.Booker.ID, string(booking.Status))
	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

// GetBooking returns a booking with its item and booker
func (s *SQLStore) GetBooking(ctx context.Context, id int64) (booking model.Booking, err error) {
	ctx, span := s.startSpan(ctx, "GetBooking", attribute.Int64("booking.id", id))
	defer func() { endSpan(span, err) }()

	var row bookingRow
	if err = sqlx.GetContext(ctx, s.q, &row, s.db.Rebind(bookingSelect+` WHERE b.id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, fmt.Errorf("get booking %d: %w", id, shareiterrors.ErrBookingNotFound)
		}
		return model.Booking{}, fmt.Errorf("get booking %d: %w", id, err)
	}
	return row.toModel(), nil
}

// UpdateBookingStatus decides a WAITING booking. A booking that is no longer
// WAITING is left untouched and reported as ErrBookingDecided.
func (s *SQLStore) UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateBookingStatus",
		attribute.Int64("booking.id", id),
		attribute.String("booking.status", string(status)),
	)
	defer func() { endSpan(span, err) }()

	res, err := s.q.ExecContext(ctx, s.db.Rebind(`UPDATE bookings SET status = ? WHERE id = ? AND status = ?`),
		string(status), id, string(model.StatusWaiting))
	if err != nil {
		return fmt.Errorf("update booking %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update booking %d: %w", id, err)
	}
	if n > 0 {
		return nil
	}

	// nothing changed: either the booking is gone or someone decided it first
	var exists bool
	if err = sqlx.GetContext(ctx, s.q, &exists, s.db.Rebind(`SELECT EXISTS (SELECT 1 FROM bookings WHERE id = ?)`), id); err != nil {
		return fmt.Errorf("update booking %d: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("update booking %d: %w", id, shareiterrors.ErrBookingNotFound)
	}
	return fmt.Errorf("update booking %d: %w", id, shareiterrors.ErrBookingDecided)
}

// FindBookings returns the bookings matching the filter, newest start first
func (s *SQLStore) FindBookings(ctx context.Context, filter BookingFilter) (bookings []model.Booking, err error) {
	ctx, span := s.startSpan(ctx, "FindBookings",
		attribute.Int64("booker.id", filter.BookerID),
		attribute.Int64("owner.id", filter.OwnerID),
		attribute.Int("page.offset", filter.Offset),
		attribute.Int("page.limit", filter.Limit),
	)
	defer func() { endSpan(span, err) }()

	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		conds = append(conds, cond)
		args = append(args, arg)
	}

	if filter.BookerID != 0 {
		add("b.booker_id = ?", filter.BookerID)
	}
	if filter.OwnerID != 0 {
		add("i.owner_id = ?", filter.OwnerID)
	}
	if filter.Status != "" {
		add("b.status = ?", string(filter.Status))
	}
	if filter.StartNotAfter != nil {
		add("b.start_date <= ?", toMillis(*filter.StartNotAfter))
	}
	if filter.StartAfter != nil {
		add("b.start_date > ?", toMillis(*filter.StartAfter))
	}
	if filter.EndNotBefore != nil {
		add("b.end_date >= ?", toMillis(*filter.EndNotBefore))
	}
	if filter.EndBefore != nil {
		add("b.end_date < ?", toMillis(*filter.EndBefore))
	}

	query := bookingSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY b.start_date DESC, b.id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset)

	var rows []bookingRow
	if err = sqlx.SelectContext(ctx, s.q, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}

	bookings = make([]model.Booking, 0, len(rows))
	for _, r := range rows {
		bookings = append(bookings, r.toModel())
	}
	return bookings, nil
}

// BookingDates computes, per item, the latest end among bookings already
// finished at now and the earliest start among bookings not yet started.
// Items without such bookings are absent from the map.
func (s *SQLStore) BookingDates(ctx context.Context, itemIDs []int64, now time.Time) (dates map[int64]ItemBookingDates, err error) {
	dates = make(map[int64]ItemBookingDates, len(itemIDs))
	if len(itemIDs) == 0 {
		return dates, nil
	}

	ctx, span := s.startSpan(ctx, "BookingDates", attribute.Int("item.count", len(itemIDs)))
	defer func() { endSpan(span, err) }()

	nowMs := toMillis(now)
	query, args, err := sqlx.In(`SELECT item_id,
		MAX(CASE WHEN end_date < ? THEN end_date END) AS last_end,
		MIN(CASE WHEN start_date > ? THEN start_date END) AS next_start
		FROM bookings
		WHERE item_id IN (?)
		GROUP BY item_id`, nowMs, nowMs, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("booking dates: %w", err)
	}

	var rows []struct {
		ItemID    int64         `db:"item_id"`
		LastEnd   sql.NullInt64 `db:"last_end"`
		NextStart sql.NullInt64 `db:"next_start"`
	}
	if err = sqlx.SelectContext(ctx, s.q, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("booking dates: %w", err)
	}

	for _, r := range rows {
		var d ItemBookingDates
		if r.LastEnd.Valid {
			t := fromMillis(r.LastEnd.Int64)
			d.LastEnd = &t
		}
		if r.NextStart.Valid {
			t := fromMillis(r.NextStart.Int64)
			d.NextStart = &t
		}
		if d.LastEnd != nil || d.NextStart != nil {
			dates[r.ItemID] = d
		}
	}
	return dates, nil
}

// HasFinishedBooking reports whether the booker has a booking of the item that ended before now
func (s *SQLStore) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (found bool, err error) {
	ctx, span := s.startSpan(ctx, "HasFinishedBooking",
		attribute.Int64("booker.id", bookerID),
		attribute.Int64("item.id", itemID),
	)
	defer func() { endSpan(span, err) }()

	query := s.db.Rebind(`SELECT EXISTS (
		SELECT 1 FROM bookings WHERE booker_id = ? AND item_id = ? AND end_date < ?)`)
	if err = sqlx.GetContext(ctx, s.q, &found, query, bookerID, itemID, toMillis(now)); err != nil {
		return false, fmt.Errorf("check finished booking: %w", err)
	}
	return found, nil
}
