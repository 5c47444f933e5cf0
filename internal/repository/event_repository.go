package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/eventgrounds/campsite-booking/internal/booking"
	"github.com/eventgrounds/campsite-booking/internal/model"
)

// EventRepo encapsulates database queries for events. Date-only columns are
// reduced to booking.Date on scan so no time-of-day component ever enters
// the occupancy math.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo bound to the given database.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func scanEvent(row interface{ Scan(...any) error }) (*model.Event, error) {
	var (
		e                                  model.Event
		startsOn, endsOn, openFrom, openTo time.Time
	)
	if err := row.Scan(&e.ID, &e.Name, &startsOn, &endsOn, &openFrom, &openTo, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.StartsOn = booking.DateOf(startsOn)
	e.EndsOn = booking.DateOf(endsOn)
	e.OpenFrom = booking.DateOf(openFrom)
	e.OpenUntil = booking.DateOf(openTo)
	return &e, nil
}

const eventColumns = `id, name, starts_on, ends_on, open_from, open_until, created_at, updated_at`

// GetByID fetches an event by its ID. ErrEventNotFound is returned when no
// row exists.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	e, err := scanEvent(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

// ListAll returns all events ordered by start date descending (newest
// edition first). Used by the public browse API.
func (r *EventRepo) ListAll(ctx context.Context) ([]*model.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events ORDER BY starts_on DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetForCampground resolves the event a campground belongs to. Handlers use
// this to obtain the core window and extended bounds for a campground's
// sites in one query. ErrCampgroundNotFound is returned when the campground
// does not exist.
func (r *EventRepo) GetForCampground(ctx context.Context, campgroundID uint64) (*model.Event, error) {
	const q = `SELECT e.id, e.name, e.starts_on, e.ends_on, e.open_from, e.open_until, e.created_at, e.updated_at
	           FROM events e
	           JOIN campgrounds g ON g.event_id = e.id
	           WHERE g.id = ?`
	e, err := scanEvent(r.db.QueryRowContext(ctx, q, campgroundID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCampgroundNotFound
		}
		return nil, err
	}
	return e, nil
}

// Create inserts a new event and populates the generated ID and timestamp
// fields on the provided record.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	const q = `INSERT INTO events (name, starts_on, ends_on, open_from, open_until) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		e.Name, e.StartsOn.String(), e.EndsOn.String(), e.OpenFrom.String(), e.OpenUntil.String())
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	const sel = `SELECT created_at, updated_at FROM events WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, e.ID).Scan(&e.CreatedAt, &e.UpdatedAt)
}

// UpdateWindows updates an event's core window and extended bounds. It
// returns sql.ErrNoRows when the event does not exist.
func (r *EventRepo) UpdateWindows(ctx context.Context, id uint64, startsOn, endsOn, openFrom, openUntil booking.Date) error {
	const q = `UPDATE events
	           SET starts_on = ?, ends_on = ?, open_from = ?, open_until = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		startsOn.String(), endsOn.String(), openFrom.String(), openUntil.String(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
