package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/eventgrounds/campsite-booking/internal/model"
)

// CampgroundRepo encapsulates database queries for campgrounds. A campground
// is a named collection of campsites sharing one map image and belongs to
// exactly one event.
type CampgroundRepo struct {
	db *sql.DB
}

// NewCampgroundRepo constructs a CampgroundRepo with the provided DB handle.
func NewCampgroundRepo(db *sql.DB) *CampgroundRepo { return &CampgroundRepo{db: db} }

const campgroundColumns = `id, event_id, name, map_image, created_at, updated_at`

func scanCampground(row interface{ Scan(...any) error }) (*model.Campground, error) {
	var (
		g        model.Campground
		mapImage sql.NullString
	)
	if err := row.Scan(&g.ID, &g.EventID, &g.Name, &mapImage, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	if mapImage.Valid {
		v := mapImage.String
		g.MapImage = &v
	}
	return &g, nil
}

// GetByID fetches a campground by its ID. ErrCampgroundNotFound is returned
// when no row exists.
func (r *CampgroundRepo) GetByID(ctx context.Context, id uint64) (*model.Campground, error) {
	const q = `SELECT ` + campgroundColumns + ` FROM campgrounds WHERE id = ?`
	g, err := scanCampground(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCampgroundNotFound
		}
		return nil, err
	}
	return g, nil
}

// ListByEvent returns all campgrounds of an event ordered by id.
func (r *CampgroundRepo) ListByEvent(ctx context.Context, eventID uint64) ([]*model.Campground, error) {
	const q = `SELECT ` + campgroundColumns + ` FROM campgrounds WHERE event_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Campground
	for rows.Next() {
		g, err := scanCampground(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new campground. On success the ID, CreatedAt and
// UpdatedAt fields are populated on the provided record.
func (r *CampgroundRepo) Create(ctx context.Context, g *model.Campground) error {
	const q = `INSERT INTO campgrounds (event_id, name, map_image) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, g.EventID, g.Name, g.MapImage)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	const sel = `SELECT created_at, updated_at FROM campgrounds WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, g.ID).Scan(&g.CreatedAt, &g.UpdatedAt)
}

// Update changes a campground's name and map image. It returns
// sql.ErrNoRows when no row is affected.
func (r *CampgroundRepo) Update(ctx context.Context, id uint64, name string, mapImage *string) error {
	const q = `UPDATE campgrounds
	           SET name = ?, map_image = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, name, mapImage, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a campground together with its campsites, their
// reservations and any cart entries pointing at them. The deletion runs in
// a transaction to maintain integrity. sql.ErrNoRows is returned when the
// campground does not exist.
func (r *CampgroundRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	var exists uint64
	if err = tx.QueryRowContext(ctx, `SELECT id FROM campgrounds WHERE id = ?`, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE ci FROM cart_items ci
		 JOIN campsites s ON s.id = ci.campsite_id
		 WHERE s.campground_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE res FROM reservations res
		 JOIN campsites s ON s.id = res.campsite_id
		 WHERE s.campground_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM campsites WHERE campground_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM campgrounds WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
