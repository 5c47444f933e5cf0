package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/eventgrounds/campsite-booking/internal/model"
)

// CampsiteRepo encapsulates database queries for campsites, including the
// rate card and map coordinate fields mutated by admin endpoints. The core
// never writes through this repository; it reads the latest committed
// snapshot for each request.
type CampsiteRepo struct {
	db *sql.DB
}

// NewCampsiteRepo constructs a CampsiteRepo bound to the given database.
func NewCampsiteRepo(db *sql.DB) *CampsiteRepo { return &CampsiteRepo{db: db} }

const campsiteColumns = `id, campground_id, label, powered, width_m, length_m,
	nightly_rate_cents, full_event_rate_cents, extra_adult_nightly_cents,
	extra_adult_full_event_cents, pos_x, pos_y, is_available, created_at, updated_at`

func scanCampsite(row interface{ Scan(...any) error }) (*model.Campsite, error) {
	var (
		s                       model.Campsite
		fullEvent, extraNightly sql.NullInt64
		extraFullEvent          sql.NullInt64
		posX, posY              sql.NullFloat64
	)
	if err := row.Scan(
		&s.ID, &s.CampgroundID, &s.Label, &s.Powered, &s.WidthM, &s.LengthM,
		&s.NightlyRateCents, &fullEvent, &extraNightly, &extraFullEvent,
		&posX, &posY, &s.IsAvailable, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if fullEvent.Valid {
		v := uint32(fullEvent.Int64)
		s.FullEventRateCents = &v
	}
	if extraNightly.Valid {
		v := uint32(extraNightly.Int64)
		s.ExtraAdultNightlyCents = &v
	}
	if extraFullEvent.Valid {
		v := uint32(extraFullEvent.Int64)
		s.ExtraAdultFullEventCents = &v
	}
	if posX.Valid {
		v := posX.Float64
		s.PosX = &v
	}
	if posY.Valid {
		v := posY.Float64
		s.PosY = &v
	}
	return &s, nil
}

// GetByID fetches a campsite by its ID. ErrCampsiteNotFound is returned
// when no row exists.
func (r *CampsiteRepo) GetByID(ctx context.Context, id uint64) (*model.Campsite, error) {
	const q = `SELECT ` + campsiteColumns + ` FROM campsites WHERE id = ?`
	s, err := scanCampsite(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCampsiteNotFound
		}
		return nil, err
	}
	return s, nil
}

// ListByCampground returns all campsites of a campground ordered by label so
// list and map views render deterministically.
func (r *CampsiteRepo) ListByCampground(ctx context.Context, campgroundID uint64) ([]*model.Campsite, error) {
	const q = `SELECT ` + campsiteColumns + ` FROM campsites WHERE campground_id = ? ORDER BY label`
	rows, err := r.db.QueryContext(ctx, q, campgroundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Campsite
	for rows.Next() {
		s, err := scanCampsite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new campsite. On success the generated ID and timestamp
// fields are populated on the provided record.
func (r *CampsiteRepo) Create(ctx context.Context, s *model.Campsite) error {
	const q = `INSERT INTO campsites
	           (campground_id, label, powered, width_m, length_m,
	            nightly_rate_cents, full_event_rate_cents, extra_adult_nightly_cents,
	            extra_adult_full_event_cents, pos_x, pos_y, is_available)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		s.CampgroundID, s.Label, s.Powered, s.WidthM, s.LengthM,
		s.NightlyRateCents, nullableCents(s.FullEventRateCents),
		nullableCents(s.ExtraAdultNightlyCents), nullableCents(s.ExtraAdultFullEventCents),
		s.PosX, s.PosY, s.IsAvailable)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	const sel = `SELECT created_at, updated_at FROM campsites WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, s.ID).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// Update rewrites a campsite's editable fields: label, powered flag,
// dimensions, the full rate card and the on-sale flag. Coordinates are
// updated separately via SetPosition. sql.ErrNoRows is returned when no row
// is affected.
func (r *CampsiteRepo) Update(ctx context.Context, s *model.Campsite) error {
	const q = `UPDATE campsites
	           SET label = ?, powered = ?, width_m = ?, length_m = ?,
	               nightly_rate_cents = ?, full_event_rate_cents = ?,
	               extra_adult_nightly_cents = ?, extra_adult_full_event_cents = ?,
	               is_available = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		s.Label, s.Powered, s.WidthM, s.LengthM,
		s.NightlyRateCents, nullableCents(s.FullEventRateCents),
		nullableCents(s.ExtraAdultNightlyCents), nullableCents(s.ExtraAdultFullEventCents),
		s.IsAvailable, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetPosition places or moves a campsite on the campground map. Coordinates
// are percentages of the map image; passing nils clears the placement.
func (r *CampsiteRepo) SetPosition(ctx context.Context, id uint64, posX, posY *float64) error {
	const q = `UPDATE campsites SET pos_x = ?, pos_y = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, posX, posY, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetAvailability flips the admin on-sale flag without touching the rest of
// the record.
func (r *CampsiteRepo) SetAvailability(ctx context.Context, id uint64, available bool) error {
	const q = `UPDATE campsites SET is_available = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, available, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a campsite. ErrConflict is returned when reservations still
// reference the site; sql.ErrNoRows when it does not exist.
func (r *CampsiteRepo) Delete(ctx context.Context, id uint64) error {
	var count int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations WHERE campsite_id = ?`, id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM campsites WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// nullableCents maps an optional rate to its SQL representation.
func nullableCents(v *uint32) any {
	if v == nil {
		return nil
	}
	return *v
}
