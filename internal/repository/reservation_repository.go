package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/eventgrounds/campsite-booking/internal/booking"
	"github.com/eventgrounds/campsite-booking/internal/model"
)

// ReservationRepo provides CRUD operations for reservations. check_in and
// check_out are DATE columns reduced to booking.Date on scan, so interval
// math operates on calendar dates only.
//
// The overlap check in CreateTx is the system's write-time double-booking
// authority: the shopper-facing availability filter reads an unlocked
// snapshot, so two carts can hold the same site and window at once, and the
// insert here is where the second one is rejected.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given
// database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions that
// span repositories.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

const reservationColumns = `id, campsite_id, user_id, check_in, check_out,
	adults, children, status, claim_token, order_ref, created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }) (*model.Reservation, error) {
	var (
		res                model.Reservation
		userID             sql.NullInt64
		checkIn, checkOut  time.Time
		claimTok, orderRef sql.NullString
	)
	if err := row.Scan(
		&res.ID, &res.CampsiteID, &userID, &checkIn, &checkOut,
		&res.Adults, &res.Children, &res.Status, &claimTok, &orderRef,
		&res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}
	res.CheckIn = booking.DateOf(checkIn)
	res.CheckOut = booking.DateOf(checkOut)
	if userID.Valid {
		v := uint64(userID.Int64)
		res.UserID = &v
	}
	if claimTok.Valid {
		v := claimTok.String
		res.ClaimToken = &v
	}
	if orderRef.Valid {
		v := orderRef.String
		res.OrderRef = &v
	}
	return &res, nil
}

// CreateTx inserts a reservation within an existing transaction after
// verifying that no committed reservation for the same site shares a night
// with it. The conflicting rows are read FOR UPDATE so two concurrent
// inserts for the same site serialize; the loser sees the winner's row and
// receives ErrOverlap. Half-open semantics make back-to-back stays legal:
// an existing check-out equal to the new check-in does not conflict.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const overlapQ = `SELECT COUNT(*) FROM reservations
	                  WHERE campsite_id = ? AND check_in < ? AND check_out > ?
	                  FOR UPDATE`
	var conflicts int
	if err := tx.QueryRowContext(ctx, overlapQ,
		res.CampsiteID, res.CheckOut.String(), res.CheckIn.String()).Scan(&conflicts); err != nil {
		return err
	}
	if conflicts > 0 {
		return ErrOverlap
	}
	const insQ = `INSERT INTO reservations
	              (campsite_id, user_id, check_in, check_out, adults, children, status, claim_token, order_ref)
	              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, insQ,
		res.CampsiteID, res.UserID, res.CheckIn.String(), res.CheckOut.String(),
		res.Adults, res.Children, res.Status, res.ClaimToken, res.OrderRef)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	const sel = `SELECT created_at, updated_at FROM reservations WHERE id = ?`
	return tx.QueryRowContext(ctx, sel, res.ID).Scan(&res.CreatedAt, &res.UpdatedAt)
}

// Create inserts a reservation in its own transaction. Convenience wrapper
// around CreateTx for callers that do not need a wider transaction scope.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := r.CreateTx(ctx, tx, res); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// IntervalsBySite returns the night intervals of all reservations for one
// campsite. This is the snapshot the occupancy aggregator and availability
// resolver compute over.
func (r *ReservationRepo) IntervalsBySite(ctx context.Context, campsiteID uint64) ([]booking.Interval, error) {
	const q = `SELECT check_in, check_out FROM reservations WHERE campsite_id = ? ORDER BY check_in`
	rows, err := r.db.QueryContext(ctx, q, campsiteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []booking.Interval
	for rows.Next() {
		var in, end time.Time
		if err := rows.Scan(&in, &end); err != nil {
			return nil, err
		}
		out = append(out, scanInterval(in, end))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// IntervalsByCampground returns every reservation interval for a
// campground's sites, grouped by campsite ID. One query serves the whole
// map view instead of one per site.
func (r *ReservationRepo) IntervalsByCampground(ctx context.Context, campgroundID uint64) (map[uint64][]booking.Interval, error) {
	const q = `SELECT res.campsite_id, res.check_in, res.check_out
	           FROM reservations res
	           JOIN campsites s ON s.id = res.campsite_id
	           WHERE s.campground_id = ?
	           ORDER BY res.campsite_id, res.check_in`
	rows, err := r.db.QueryContext(ctx, q, campgroundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[uint64][]booking.Interval)
	for rows.Next() {
		var (
			siteID  uint64
			in, end time.Time
		)
		if err := rows.Scan(&siteID, &in, &end); err != nil {
			return nil, err
		}
		out[siteID] = append(out[siteID], scanInterval(in, end))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// BookingDetail pairs a reservation with its site and campground labels for
// display to customers.
type BookingDetail struct {
	ID             uint64       `json:"id"`
	CampsiteID     uint64       `json:"campsite_id"`
	SiteLabel      string       `json:"site_label"`
	CampgroundID   uint64       `json:"campground_id"`
	CampgroundName string       `json:"campground_name"`
	CheckIn        booking.Date `json:"check_in"`
	CheckOut       booking.Date `json:"check_out"`
	Adults         uint32       `json:"adults"`
	Children       uint32       `json:"children"`
	Status         string       `json:"status"`
	OrderRef       *string      `json:"order_ref,omitempty"`
}

// ListByUser returns all bookings belonging to a user, newest first, with
// site and campground labels joined in. When no bookings exist an empty
// slice is returned.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	const q = `SELECT res.id, res.campsite_id, s.label, g.id, g.name,
	                  res.check_in, res.check_out, res.adults, res.children, res.status, res.order_ref
	           FROM reservations res
	           JOIN campsites s ON s.id = res.campsite_id
	           JOIN campgrounds g ON g.id = s.campground_id
	           WHERE res.user_id = ?
	           ORDER BY res.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]BookingDetail, 0)
	for rows.Next() {
		var (
			d        BookingDetail
			in, end  time.Time
			orderRef sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.CampsiteID, &d.SiteLabel, &d.CampgroundID, &d.CampgroundName,
			&in, &end, &d.Adults, &d.Children, &d.Status, &orderRef); err != nil {
			return nil, err
		}
		d.CheckIn = booking.DateOf(in)
		d.CheckOut = booking.DateOf(end)
		if orderRef.Valid {
			v := orderRef.String
			d.OrderRef = &v
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

// GetByIDForUser returns one reservation owned by the given user.
// ErrReservationNotFound covers both a missing row and a row owned by
// someone else, so the handler leaks no existence information.
func (r *ReservationRepo) GetByIDForUser(ctx context.Context, id, userID uint64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ? AND user_id = ?`
	res, err := scanReservation(r.db.QueryRowContext(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

// ListBySite returns all reservations for one campsite, earliest first.
// Used by admin reservation views.
func (r *ReservationRepo) ListBySite(ctx context.Context, campsiteID uint64) ([]*model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE campsite_id = ? ORDER BY check_in`
	rows, err := r.db.QueryContext(ctx, q, campsiteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Claim attaches a CLAIM_PENDING reservation to the claiming user and
// confirms it. ErrReservationNotFound is returned when the token does not
// match an unclaimed reservation.
func (r *ReservationRepo) Claim(ctx context.Context, claimToken string, userID uint64) (*model.Reservation, error) {
	var id uint64
	const find = `SELECT id FROM reservations WHERE claim_token = ? AND status = ?`
	if err := r.db.QueryRowContext(ctx, find, claimToken, model.ReservationClaimPending).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	const q = `UPDATE reservations
	           SET user_id = ?, status = ?, claim_token = NULL, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, q, userID, model.ReservationConfirmed, id, model.ReservationClaimPending)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrReservationNotFound
	}
	const sel = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	return scanReservation(r.db.QueryRowContext(ctx, sel, id))
}

// Delete removes a reservation by ID. sql.ErrNoRows is returned when it
// does not exist.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// scanInterval builds a booking.Interval from two scanned DATE columns.
func scanInterval(checkIn, checkOut time.Time) booking.Interval {
	return booking.Interval{CheckIn: booking.DateOf(checkIn), CheckOut: booking.DateOf(checkOut)}
}
