package model

import (
	"time"

	"github.com/eventgrounds/campsite-booking/internal/booking"
)

// Reservation status values. CONFIRMED reservations came through checkout
// or direct admin entry; CLAIM_PENDING rows were created by the legacy
// import and wait for a guest to claim them by token. Both states occupy
// their nights identically; the claim state is irrelevant to occupancy math.
const (
	ReservationConfirmed    = "CONFIRMED"
	ReservationClaimPending = "CLAIM_PENDING"
)

// Reservation records an existing commitment of one campsite for one
// half-open night interval [check_in, check_out). Multiple reservations may
// exist per site; the overlap constraint applied at creation time keeps
// them disjoint.
//
// Fields:
//  ID         – primary key identifier.
//  CampsiteID – site being occupied.
//  UserID     – guest who owns the booking (nil for unclaimed imports).
//  CheckIn    – first occupied night.
//  CheckOut   – exclusive end of the stay (checkout day is free).
//  Adults     – adult occupant count.
//  Children   – child occupant count.
//  Status     – CONFIRMED or CLAIM_PENDING.
//  ClaimToken – token for claiming a legacy-imported booking (nullable).
//  OrderRef   – external order reference from checkout (nullable).
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Reservation struct {
	ID         uint64       // reservations.id
	CampsiteID uint64       // reservations.campsite_id
	UserID     *uint64      // reservations.user_id (nullable)
	CheckIn    booking.Date // reservations.check_in (DATE)
	CheckOut   booking.Date // reservations.check_out (DATE)
	Adults     uint32       // reservations.adults
	Children   uint32       // reservations.children
	Status     string       // reservations.status
	ClaimToken *string      // reservations.claim_token (nullable)
	OrderRef   *string      // reservations.order_ref (nullable)
	CreatedAt  time.Time    // reservations.created_at
	UpdatedAt  time.Time    // reservations.updated_at
}

// Interval returns the reservation's night interval.
func (r *Reservation) Interval() booking.Interval {
	return booking.Interval{CheckIn: r.CheckIn, CheckOut: r.CheckOut}
}
