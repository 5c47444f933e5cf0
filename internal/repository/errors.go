// Package repository contains the data access layer, separated from HTTP
// handlers. Each aggregate gets its own repository struct over *sql.DB with
// raw SQL. This file defines sentinel error values reused across multiple
// repositories so handlers can distinguish failure scenarios without
// inspecting driver errors.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an update or delete cannot proceed because of
// dependent state, such as deleting a campsite that still has reservations.
// Handlers translate this into HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrOverlap is returned when inserting a reservation whose night interval
// shares at least one night with an existing reservation for the same site.
// This check at write time is the authoritative double-booking rejection;
// the shopper-facing availability filter only guarantees availability at
// read time.
var ErrOverlap = errors.New("reservation overlaps an existing booking")

// Not-found sentinels, one per aggregate.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrCampgroundNotFound  = errors.New("campground not found")
	ErrCampsiteNotFound    = errors.New("campsite not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrCartItemNotFound    = errors.New("cart item not found")
)
