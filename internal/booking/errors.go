// Package booking implements the campsite availability and pricing core.
// Everything in this package is pure, synchronous computation over snapshots
// passed in by the caller: night-interval math, per-night occupancy
// aggregation, exact-window availability filtering and stay pricing. The
// package never touches storage, never retries and never logs; failures are
// reported as sentinel error values which handlers translate into HTTP
// responses.
package booking

import "errors"

// ErrInvalidRange is returned when a stay request's check-out date is not
// strictly after its check-in date. Zero-length and inverted windows are
// rejected here before any occupancy or pricing computation runs.
var ErrInvalidRange = errors.New("check-out must be after check-in")

// ErrInvalidOccupancy is returned when a stay request carries fewer than one
// adult. The base rate always covers exactly one adult, so a booking without
// any adult cannot be priced.
var ErrInvalidOccupancy = errors.New("at least one adult is required")
