package model

import (
	"time"

	"github.com/eventgrounds/campsite-booking/internal/booking"
)

// Event represents one recurring multi-day gathering. The core window
// (StartsOn..EndsOn) is what Booked/Partial classification is computed
// against; the extended bounds (OpenFrom..OpenUntil) may be wider to admit
// early arrivals and late departures, and shopper stay requests must fall
// inside them. Both windows are tracked separately because a candidate stay
// can extend beyond the core window while classification never does.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the event edition.
//  StartsOn  – first night of the core window.
//  EndsOn    – exclusive end of the core window (checkout day).
//  OpenFrom  – earliest allowed check-in (extended bounds).
//  OpenUntil – latest allowed check-out (extended bounds).
//  CreatedAt – timestamp when the event was created.
//  UpdatedAt – timestamp of last update.
type Event struct {
	ID        uint64       // events.id
	Name      string       // events.name
	StartsOn  booking.Date // events.starts_on (DATE)
	EndsOn    booking.Date // events.ends_on (DATE)
	OpenFrom  booking.Date // events.open_from (DATE)
	OpenUntil booking.Date // events.open_until (DATE)
	CreatedAt time.Time    // events.created_at
	UpdatedAt time.Time    // events.updated_at
}

// CoreWindow returns the canonical event window used for status
// classification.
func (e *Event) CoreWindow() booking.Interval {
	return booking.Interval{CheckIn: e.StartsOn, CheckOut: e.EndsOn}
}

// ExtendedBounds returns the wider bounds a shopper may request a stay
// within.
func (e *Event) ExtendedBounds() booking.Interval {
	return booking.Interval{CheckIn: e.OpenFrom, CheckOut: e.OpenUntil}
}
