package model

import (
	"time"

	"github.com/eventgrounds/campsite-booking/internal/booking"
)

// Campsite describes one bookable physical site inside a campground. The
// rate fields form the site's rate card; pointers are nil when the site does
// not offer the corresponding rate. Map coordinates are percentages of the
// campground map image and stay nil until an admin places the site.
//
// Fields:
//  ID                       – primary key identifier.
//  CampgroundID             – campground this site belongs to.
//  Label                    – alphanumeric site number, e.g. "A10".
//  Powered                  – whether the site has a power hookup.
//  WidthM, LengthM          – site dimensions in metres.
//  NightlyRateCents         – base per-night rate in cents.
//  FullEventRateCents       – flat package rate (nil: package not offered).
//  ExtraAdultNightlyCents   – per-extra-adult nightly surcharge (nil: 0).
//  ExtraAdultFullEventCents – per-extra-adult package surcharge (nil: 0).
//  PosX, PosY               – percentage map coordinates (nil until placed).
//  IsAvailable              – admin on-sale flag, independent of bookings.
//  CreatedAt                – creation timestamp.
//  UpdatedAt                – last update timestamp.
type Campsite struct {
	ID                       uint64    // campsites.id
	CampgroundID             uint64    // campsites.campground_id
	Label                    string    // campsites.label
	Powered                  bool      // campsites.powered
	WidthM                   float64   // campsites.width_m
	LengthM                  float64   // campsites.length_m
	NightlyRateCents         uint32    // campsites.nightly_rate_cents
	FullEventRateCents       *uint32   // campsites.full_event_rate_cents (nullable)
	ExtraAdultNightlyCents   *uint32   // campsites.extra_adult_nightly_cents (nullable)
	ExtraAdultFullEventCents *uint32   // campsites.extra_adult_full_event_cents (nullable)
	PosX                     *float64  // campsites.pos_x (nullable, percent)
	PosY                     *float64  // campsites.pos_y (nullable, percent)
	IsAvailable              bool      // campsites.is_available
	CreatedAt                time.Time // campsites.created_at
	UpdatedAt                time.Time // campsites.updated_at
}

// RateCard projects the site's pricing fields into the core's rate card
// shape.
func (s *Campsite) RateCard() booking.RateCard {
	return booking.RateCard{
		NightlyCents:             s.NightlyRateCents,
		FullEventCents:           s.FullEventRateCents,
		ExtraAdultNightlyCents:   s.ExtraAdultNightlyCents,
		ExtraAdultFullEventCents: s.ExtraAdultFullEventCents,
	}
}
