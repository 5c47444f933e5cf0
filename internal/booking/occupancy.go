package booking

import "iter"

// SiteStatus classifies a campsite for display against an event's core
// window. The values are stable strings stored nowhere but exposed over the
// JSON API, so map and list views can colour sites without re-deriving the
// math client-side.
type SiteStatus string

const (
	// StatusBooked means every night of the core window is occupied by some
	// reservation, not necessarily a single one.
	StatusBooked SiteStatus = "BOOKED"
	// StatusPartial means at least one reservation touches the evaluated
	// window but the core window is not fully covered.
	StatusPartial SiteStatus = "PARTIAL"
	// StatusAvailable means no reservation touches the evaluated window and
	// the site is on sale.
	StatusAvailable SiteStatus = "AVAILABLE"
	// StatusUnavailable means no reservation touches the evaluated window
	// but an admin has pulled the site from sale.
	StatusUnavailable SiteStatus = "UNAVAILABLE"
)

// Nightly yields one (night, booked) pair for every night of the window, in
// order. The sequence is lazy, finite and restartable: ranging over it twice
// walks the window twice against the same snapshot.
func Nightly(reservations []Interval, window Interval) iter.Seq2[Date, bool] {
	return func(yield func(Date, bool) bool) {
		for night := window.CheckIn; night.Before(window.CheckOut); night = night.AddDays(1) {
			booked := false
			for _, r := range reservations {
				if r.Occupies(night) {
					booked = true
					break
				}
			}
			if !yield(night, booked) {
				return
			}
		}
	}
}

// bookedNightsWithin sums each reservation clipped to the window. The sum is
// deliberately insensitive to overlapping or duplicate reservations and will
// overcount in that pathological case; inputs are expected to be
// non-overlapping, an invariant enforced at reservation-creation time by the
// persistence layer.
func bookedNightsWithin(reservations []Interval, window Interval) int {
	total := 0
	for _, r := range reservations {
		if clipped, ok := r.Clip(window); ok {
			total += clipped.Nights()
		}
	}
	return total
}

// Classify derives a site's display status. Coverage is measured against the
// core event window; mere presence of a reservation is measured against the
// extended bounds, which may admit early arrivals and late departures
// outside the core window. The availableFlag is the admin-settable on-sale
// switch and only matters when no reservation touches the evaluated window.
func Classify(reservations []Interval, core, extended Interval, availableFlag bool) SiteStatus {
	touches := false
	for _, r := range reservations {
		if r.Overlaps(extended) || r.Overlaps(core) {
			touches = true
			break
		}
	}
	if !touches {
		if availableFlag {
			return StatusAvailable
		}
		return StatusUnavailable
	}
	if bookedNightsWithin(reservations, core) >= core.Nights() {
		return StatusBooked
	}
	return StatusPartial
}

// NightCount reports how many of a campground's sites are booked versus
// free on one night. Produced by CountNights for the admin occupancy report.
type NightCount struct {
	Night     Date `json:"night"`
	Booked    int  `json:"booked"`
	Available int  `json:"available"`
}

// CountNights rolls per-site reservation lists up into per-night counts over
// the window. Each inner slice holds one site's reservations; a site counts
// as booked on a night when any of its reservations occupies that night.
func CountNights(siteReservations [][]Interval, window Interval) []NightCount {
	counts := make([]NightCount, 0, window.Nights())
	for night := window.CheckIn; night.Before(window.CheckOut); night = night.AddDays(1) {
		nc := NightCount{Night: night}
		for _, reservations := range siteReservations {
			booked := false
			for _, r := range reservations {
				if r.Occupies(night) {
					booked = true
					break
				}
			}
			if booked {
				nc.Booked++
			} else {
				nc.Available++
			}
		}
		counts = append(counts, nc)
	}
	return counts
}
