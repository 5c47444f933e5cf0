package booking

// Site is the immutable-for-the-request snapshot of a campsite that the
// resolver and handlers work over: identity, the admin on-sale flag and the
// site's existing reservations. Storage fills it in; the core only reads it.
//
// Fields:
//  ID           – campsite identifier.
//  Label        – display label, e.g. "A10".
//  Available    – admin-settable on-sale flag, independent of reservations.
//  Reservations – existing commitments as half-open night intervals.
type Site struct {
	ID           uint64     // campsites.id
	Label        string     // campsites.label
	Available    bool       // campsites.is_available
	Reservations []Interval // existing bookings for the site
}

// Free reports whether zero nights of the candidate stay are occupied by any
// of the reservations. This is the strict binary filter used at selection
// time; it is narrower than Classify, which exists for display and may mark
// a site PARTIAL even though this exact window is wide open.
func Free(reservations []Interval, stay Interval) bool {
	for _, r := range reservations {
		if r.Overlaps(stay) {
			return false
		}
	}
	return true
}

// FilterAvailable returns the sites bookable for the exact stay window: no
// occupied night inside the window and the on-sale flag set. A site absent
// from the result must never be selectable for that window, whatever its
// broader display status says. The guarantee is availability at read time
// only; the authoritative conflict check happens when the order service
// commits the reservation row.
func FilterAvailable(sites []Site, stay Interval) []Site {
	out := make([]Site, 0, len(sites))
	for _, s := range sites {
		if s.Available && Free(s.Reservations, stay) {
			out = append(out, s)
		}
	}
	return out
}
