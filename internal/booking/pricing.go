package booking

// Mode selects how a stay is priced: per night, or as a flat full-event
// package covering the whole stay.
type Mode string

const (
	ModeNightly   Mode = "NIGHTLY"
	ModeFullEvent Mode = "FULL_EVENT"
)

// minPackageNights is the business threshold for the full-event package:
// stays of four nights or fewer are never eligible, whatever the event
// window looks like.
const minPackageNights = 5

// RateCard carries a campsite's pricing fields. All amounts are in cents.
// The optional pointers are nil when the site does not offer the
// corresponding rate; a nil surcharge prices as zero, while a nil
// FullEventCents makes the package mode entirely unavailable for the site.
//
// Fields:
//  NightlyCents             – base per-night rate, one adult included.
//  FullEventCents           – flat package rate (nil: no package offered).
//  ExtraAdultNightlyCents   – per-extra-adult per-night surcharge (nil: 0).
//  ExtraAdultFullEventCents – per-extra-adult one-off package surcharge (nil: 0).
type RateCard struct {
	NightlyCents             uint32  // campsites.nightly_rate_cents
	FullEventCents           *uint32 // campsites.full_event_rate_cents (nullable)
	ExtraAdultNightlyCents   *uint32 // campsites.extra_adult_nightly_cents (nullable)
	ExtraAdultFullEventCents *uint32 // campsites.extra_adult_full_event_cents (nullable)
}

// Quote is the priced breakdown of a stay. Callers reconstruct receipt and
// cart lines from the parts, not just the total. Identical inputs always
// produce identical quotes; there is no hidden state.
type Quote struct {
	Mode               Mode   `json:"mode"`                 // mode actually applied (after any downgrade)
	Nights             int    `json:"nights"`               // nights charged
	ExtraAdults        int    `json:"extra_adults"`         // adults beyond the first
	BaseCents          uint32 `json:"base_cents"`           // nightly*nights or the package rate
	ExtraOccupantCents uint32 `json:"extra_occupant_cents"` // total extra-adult surcharge
	TotalCents         uint32 `json:"total_cents"`          // base + surcharge
}

// FullEventEligible reports whether the package mode can be offered for this
// site and stay: the site must carry a package rate and the stay must exceed
// four nights. This is the single source of truth for the checkout UI's
// package option; presentation only reflects this decision.
func FullEventEligible(card RateCard, stay Interval) bool {
	return card.FullEventCents != nil && stay.Nights() >= minPackageNights
}

// Price computes the total for a stay under the requested mode.
//
// Nightly mode charges nightlyRate*nights plus extraAdults*surcharge*nights.
// Full-event mode charges the flat package rate plus a one-off per-extra-adult
// surcharge, independent of the night count. A FULL_EVENT request on an
// ineligible site or window silently downgrades to NIGHTLY instead of
// erroring: the shopper-facing UI disables the option rather than surfacing
// a failure, and client preview and server total must agree on the downgrade
// so they can never diverge. Children never affect the price.
func Price(card RateCard, stay Interval, adults, children int, mode Mode) (Quote, error) {
	if adults < 1 {
		return Quote{}, ErrInvalidOccupancy
	}
	nights := stay.Nights()
	if nights < 1 {
		// Defensive floor; NewInterval rejects such windows upstream.
		nights = 1
	}
	extraAdults := adults - 1

	if mode == ModeFullEvent && FullEventEligible(card, stay) {
		q := Quote{
			Mode:        ModeFullEvent,
			Nights:      nights,
			ExtraAdults: extraAdults,
			BaseCents:   *card.FullEventCents,
		}
		q.ExtraOccupantCents = uint32(extraAdults) * derefCents(card.ExtraAdultFullEventCents)
		q.TotalCents = q.BaseCents + q.ExtraOccupantCents
		return q, nil
	}

	q := Quote{
		Mode:        ModeNightly,
		Nights:      nights,
		ExtraAdults: extraAdults,
		BaseCents:   card.NightlyCents * uint32(nights),
	}
	q.ExtraOccupantCents = uint32(extraAdults) * derefCents(card.ExtraAdultNightlyCents) * uint32(nights)
	q.TotalCents = q.BaseCents + q.ExtraOccupantCents
	return q, nil
}

// derefCents treats a missing optional rate as zero.
func derefCents(v *uint32) uint32 {
	if v == nil {
		return 0
	}
	return *v
}
