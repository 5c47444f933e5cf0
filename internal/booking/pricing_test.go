package booking

import (
	"errors"
	"reflect"
	"testing"
)

func cents(v uint32) *uint32 { return &v }

func TestPriceNightlyWithExtraAdults(t *testing.T) {
	// nightlyRate=50, extraAdultNightlyRate=10, 3 nights, 3 adults:
	// 50*3 + 2*10*3 = 210.
	card := RateCard{NightlyCents: 5000, ExtraAdultNightlyCents: cents(1000)}
	q, err := Price(card, stay(t, "2026-03-01", "2026-03-04"), 3, 1, ModeNightly)
	if err != nil {
		t.Fatal(err)
	}
	if q.Mode != ModeNightly || q.Nights != 3 || q.ExtraAdults != 2 {
		t.Fatalf("unexpected quote shape: %+v", q)
	}
	if q.BaseCents != 15000 || q.ExtraOccupantCents != 6000 || q.TotalCents != 21000 {
		t.Fatalf("unexpected amounts: %+v", q)
	}
}

func TestPriceFullEventEligible(t *testing.T) {
	// fullEventRate=400, extraAdultFullEventRate=50, 6 nights, 2 adults:
	// 400 + 1*50 = 450, independent of the night count.
	card := RateCard{
		NightlyCents:             5000,
		FullEventCents:           cents(40000),
		ExtraAdultFullEventCents: cents(5000),
	}
	q, err := Price(card, stay(t, "2026-03-01", "2026-03-07"), 2, 0, ModeFullEvent)
	if err != nil {
		t.Fatal(err)
	}
	if q.Mode != ModeFullEvent {
		t.Fatalf("mode = %s, want FULL_EVENT", q.Mode)
	}
	if q.BaseCents != 40000 || q.ExtraOccupantCents != 5000 || q.TotalCents != 45000 {
		t.Fatalf("unexpected amounts: %+v", q)
	}
}

func TestPriceFullEventDowngradesShortStay(t *testing.T) {
	// 3 nights is under the package threshold: charged nightly, not 400.
	card := RateCard{NightlyCents: 5000, FullEventCents: cents(40000)}
	q, err := Price(card, stay(t, "2026-03-01", "2026-03-04"), 1, 0, ModeFullEvent)
	if err != nil {
		t.Fatal(err)
	}
	if q.Mode != ModeNightly {
		t.Fatalf("mode = %s, want downgrade to NIGHTLY", q.Mode)
	}
	if q.TotalCents != 15000 {
		t.Fatalf("total = %d, want 15000", q.TotalCents)
	}
}

func TestPriceFullEventDowngradesWithoutPackageRate(t *testing.T) {
	card := RateCard{NightlyCents: 5000}
	q, err := Price(card, stay(t, "2026-03-01", "2026-03-08"), 1, 0, ModeFullEvent)
	if err != nil {
		t.Fatal(err)
	}
	if q.Mode != ModeNightly {
		t.Fatalf("mode = %s, want NIGHTLY for site without package rate", q.Mode)
	}
}

func TestPriceExactThreshold(t *testing.T) {
	card := RateCard{NightlyCents: 5000, FullEventCents: cents(40000)}
	// Exactly 4 nights: not eligible.
	if FullEventEligible(card, stay(t, "2026-03-01", "2026-03-05")) {
		t.Fatal("4 nights must not be package-eligible")
	}
	// 5 nights: eligible.
	if !FullEventEligible(card, stay(t, "2026-03-01", "2026-03-06")) {
		t.Fatal("5 nights must be package-eligible")
	}
}

func TestPriceRejectsInvalidOccupancy(t *testing.T) {
	card := RateCard{NightlyCents: 5000}
	for _, adults := range []int{0, -1} {
		if _, err := Price(card, stay(t, "2026-03-01", "2026-03-04"), adults, 0, ModeNightly); !errors.Is(err, ErrInvalidOccupancy) {
			t.Fatalf("adults=%d: got %v, want ErrInvalidOccupancy", adults, err)
		}
	}
}

func TestPriceChildrenAreFree(t *testing.T) {
	card := RateCard{NightlyCents: 5000, ExtraAdultNightlyCents: cents(1000)}
	window := stay(t, "2026-03-01", "2026-03-03")
	none, err := Price(card, window, 1, 0, ModeNightly)
	if err != nil {
		t.Fatal(err)
	}
	many, err := Price(card, window, 1, 5, ModeNightly)
	if err != nil {
		t.Fatal(err)
	}
	if none.TotalCents != many.TotalCents {
		t.Fatalf("children changed the price: %d vs %d", none.TotalCents, many.TotalCents)
	}
}

func TestPriceIsIdempotent(t *testing.T) {
	card := RateCard{
		NightlyCents:             5000,
		FullEventCents:           cents(40000),
		ExtraAdultNightlyCents:   cents(1000),
		ExtraAdultFullEventCents: cents(5000),
	}
	window := stay(t, "2026-03-01", "2026-03-08")
	first, err := Price(card, window, 3, 2, ModeFullEvent)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Price(card, window, 3, 2, ModeFullEvent)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("quotes differ: %+v vs %+v", first, second)
	}
}
