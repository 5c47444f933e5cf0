package booking

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestNewLineItemMatchesQuote(t *testing.T) {
	card := RateCard{NightlyCents: 5000, ExtraAdultNightlyCents: cents(1000)}
	window := stay(t, "2026-03-01", "2026-03-04")
	item, err := NewLineItem(7, card, window, 3, 1, ModeNightly)
	if err != nil {
		t.Fatal(err)
	}
	q, err := Price(card, window, 3, 1, ModeNightly)
	if err != nil {
		t.Fatal(err)
	}
	if item.SiteID != 7 || item.Adults != 3 || item.Children != 1 {
		t.Fatalf("stay parameters not carried: %+v", item)
	}
	if item.Mode != q.Mode || item.Nights != q.Nights ||
		item.BaseCents != q.BaseCents || item.ExtraOccupantCents != q.ExtraOccupantCents ||
		item.TotalCents != q.TotalCents {
		t.Fatalf("line item disagrees with quote: %+v vs %+v", item, q)
	}
}

func TestNewLineItemDeterministic(t *testing.T) {
	card := RateCard{NightlyCents: 5000, FullEventCents: cents(40000)}
	window := stay(t, "2026-03-01", "2026-03-08")
	a, err := NewLineItem(7, card, window, 2, 0, ModeFullEvent)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewLineItem(7, card, window, 2, 0, ModeFullEvent)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("line items differ: %+v vs %+v", a, b)
	}
}

func TestNewLineItemPropagatesPricingErrors(t *testing.T) {
	card := RateCard{NightlyCents: 5000}
	if _, err := NewLineItem(7, card, stay(t, "2026-03-01", "2026-03-04"), 0, 0, ModeNightly); !errors.Is(err, ErrInvalidOccupancy) {
		t.Fatalf("got %v, want ErrInvalidOccupancy", err)
	}
}

func TestLineItemJSONDates(t *testing.T) {
	card := RateCard{NightlyCents: 5000}
	item, err := NewLineItem(7, card, stay(t, "2026-03-01", "2026-03-04"), 1, 0, ModeNightly)
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(item)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m["check_in"] != "2026-03-01" || m["check_out"] != "2026-03-04" {
		t.Fatalf("dates not serialized as bare calendar dates: %s", b)
	}
}
