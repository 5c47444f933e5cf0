package booking

import (
	"errors"
	"testing"
)

func stay(t *testing.T, in, out string) Interval {
	t.Helper()
	iv, err := NewInterval(date(t, in), date(t, out))
	if err != nil {
		t.Fatalf("NewInterval(%s, %s): %v", in, out, err)
	}
	return iv
}

func TestNewIntervalRejectsInvertedAndZeroLength(t *testing.T) {
	a := Date{Year: 2026, Month: 3, Day: 10}
	for _, out := range []Date{a, a.AddDays(-1)} {
		if _, err := NewInterval(a, out); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("NewInterval(%s, %s): got %v, want ErrInvalidRange", a, out, err)
		}
	}
}

func TestOccupiesHalfOpen(t *testing.T) {
	iv := stay(t, "2026-03-02", "2026-03-05")
	tests := []struct {
		night string
		want  bool
	}{
		{"2026-03-01", false},
		{"2026-03-02", true},
		{"2026-03-03", true},
		{"2026-03-04", true},
		{"2026-03-05", false}, // checkout day is free
		{"2026-03-06", false},
	}
	for _, tc := range tests {
		if got := iv.Occupies(date(t, tc.night)); got != tc.want {
			t.Errorf("Occupies(%s) = %v, want %v", tc.night, got, tc.want)
		}
	}
}

func TestNights(t *testing.T) {
	if got := stay(t, "2026-03-02", "2026-03-05").Nights(); got != 3 {
		t.Fatalf("Nights = %d, want 3", got)
	}
	if got := stay(t, "2026-03-02", "2026-03-03").Nights(); got != 1 {
		t.Fatalf("one-night Nights = %d, want 1", got)
	}
}

func TestOverlaps(t *testing.T) {
	base := stay(t, "2026-03-05", "2026-03-10")
	tests := []struct {
		name     string
		in, out  string
		overlaps bool
	}{
		{"identical", "2026-03-05", "2026-03-10", true},
		{"contained", "2026-03-06", "2026-03-08", true},
		{"straddles start", "2026-03-03", "2026-03-06", true},
		{"straddles end", "2026-03-09", "2026-03-12", true},
		{"back-to-back before", "2026-03-01", "2026-03-05", false},
		{"back-to-back after", "2026-03-10", "2026-03-14", false},
		{"disjoint", "2026-03-20", "2026-03-22", false},
	}
	for _, tc := range tests {
		other := stay(t, tc.in, tc.out)
		if got := base.Overlaps(other); got != tc.overlaps {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.overlaps)
		}
		if got := other.Overlaps(base); got != tc.overlaps {
			t.Errorf("%s: Overlaps not symmetric", tc.name)
		}
	}
}

func TestClip(t *testing.T) {
	window := stay(t, "2026-03-05", "2026-03-10")
	tests := []struct {
		name    string
		in, out string
		ok      bool
		clipped string // "in..out" when ok
	}{
		{"inside", "2026-03-06", "2026-03-08", true, "2026-03-06..2026-03-08"},
		{"spills both ends", "2026-03-01", "2026-03-20", true, "2026-03-05..2026-03-10"},
		{"spills start", "2026-03-03", "2026-03-07", true, "2026-03-05..2026-03-07"},
		{"entirely before", "2026-03-01", "2026-03-05", false, ""},
		{"entirely after", "2026-03-10", "2026-03-12", false, ""},
	}
	for _, tc := range tests {
		got, ok := stay(t, tc.in, tc.out).Clip(window)
		if ok != tc.ok {
			t.Errorf("%s: ok = %v, want %v", tc.name, ok, tc.ok)
			continue
		}
		if ok {
			if s := got.CheckIn.String() + ".." + got.CheckOut.String(); s != tc.clipped {
				t.Errorf("%s: clipped to %s, want %s", tc.name, s, tc.clipped)
			}
		}
	}
}
