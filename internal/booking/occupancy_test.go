package booking

import "testing"

func TestNightlyCoversEveryNightInOrder(t *testing.T) {
	window := stay(t, "2026-03-01", "2026-03-06")
	reservations := []Interval{
		stay(t, "2026-03-02", "2026-03-04"),
	}
	want := map[string]bool{
		"2026-03-01": false,
		"2026-03-02": true,
		"2026-03-03": true,
		"2026-03-04": false, // checkout day
		"2026-03-05": false,
	}
	seen := 0
	prev := Date{}
	for night, booked := range Nightly(reservations, window) {
		if w, ok := want[night.String()]; !ok || booked != w {
			t.Errorf("night %s booked=%v, want %v", night, booked, want[night.String()])
		}
		if seen > 0 && !night.After(prev) {
			t.Errorf("nights out of order: %s after %s", night, prev)
		}
		prev = night
		seen++
	}
	if seen != 5 {
		t.Fatalf("yielded %d nights, want 5", seen)
	}
}

func TestNightlyIsRestartable(t *testing.T) {
	window := stay(t, "2026-03-01", "2026-03-04")
	seq := Nightly(nil, window)
	for pass := 0; pass < 2; pass++ {
		n := 0
		for range seq {
			n++
		}
		if n != 3 {
			t.Fatalf("pass %d yielded %d nights, want 3", pass, n)
		}
	}
}

func TestNightlyStopsWhenConsumerBreaks(t *testing.T) {
	window := stay(t, "2026-03-01", "2026-03-31")
	n := 0
	for range Nightly(nil, window) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("consumed %d nights, want 2", n)
	}
}

func TestClassify(t *testing.T) {
	core := stay(t, "2026-03-01", "2026-03-06")     // 5 nights
	extended := stay(t, "2026-02-27", "2026-03-08") // early arrival / late leave
	tests := []struct {
		name         string
		reservations []Interval
		available    bool
		want         SiteStatus
	}{
		{
			name:      "no reservations on sale",
			available: true,
			want:      StatusAvailable,
		},
		{
			name:      "no reservations pulled from sale",
			available: false,
			want:      StatusUnavailable,
		},
		{
			name:         "covers 4 of 5 core nights",
			reservations: []Interval{stay(t, "2026-03-01", "2026-03-05")},
			available:    true,
			want:         StatusPartial,
		},
		{
			name:         "single reservation covers full core window",
			reservations: []Interval{stay(t, "2026-03-01", "2026-03-06")},
			available:    true,
			want:         StatusBooked,
		},
		{
			name: "non-contiguous reservations jointly span the core window",
			reservations: []Interval{
				stay(t, "2026-03-01", "2026-03-03"),
				stay(t, "2026-03-03", "2026-03-06"),
			},
			available: true,
			want:      StatusBooked,
		},
		{
			name:         "reservation only in extended bounds",
			reservations: []Interval{stay(t, "2026-02-27", "2026-03-01")},
			available:    true,
			want:         StatusPartial,
		},
		{
			name:         "reservation wider than core counts clipped",
			reservations: []Interval{stay(t, "2026-02-27", "2026-03-08")},
			available:    true,
			want:         StatusBooked,
		},
		{
			name:         "off-sale flag ignored once reservations exist",
			reservations: []Interval{stay(t, "2026-03-02", "2026-03-04")},
			available:    false,
			want:         StatusPartial,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.reservations, core, extended, tc.available)
			if got != tc.want {
				t.Fatalf("Classify = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestCountNights(t *testing.T) {
	window := stay(t, "2026-03-01", "2026-03-04")
	sites := [][]Interval{
		{stay(t, "2026-03-01", "2026-03-03")}, // booked nights 1,2
		{stay(t, "2026-03-02", "2026-03-04")}, // booked nights 2,3
		nil,                                   // never booked
	}
	counts := CountNights(sites, window)
	if len(counts) != 3 {
		t.Fatalf("got %d rows, want 3", len(counts))
	}
	wantBooked := []int{1, 2, 1}
	for i, nc := range counts {
		if nc.Booked != wantBooked[i] {
			t.Errorf("night %s booked = %d, want %d", nc.Night, nc.Booked, wantBooked[i])
		}
		if nc.Booked+nc.Available != len(sites) {
			t.Errorf("night %s counts do not add up to site total", nc.Night)
		}
	}
}
