package booking

import "testing"

func TestFree(t *testing.T) {
	reservations := []Interval{
		stay(t, "2026-03-05", "2026-03-08"),
	}
	tests := []struct {
		name    string
		in, out string
		want    bool
	}{
		{"disjoint", "2026-03-01", "2026-03-03", true},
		{"shares one night", "2026-03-07", "2026-03-10", false},
		{"exact window", "2026-03-05", "2026-03-08", false},
		{"arrives on checkout day", "2026-03-08", "2026-03-11", true},
		{"departs on check-in day", "2026-03-02", "2026-03-05", true},
	}
	for _, tc := range tests {
		if got := Free(reservations, stay(t, tc.in, tc.out)); got != tc.want {
			t.Errorf("%s: Free = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFilterAvailableExcludesPartialSitesWithConflicts(t *testing.T) {
	window := stay(t, "2026-03-03", "2026-03-06")
	sites := []Site{
		{ID: 1, Label: "A1", Available: true},
		// Partial against the broader core window but occupied inside the
		// candidate window: must be excluded.
		{ID: 2, Label: "A2", Available: true, Reservations: []Interval{stay(t, "2026-03-04", "2026-03-05")}},
		// Reservation elsewhere in the event: stays selectable.
		{ID: 3, Label: "A3", Available: true, Reservations: []Interval{stay(t, "2026-03-08", "2026-03-10")}},
		// Free but pulled from sale.
		{ID: 4, Label: "A4", Available: false},
	}
	got := FilterAvailable(sites, window)
	if len(got) != 2 {
		t.Fatalf("got %d sites, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("got sites %d and %d, want 1 and 3", got[0].ID, got[1].ID)
	}
}
