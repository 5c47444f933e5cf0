package booking

import "testing"

func date(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestParseDateRoundTrip(t *testing.T) {
	for _, s := range []string{"2026-01-02", "2026-02-28", "2024-02-29", "1999-12-31"} {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", s, err)
		}
		if got := d.String(); got != s {
			t.Fatalf("round trip %q -> %q", s, got)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2026-13-01", "2026-01-32", "2026-01-02T00:00:00Z", "02/01/2026"} {
		if _, err := ParseDate(s); err == nil {
			t.Fatalf("ParseDate(%q): expected error", s)
		}
	}
}

func TestAddDaysRollsOverMonthAndYear(t *testing.T) {
	tests := []struct {
		start string
		n     int
		want  string
	}{
		{"2026-01-30", 3, "2026-02-02"},
		{"2026-12-31", 1, "2027-01-01"},
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2026-03-01", -1, "2026-02-28"},
	}
	for _, tc := range tests {
		got := date(t, tc.start).AddDays(tc.n)
		if got.String() != tc.want {
			t.Errorf("%s + %d days = %s, want %s", tc.start, tc.n, got, tc.want)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	a := date(t, "2026-03-05")
	b := date(t, "2026-03-10")
	if got := a.DaysUntil(b); got != 5 {
		t.Fatalf("DaysUntil = %d, want 5", got)
	}
	if got := b.DaysUntil(a); got != -5 {
		t.Fatalf("reverse DaysUntil = %d, want -5", got)
	}
	if got := a.DaysUntil(a); got != 0 {
		t.Fatalf("self DaysUntil = %d, want 0", got)
	}
}

func TestDateOrdering(t *testing.T) {
	a := date(t, "2026-03-05")
	b := date(t, "2026-03-06")
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Fatal("ordering broken for adjacent days")
	}
	if !a.Equal(a) || a.Equal(b) {
		t.Fatal("equality broken")
	}
}

func TestDateJSON(t *testing.T) {
	d := date(t, "2026-07-04")
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2026-07-04"` {
		t.Fatalf("MarshalJSON = %s", b)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Fatalf("unmarshal round trip: got %s", back)
	}
	if err := back.UnmarshalJSON([]byte("42")); err == nil {
		t.Fatal("expected error for non-string literal")
	}
}
