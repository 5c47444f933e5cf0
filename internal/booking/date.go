package booking

import (
	"fmt"
	"time"
)

// dateLayout is the wire and storage format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date held as a year/month/day triple. It deliberately
// carries no time-of-day and no zone: reservation bounds read from DATE
// columns and dates typed by shoppers are compared and stepped in this
// domain only, so a value can never drift across a UTC/local boundary the
// way a timestamp's display methods can.
//
// Fields:
//  Year  – four-digit year.
//  Month – calendar month (time.January..time.December).
//  Day   – day of month, 1-based.
type Date struct {
	Year  int        // calendar year
	Month time.Month // calendar month
	Day   int        // day of month
}

// ParseDate parses a "YYYY-MM-DD" string into a Date. The input must be a
// bare date; strings carrying a time-of-day component are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

// DateOf truncates a time.Time to its calendar date in the time's own
// location. Used only at the boundary when a caller already holds a
// time.Time; core computations never round-trip through timestamps.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String formats the date as "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d.Year == 0 && d.Month == 0 && d.Day == 0 }

// toTime converts the date to midnight UTC. Internal stepping helper; the
// result is used only for day arithmetic, never displayed.
func (d Date) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative). Month and
// year rollover follow the civil calendar.
func (d Date) AddDays(n int) Date {
	return DateOf(d.toTime().AddDate(0, 0, n))
}

// DaysUntil returns the number of whole days from d to other. The result is
// negative when other precedes d.
func (d Date) DaysUntil(other Date) int {
	return int(other.toTime().Sub(d.toTime()) / (24 * time.Hour))
}

// Compare orders two dates: -1 when d precedes other, 0 when equal, +1 when
// d follows other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		if d.Year < other.Year {
			return -1
		}
		return 1
	case d.Month != other.Month:
		if d.Month < other.Month {
			return -1
		}
		return 1
	case d.Day != other.Day:
		if d.Day < other.Day {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether d precedes other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d follows other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports whether the two dates are the same calendar day.
func (d Date) Equal(other Date) bool { return d.Compare(other) == 0 }

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", b)
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// minDate returns the later-ordering-safe minimum of two dates.
func minDate(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

// maxDate returns the maximum of two dates.
func maxDate(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}
