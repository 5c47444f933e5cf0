package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eventgrounds/campsite-booking/internal/booking"
)

func ctxWithUserID(v any) echo.Context {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if v != nil {
		c.Set("user_id", v)
	}
	return c
}

func TestGetUserID(t *testing.T) {
	cases := []struct {
		name    string
		val     any
		want    uint64
		wantErr bool
	}{
		{"float64 jwt claim", float64(42), 42, false},
		{"uint64", uint64(7), 7, false},
		{"int", 5, 5, false},
		{"numeric string", "19", 19, false},
		{"garbage string", "abc", 0, true},
		{"missing", nil, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := getUserID(ctxWithUserID(tc.val))
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("getUserID = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPathID(t *testing.T) {
	e := echo.New()
	newCtx := func(val string) echo.Context {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(val)
		return c
	}

	if id, ok := pathID(newCtx("37"), "id"); !ok || id != 37 {
		t.Errorf("pathID(37) = %d, %v", id, ok)
	}
	for _, bad := range []string{"0", "-1", "abc", ""} {
		if _, ok := pathID(newCtx(bad), "id"); ok {
			t.Errorf("pathID accepted %q", bad)
		}
	}
}

func TestParseStay(t *testing.T) {
	iv, err := parseStay("2026-07-01", "2026-07-04")
	if err != nil {
		t.Fatalf("parseStay: %v", err)
	}
	if iv.Nights() != 3 {
		t.Errorf("nights = %d, want 3", iv.Nights())
	}

	cases := []struct {
		name     string
		in, out  string
		wantErr  error
		anyError bool
	}{
		{"inverted", "2026-07-04", "2026-07-01", booking.ErrInvalidRange, false},
		{"zero length", "2026-07-01", "2026-07-01", booking.ErrInvalidRange, false},
		{"bad check-in", "july 1st", "2026-07-04", nil, true},
		{"bad check-out", "2026-07-01", "", nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseStay(tc.in, tc.out)
			if tc.anyError {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != tc.wantErr {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseEventWindows(t *testing.T) {
	req := eventWindowsReq{
		StartsOn: "2026-07-03", EndsOn: "2026-07-06",
		OpenFrom: "2026-07-01", OpenUntil: "2026-07-08",
	}
	core, extended, err := parseEventWindows(req)
	if err != nil {
		t.Fatalf("parseEventWindows: %v", err)
	}
	if core.Nights() != 3 || extended.Nights() != 7 {
		t.Errorf("nights = %d/%d, want 3/7", core.Nights(), extended.Nights())
	}

	narrow := req
	narrow.OpenFrom = "2026-07-04" // open window starts after the event
	if _, _, err := parseEventWindows(narrow); err == nil {
		t.Error("accepted an open window that does not contain the event window")
	}
}
