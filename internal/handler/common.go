package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eventgrounds/campsite-booking/internal/booking"
)

// getUserID extracts the authenticated user's ID from context. The JWT
// middleware stores the sub claim, which arrives as a float64 from the JSON
// decoder.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// parseStay validates a check-in/check-out string pair into a half-open
// night interval.
func parseStay(checkIn, checkOut string) (booking.Interval, error) {
	in, err := booking.ParseDate(checkIn)
	if err != nil {
		return booking.Interval{}, err
	}
	out, err := booking.ParseDate(checkOut)
	if err != nil {
		return booking.Interval{}, err
	}
	return booking.NewInterval(in, out)
}
