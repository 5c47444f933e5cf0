package booking

// Interval is a half-open run of nights [CheckIn, CheckOut). A reservation
// for Jan 2 to Jan 5 occupies the nights of Jan 2, 3 and 4; the check-out
// day itself is free, which is what lets one party depart and another arrive
// on the same date.
//
// Fields:
//  CheckIn  – first occupied night.
//  CheckOut – first free day after the stay (exclusive bound).
type Interval struct {
	CheckIn  Date `json:"check_in"`  // first occupied night
	CheckOut Date `json:"check_out"` // exclusive upper bound
}

// NewInterval validates and builds a stay interval. A check-out on or before
// the check-in is rejected with ErrInvalidRange.
func NewInterval(checkIn, checkOut Date) (Interval, error) {
	if !checkOut.After(checkIn) {
		return Interval{}, ErrInvalidRange
	}
	return Interval{CheckIn: checkIn, CheckOut: checkOut}, nil
}

// Occupies reports whether the given night falls inside the interval:
// night >= CheckIn && night < CheckOut. The check-out day always reports
// false.
func (iv Interval) Occupies(night Date) bool {
	return !night.Before(iv.CheckIn) && night.Before(iv.CheckOut)
}

// Nights returns the number of nights the interval spans. An inverted
// interval yields a non-positive count; callers constructing intervals via
// NewInterval never observe that.
func (iv Interval) Nights() int {
	return iv.CheckIn.DaysUntil(iv.CheckOut)
}

// Overlaps reports whether two half-open intervals share at least one night.
// Back-to-back intervals where one's check-out equals the other's check-in
// do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(iv.CheckOut)
}

// Clip bounds the interval to a window, returning the intersection and true
// when at least one night survives. The clipped start is
// max(CheckIn, window start) and the clipped end min(CheckOut, window end).
func (iv Interval) Clip(window Interval) (Interval, bool) {
	start := maxDate(iv.CheckIn, window.CheckIn)
	end := minDate(iv.CheckOut, window.CheckOut)
	if !end.After(start) {
		return Interval{}, false
	}
	return Interval{CheckIn: start, CheckOut: end}, true
}
