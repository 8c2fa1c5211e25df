// Package calendar converts between raw instants and proleptic Gregorian
// calendar fields.
//
// An Instant counts microseconds since 0001-01-01T00:00:00. Negative instants
// are BC dates; there is no year 0, so year -1 is immediately followed by
// year 1. Every field operation works with floor semantics so that it stays
// correct on both sides of the epoch.
//
// Setters never reject out-of-range input. Values are clamped to the nearest
// valid field value (day 30 in February becomes 28 or 29), which keeps the
// package free of error paths for constrained targets.
//
// Arithmetic that leaves MinYear..MaxYear is not checked.
package calendar

import (
	"fmt"
	"time"
)

// Instant is a signed count of microseconds since 0001-01-01T00:00:00 of the
// proleptic Gregorian calendar.
type Instant int64

// Durations in microseconds.
const (
	Microsecond int64 = 1
	Millisecond       = 1000 * Microsecond
	Second            = 1000 * Millisecond
	Minute            = 60 * Second
	Hour              = 60 * Minute
	Day               = 24 * Hour
)

// Supported year range. The raw range of an int64 reaches slightly further,
// and Decompose is total over it, but only these years compose exactly.
const (
	MinYear = -292277
	MaxYear = 292277
)

// Fixed epochs expressed as instants.
const (
	// UnixEpoch is 1970-01-01T00:00:00.
	UnixEpoch Instant = 62_135_596_800_000_000
	// OADateEpoch is 1899-12-30T00:00:00, day zero of Automation dates.
	OADateEpoch Instant = 59_926_435_200_000_000
)

const (
	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1
)

// Zero is the epoch itself.
const Zero Instant = 0

// MinInstant and MaxInstant bound the supported year range.
var (
	MinInstant = Date(MinYear, 1, 1, 0, 0, 0, 0, 0)
	MaxInstant = Date(MaxYear, 12, 31, 23, 59, 59, 999, 999)
)

// Weekday numbers the days of the week from Sunday = 1 to Saturday = 7.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// String returns the English name of the weekday.
func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return time.Weekday(w - 1).String()
}

// DateFields is the calendar date of an instant. Weekday is derived and
// ignored by Compose.
type DateFields struct {
	Year    int
	Month   int
	Day     int
	Weekday Weekday
}

// TimeFields is the time of day of an instant. Hour is always 0..23.
type TimeFields struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	Microsecond int
}

// Hour12 returns the hour on a 12-hour dial (1..12) and whether it is PM.
func (t TimeFields) Hour12() (int, bool) {
	h := t.Hour % 12
	if h == 0 {
		h = 12
	}
	return h, t.Hour >= 12
}

// Fields is a fully decomposed instant.
type Fields struct {
	DateFields
	TimeFields
}

// String renders the instant as an ISO-8601 local date-time with
// microseconds. BC years carry a leading minus sign.
func (t Instant) String() string {
	f := Decompose(t)
	sign := ""
	y := f.Year
	if y < 0 {
		sign, y = "-", -y
	}
	return fmt.Sprintf("%s%04d-%02d-%02dT%02d:%02d:%02d.%03d%03d",
		sign, y, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Millisecond, f.Microsecond)
}

// Raw returns the instant itself. Together with SetRaw, AddRaw and Update it
// lets *Instant serve as the plainest raw clock.
func (t *Instant) Raw() Instant { return *t }

// SetRaw replaces the instant.
func (t *Instant) SetRaw(v Instant) { *t = v }

// AddRaw shifts the instant by us microseconds.
func (t *Instant) AddRaw(us int64) { *t += Instant(us) }

// Update replaces the instant with f applied to it.
func (t *Instant) Update(f func(Instant) Instant) { *t = f(*t) }

// floorDiv divides rounding toward negative infinity. Truncating division
// puts negative instants on the wrong side of day, hour and second borders.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the non-negative remainder matching floorDiv.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
