package calendar

import (
	"math"
	"time"
)

// FromUnix returns the instant sec seconds after 1970-01-01T00:00:00.
func FromUnix(sec int64) Instant { return UnixEpoch + Instant(sec*Second) }

// FromUnixMilli returns the instant ms milliseconds after the Unix epoch.
func FromUnixMilli(ms int64) Instant { return UnixEpoch + Instant(ms*Millisecond) }

// FromUnixMicro returns the instant us microseconds after the Unix epoch.
func FromUnixMicro(us int64) Instant { return UnixEpoch + Instant(us) }

// Unix returns whole seconds since the Unix epoch, rounded down.
func (t Instant) Unix() int64 { return floorDiv(int64(t-UnixEpoch), Second) }

// UnixMilli returns whole milliseconds since the Unix epoch, rounded down.
func (t Instant) UnixMilli() int64 { return floorDiv(int64(t-UnixEpoch), Millisecond) }

// UnixMicro returns microseconds since the Unix epoch.
func (t Instant) UnixMicro() int64 { return int64(t - UnixEpoch) }

// FromOADate converts an Automation date: whole days since 1899-12-30 plus a
// fraction of a day. The fraction is a time of day even for negative values,
// so -1.25 is 1899-12-29T06:00.
func FromOADate(v float64) Instant {
	whole, frac := math.Modf(v)
	us := int64(math.Round(math.Abs(frac) * float64(Day)))
	return OADateEpoch + Instant(int64(whole)*Day+us)
}

// OADate is the inverse of FromOADate, precise to the microsecond for dates
// within a few centuries of 1900.
func (t Instant) OADate() float64 {
	days := floorDiv(int64(t-OADateEpoch), Day)
	frac := float64(floorMod(int64(t-OADateEpoch), Day)) / float64(Day)
	if days < 0 {
		return float64(days) - frac
	}
	return float64(days) + frac
}

// FromTime reads the wall-clock fields of t in its own location. Go counts
// 1 BC as year 0; the result does not.
func FromTime(t time.Time) Instant {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	ns := t.Nanosecond()
	if y <= 0 {
		y--
	}
	return Date(y, int(mo), d, h, mi, s, ns/int(time.Millisecond), ns/int(time.Microsecond)%1000)
}

// Time returns the wall-clock fields of the instant as a time.Time in loc,
// UTC when loc is nil.
func (t Instant) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	f := Decompose(t)
	y := f.Year
	if y < 0 {
		y++
	}
	ns := f.Millisecond*int(time.Millisecond) + f.Microsecond*int(time.Microsecond)
	return time.Date(y, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, ns, loc)
}
