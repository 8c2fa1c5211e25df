package zone

import (
	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/pattern"
)

// Time is a wall-clock instant in a zone. The zero value is the epoch in UTC.
type Time struct {
	raw  calendar.Instant
	zone Zone
	dst  bool
}

// NewTime interprets wall as local time in z. Wall times skipped by the
// spring transition are moved forward by the delta; wall times repeated in
// the autumn read as daylight saving time.
func NewTime(wall calendar.Instant, z Zone) Time {
	d := z.deltaMicros()
	switch {
	case z.InDST(wall - d):
		return Time{raw: wall, zone: z, dst: true}
	case z.InDST(wall):
		return Time{raw: wall + d, zone: z, dst: true}
	}
	return Time{raw: wall, zone: z}
}

// Unchecked returns the time with visible value raw and the given flag
// without consulting the rule. It is meant for callers that track
// transitions themselves; the flag is trusted as is.
func Unchecked(raw calendar.Instant, z Zone, dst bool) Time {
	return Time{raw: raw, zone: z, dst: dst && z.HasDST()}
}

// FromUTC converts a UTC instant to local time in z.
func FromUTC(utc calendar.Instant, z Zone) Time {
	std := utc + calendar.Instant(z.Micros())
	if z.InDST(std) {
		return Time{raw: std + z.deltaMicros(), zone: z, dst: true}
	}
	return Time{raw: std, zone: z}
}

// Raw returns the visible wall-clock instant.
func (t Time) Raw() calendar.Instant { return t.raw }

// SetRaw replaces the wall-clock value. v is read in the frame of the time
// currently in effect; when it lies on the other side of a transition the
// flag flips and v is corrected by the delta.
func (t *Time) SetRaw(v calendar.Instant) { t.adjust(v) }

// AddRaw moves the value by us microseconds of elapsed time.
func (t *Time) AddRaw(us int64) { t.adjust(t.raw + calendar.Instant(us)) }

// Update replaces the value with f applied to it, as SetRaw does.
func (t *Time) Update(f func(calendar.Instant) calendar.Instant) { t.adjust(f(t.raw)) }

func (t *Time) adjust(v calendar.Instant) {
	d := t.zone.deltaMicros()
	std := v
	if t.dst {
		std -= d
	}
	now := t.zone.InDST(std)
	if now != t.dst {
		if now {
			v += d
		} else {
			v -= d
		}
		t.dst = now
	}
	t.raw = v
}

// Zone returns the zone of t.
func (t Time) Zone() Zone { return t.zone }

// TimeZone returns the standard offset of the zone.
func (t Time) TimeZone() TimeZone { return t.zone.TimeZone }

// IsDST reports whether daylight saving time is in effect.
func (t Time) IsDST() bool { return t.dst }

// DSTOffset returns the daylight saving minutes currently applied.
func (t Time) DSTOffset() int {
	if t.dst {
		return t.zone.Delta()
	}
	return 0
}

// Offset returns the total UTC offset in minutes.
func (t Time) Offset() int {
	return t.zone.Offset + t.DSTOffset()
}

// Standard returns the instant in local standard time.
func (t Time) Standard() calendar.Instant {
	if t.dst {
		return t.raw - t.zone.deltaMicros()
	}
	return t.raw
}

// UTC returns the UTC instant.
func (t Time) UTC() calendar.Instant {
	return t.Standard() - calendar.Instant(t.zone.Micros())
}

// In converts t to zone z.
func (t Time) In(z Zone) Time { return FromUTC(t.UTC(), z) }

// NextTransition returns the next rule transition after t as local
// standard time, and whether daylight saving applies after it.
func (t Time) NextTransition() (calendar.Instant, bool, bool) {
	return t.zone.NextTransition(t.Standard())
}

// Sub returns t-u in microseconds of elapsed time.
func (t Time) Sub(u Time) int64 { return int64(t.UTC() - u.UTC()) }

// Compare returns -1, 0 or +1 as t is before, at or after u.
func (t Time) Compare(u Time) int {
	switch d := t.Sub(u); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

// Equal reports whether t and u are the same instant, whatever their zones.
func (t Time) Equal(u Time) bool { return t.Sub(u) == 0 }

// Before reports whether t is before u.
func (t Time) Before(u Time) bool { return t.Sub(u) < 0 }

// After reports whether t is after u.
func (t Time) After(u Time) bool { return t.Sub(u) > 0 }

// Options returns opts with the offsets of t filled in.
func (t Time) Options(opts *pattern.Options) *pattern.Options {
	var o pattern.Options
	if opts != nil {
		o = *opts
	} else {
		o = *pattern.DefaultOptions()
	}
	o.TZOffset = t.zone.Offset
	o.DSTOffset = t.DSTOffset()
	return &o
}

// Format renders t with layout; z and Z forms show the zone offset.
func (t Time) Format(layout string, opts *pattern.Options) string {
	return pattern.Format(t.raw, layout, t.Options(opts))
}

// String renders t in ISO-8601 form with its offset.
func (t Time) String() string {
	return t.Format(pattern.ISODateTimeOffset, nil)
}

// Parse reads input with layout as a time in z. When the layout carries an
// offset the parsed value is converted through UTC, otherwise it is read as
// wall time as in NewTime.
func Parse(input, layout string, z Zone, opts *pattern.Options) (Time, error) {
	res, err := pattern.ParseInstant(input, layout, opts)
	if err != nil {
		return Time{}, err
	}
	if res.HasOffset {
		return FromUTC(res.Instant-calendar.Instant(int64(res.Offset)*calendar.Minute), z), nil
	}
	return NewTime(res.Instant, z), nil
}
