// Package datetime ties the calendar, pattern, zone and clock packages
// together through capability interfaces.
//
// Every clock-like type implements RawClock: *calendar.Instant, *zone.Time,
// *clock.Synced and *clock.ZonedSynced. Optional capabilities are separate
// interfaces, and the generic helpers below are written against the
// smallest set they need, so each instantiation is resolved at compile
// time.
package datetime

import (
	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/clock"
	"github.com/tartampluch/go-datetime/pattern"
	"github.com/tartampluch/go-datetime/zone"
)

// RawClock exposes the raw microsecond value of a clock.
type RawClock interface {
	Raw() calendar.Instant
	SetRaw(calendar.Instant)
	// AddRaw moves the clock by elapsed microseconds.
	AddRaw(us int64)
	// Update replaces the value with f applied to it, reading the clock once.
	Update(f func(calendar.Instant) calendar.Instant)
}

// Syncable clocks advance on their own and can be rebaselined.
type Syncable interface {
	RawClock
	Resync()
}

// TimeZoneAware clocks carry a standard offset.
type TimeZoneAware interface {
	TimeZone() zone.TimeZone
}

// DSTAware clocks know whether daylight saving time applies.
type DSTAware interface {
	IsDST() bool
	DSTOffset() int
}

// Zoned is a raw clock with offset and daylight saving state.
type Zoned interface {
	RawClock
	TimeZoneAware
	DSTAware
}

var (
	_ RawClock = (*calendar.Instant)(nil)
	_ Zoned    = (*zone.Time)(nil)
	_ Syncable = (*clock.Synced)(nil)
	_ Syncable = (*clock.ZonedSynced)(nil)
	_ Zoned    = (*clock.ZonedSynced)(nil)
)

// Field setters. They clamp like their calendar.Instant counterparts.

func SetYear[C RawClock](c C, v int)        { c.Update(func(t calendar.Instant) calendar.Instant { return t.SetYear(v) }) }
func SetMonth[C RawClock](c C, v int)       { c.Update(func(t calendar.Instant) calendar.Instant { return t.SetMonth(v) }) }
func SetDay[C RawClock](c C, v int)         { c.Update(func(t calendar.Instant) calendar.Instant { return t.SetDay(v) }) }
func SetDayOfYear[C RawClock](c C, v int)   { c.Update(func(t calendar.Instant) calendar.Instant { return t.SetDayOfYear(v) }) }
func SetHour[C RawClock](c C, v int)        { c.Update(func(t calendar.Instant) calendar.Instant { return t.SetHour(v) }) }
func SetMinute[C RawClock](c C, v int)      { c.Update(func(t calendar.Instant) calendar.Instant { return t.SetMinute(v) }) }
func SetSecond[C RawClock](c C, v int)      { c.Update(func(t calendar.Instant) calendar.Instant { return t.SetSecond(v) }) }
func SetMillisecond[C RawClock](c C, v int) { c.Update(func(t calendar.Instant) calendar.Instant { return t.SetMillisecond(v) }) }
func SetMicrosecond[C RawClock](c C, v int) { c.Update(func(t calendar.Instant) calendar.Instant { return t.SetMicrosecond(v) }) }

// SetDate replaces the date and keeps the time of day.
func SetDate[C RawClock](c C, f calendar.DateFields) {
	c.Update(func(t calendar.Instant) calendar.Instant { return t.SetDate(f) })
}

// SetTime replaces the time of day and keeps the date.
func SetTime[C RawClock](c C, f calendar.TimeFields) {
	c.Update(func(t calendar.Instant) calendar.Instant { return t.SetTime(f) })
}

// SetFields replaces every field.
func SetFields[C RawClock](c C, f calendar.Fields) {
	c.Update(func(calendar.Instant) calendar.Instant { return calendar.Compose(f) })
}

// Fixed-length additions.

func AddDays[C RawClock](c C, n int64)         { c.AddRaw(n * calendar.Day) }
func AddHours[C RawClock](c C, n int64)        { c.AddRaw(n * calendar.Hour) }
func AddMinutes[C RawClock](c C, n int64)      { c.AddRaw(n * calendar.Minute) }
func AddSeconds[C RawClock](c C, n int64)      { c.AddRaw(n * calendar.Second) }
func AddMilliseconds[C RawClock](c C, n int64) { c.AddRaw(n * calendar.Millisecond) }
func AddMicroseconds[C RawClock](c C, n int64) { c.AddRaw(n) }

// AddMonths moves c by n calendar months. The length of the move is taken
// from one reading and applied as elapsed time.
func AddMonths[C RawClock](c C, n int) {
	t := c.Raw()
	c.AddRaw(int64(t.AddMonths(n) - t))
}

// AddYears moves c by n calendar years, as AddMonths does.
func AddYears[C RawClock](c C, n int) {
	t := c.Raw()
	c.AddRaw(int64(t.AddYears(n) - t))
}

// Fields decomposes the current value of c.
func Fields[C RawClock](c C) calendar.Fields { return c.Raw().Fields() }

// Format renders the value of c without offsets.
func Format[C RawClock](c C, layout string, opts *pattern.Options) string {
	return pattern.Format(c.Raw(), layout, opts)
}

// FormatZoned renders c with its zone and daylight saving offsets.
func FormatZoned[C Zoned](c C, layout string, opts *pattern.Options) string {
	var o pattern.Options
	if opts != nil {
		o = *opts
	} else {
		o = *pattern.DefaultOptions()
	}
	o.TZOffset = c.TimeZone().Offset
	o.DSTOffset = c.DSTOffset()
	return pattern.Format(c.Raw(), layout, &o)
}

// ToUTC returns the UTC instant of c.
func ToUTC[C Zoned](c C) calendar.Instant {
	return c.Raw() - calendar.Instant(c.TimeZone().Micros()+int64(c.DSTOffset())*calendar.Minute)
}

// Compare compares the raw values of a and b.
func Compare[A, B RawClock](a A, b B) int {
	switch x, y := a.Raw(), b.Raw(); {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// CompareUTC compares two zoned clocks by their UTC instants.
func CompareUTC[A, B Zoned](a A, b B) int {
	switch x, y := ToUTC(a), ToUTC(b); {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}
