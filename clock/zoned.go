package clock

import (
	"log/slog"

	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/internal/config"
	"github.com/tartampluch/go-datetime/zone"
)

// ZonedSynced is a zoned wall clock that advances with its tick source.
//
// The next rule transition after the reference is cached. A read compares
// the cached instant with the current standard time once; when it has been
// reached (equality counts) the visible flag flips and the value is biased
// by the delta, but the reference stays where it was. Only one transition
// is applied that way, so callers should invoke RecalcDST periodically,
// for example daily, to move the reference and the cache forward.
type ZonedSynced struct {
	base    zone.Time
	refTick uint64
	src     TickSource

	next    calendar.Instant
	nextDST bool
	hasNext bool
}

// NewZonedSynced starts a clock reading t now.
func NewZonedSynced(t zone.Time, src TickSource) ZonedSynced {
	c := ZonedSynced{base: t, refTick: src.Ticks(), src: src}
	c.refresh()
	return c
}

func (c *ZonedSynced) refresh() {
	c.next, c.nextDST, c.hasNext = c.base.NextTransition()
}

// Source returns the tick source of the clock.
func (c ZonedSynced) Source() TickSource { return c.src }

func (c ZonedSynced) readAt(tick uint64) zone.Time {
	e := calendar.Instant(elapsed(c.src, c.refTick, tick))
	raw, dst := c.base.Raw()+e, c.base.IsDST()
	if c.hasNext && c.next <= c.base.Standard()+e && c.nextDST != dst {
		d := calendar.Instant(int64(c.base.Zone().Delta()) * calendar.Minute)
		if c.nextDST {
			raw += d
		} else {
			raw -= d
		}
		dst = c.nextDST
	}
	return zone.Unchecked(raw, c.base.Zone(), dst)
}

// Now returns the current reading as a zoned time.
func (c ZonedSynced) Now() zone.Time { return c.readAt(c.src.Ticks()) }

// Raw returns the visible wall-clock value.
func (c ZonedSynced) Raw() calendar.Instant { return c.Now().Raw() }

// IsDST reports whether the current reading is in daylight saving time.
func (c ZonedSynced) IsDST() bool { return c.Now().IsDST() }

// DSTOffset returns the daylight saving minutes of the current reading.
func (c ZonedSynced) DSTOffset() int { return c.Now().DSTOffset() }

// TimeZone returns the standard offset of the zone.
func (c ZonedSynced) TimeZone() zone.TimeZone { return c.base.TimeZone() }

// Zone returns the zone of the clock.
func (c ZonedSynced) Zone() zone.Zone { return c.base.Zone() }

// NextTransition returns the cached transition in local standard time.
func (c ZonedSynced) NextTransition() (calendar.Instant, bool, bool) {
	return c.next, c.nextDST, c.hasNext
}

func (c *ZonedSynced) preSetSync() {
	tick := c.src.Ticks()
	c.base = c.readAt(tick)
	c.refTick = tick
}

// SetRaw makes the clock read v now. v is read in the frame in effect at
// the current reading, as zone.Time.SetRaw does.
func (c *ZonedSynced) SetRaw(v calendar.Instant) {
	c.preSetSync()
	c.base.SetRaw(v)
	c.refresh()
}

// Update applies f to the current reading. The tick source is read once.
func (c *ZonedSynced) Update(f func(calendar.Instant) calendar.Instant) {
	c.preSetSync()
	c.base.Update(f)
	c.refresh()
}

// AddRaw shifts the clock by us microseconds of elapsed time without
// reading the source.
func (c *ZonedSynced) AddRaw(us int64) {
	c.base.AddRaw(us)
	c.refresh()
}

// RecalcDST rebaselines the clock on a fresh reading, re-evaluates the rule
// from scratch and refreshes the cached transition.
func (c *ZonedSynced) RecalcDST() {
	tick := c.src.Ticks()
	e := calendar.Instant(elapsed(c.src, c.refTick, tick))
	c.base = zone.FromUTC(c.base.UTC()+e, c.base.Zone())
	c.refTick = tick
	c.refresh()

	slog.Debug(config.MsgDSTRecalc,
		config.LogKeyComponent, config.CompClock,
		config.LogKeyZone, c.base.Zone().Name,
		config.LogKeyDST, c.base.IsDST(),
		config.LogKeyNext, c.next.String(),
	)
}

// Resync is RecalcDST.
func (c *ZonedSynced) Resync() { c.RecalcDST() }

// Sub returns c-o in microseconds of elapsed time. Each side is read with
// its own reference tick and its own crossing state before the values are
// normalized to UTC; clocks sharing a source are read at the same tick.
func (c ZonedSynced) Sub(o ZonedSynced) int64 {
	tick := c.src.Ticks()
	otherTick := tick
	if o.src != c.src {
		otherTick = o.src.Ticks()
	}
	return c.readAt(tick).Sub(o.readAt(otherTick))
}

// Compare returns -1, 0 or +1 as c reads before, at or after o.
func (c ZonedSynced) Compare(o ZonedSynced) int { return sign(c.Sub(o)) }
