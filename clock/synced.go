package clock

import "github.com/tartampluch/go-datetime/calendar"

// Synced is an instant that advances with its tick source.
type Synced struct {
	ref     calendar.Instant
	refTick uint64
	src     TickSource
}

// NewSynced starts a clock reading start now.
func NewSynced(start calendar.Instant, src TickSource) Synced {
	return Synced{ref: start, refTick: src.Ticks(), src: src}
}

// Source returns the tick source of the clock.
func (s Synced) Source() TickSource { return s.src }

func (s Synced) at(tick uint64) calendar.Instant {
	return s.ref + calendar.Instant(elapsed(s.src, s.refTick, tick))
}

// Raw returns the current reading.
func (s Synced) Raw() calendar.Instant { return s.at(s.src.Ticks()) }

// preSetSync folds the elapsed ticks into the reference.
func (s *Synced) preSetSync() {
	tick := s.src.Ticks()
	s.ref = s.at(tick)
	s.refTick = tick
}

// SetRaw makes the clock read v now.
func (s *Synced) SetRaw(v calendar.Instant) {
	s.refTick = s.src.Ticks()
	s.ref = v
}

// Update applies f to the current reading. The tick source is read once.
func (s *Synced) Update(f func(calendar.Instant) calendar.Instant) {
	s.preSetSync()
	s.ref = f(s.ref)
}

// AddRaw shifts the clock by us microseconds without reading the source.
func (s *Synced) AddRaw(us int64) { s.ref += calendar.Instant(us) }

// Resync rebaselines the reference on a fresh reading.
func (s *Synced) Resync() { s.preSetSync() }

// Sub returns s-o in microseconds. Clocks on the same source are compared
// through their reference ticks alone.
func (s Synced) Sub(o Synced) int64 {
	if s.src == o.src {
		return int64(s.ref-o.ref) + elapsed(s.src, s.refTick, o.refTick)
	}
	return int64(s.Raw() - o.Raw())
}

// Compare returns -1, 0 or +1 as s reads before, equal to or after o.
func (s Synced) Compare(o Synced) int {
	return sign(s.Sub(o))
}

func sign(d int64) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}
