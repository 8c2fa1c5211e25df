// Package clock turns stored instants into live clocks driven by a
// monotonic tick source.
//
// A synchronized clock keeps a reference instant and the tick reading taken
// when it was set. Reads add the ticks elapsed since then and never modify
// the clock. Field setters take a fresh reading first (preSetSync) so the
// new field value applies to the current time; pure additions only shift
// the reference.
//
// Clocks are values without locks. Counter wraparound is not handled.
package clock

import "time"

// TickSource is a monotonic counter. Implementations must not block and
// must be comparable; clocks sharing a source compare without reading it.
type TickSource interface {
	Ticks() uint64
	Resolution() time.Duration
}

// microsPerTick returns the tick length in microseconds, at least one.
func microsPerTick(src TickSource) int64 {
	return max(int64(src.Resolution()/time.Microsecond), 1)
}

// elapsed converts the ticks between from and to into microseconds. The
// difference is signed so that an earlier to yields a negative count.
func elapsed(src TickSource, from, to uint64) int64 {
	return int64(to-from) * microsPerTick(src)
}
