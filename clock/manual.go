package clock

import "time"

// Manual is a tick source advanced by hand, for tests and simulations.
type Manual struct {
	ticks      uint64
	resolution time.Duration
}

// NewManual returns a source at tick zero. A non-positive resolution means
// one microsecond.
func NewManual(resolution time.Duration) *Manual {
	if resolution <= 0 {
		resolution = time.Microsecond
	}
	return &Manual{resolution: resolution}
}

func (m *Manual) Ticks() uint64             { return m.ticks }
func (m *Manual) Resolution() time.Duration { return m.resolution }

// Advance moves the counter forward by n ticks.
func (m *Manual) Advance(n uint64) { m.ticks += n }

// AdvanceDuration moves the counter forward by d, truncated to whole ticks.
func (m *Manual) AdvanceDuration(d time.Duration) { m.ticks += uint64(d / m.resolution) }

// Func adapts a hardware tick function such as a board timer.
type Func struct {
	read       func() uint64
	resolution time.Duration
}

// NewFunc wraps read, whose counter advances once per resolution.
func NewFunc(read func() uint64, resolution time.Duration) *Func {
	return &Func{read: read, resolution: resolution}
}

func (f *Func) Ticks() uint64             { return f.read() }
func (f *Func) Resolution() time.Duration { return f.resolution }
