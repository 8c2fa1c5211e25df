//go:build !tinygo

package clock

import "time"

var processStart = time.Now()

// hostTicks counts microseconds on the monotonic clock of the Go runtime.
type hostTicks struct{}

func (hostTicks) Ticks() uint64             { return uint64(time.Since(processStart) / time.Microsecond) }
func (hostTicks) Resolution() time.Duration { return time.Microsecond }

// Platform returns the tick source of the build target: monotonic
// microseconds on hosted systems.
func Platform() TickSource { return hostTicks{} }
