//go:build tinygo

package clock

import "time"

var bootTime = time.Now()

// boardTicks counts milliseconds since boot. Microcontroller timers are
// read through the runtime, which keeps them monotonic.
type boardTicks struct{}

func (boardTicks) Ticks() uint64             { return uint64(time.Since(bootTime) / time.Millisecond) }
func (boardTicks) Resolution() time.Duration { return time.Millisecond }

// Platform returns the tick source of the build target: milliseconds since
// boot on TinyGo boards.
func Platform() TickSource { return boardTicks{} }
