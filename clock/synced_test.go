package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/clock"
)

var start = calendar.Date(2024, 1, 15, 12, 0, 0, 0, 0)

func TestSynced_ReadsAdvance(t *testing.T) {
	src := clock.NewManual(time.Microsecond)
	c := clock.NewSynced(start, src)
	assert.Equal(t, start, c.Raw())

	src.Advance(1_500_000)
	assert.Equal(t, start.AddMilliseconds(1500), c.Raw())
	// Reads do not move the reference.
	assert.Equal(t, start.AddMilliseconds(1500), c.Raw())
}

func TestSynced_MillisecondTicks(t *testing.T) {
	src := clock.NewManual(time.Millisecond)
	c := clock.NewSynced(start, src)
	src.Advance(5)
	assert.Equal(t, start.AddMilliseconds(5), c.Raw())

	src.AdvanceDuration(2 * time.Second)
	assert.Equal(t, start.AddMilliseconds(2005), c.Raw())
}

func TestSynced_FuncSource(t *testing.T) {
	var counter uint64
	src := clock.NewFunc(func() uint64 { return counter }, 10*time.Microsecond)
	c := clock.NewSynced(start, src)
	counter = 7
	assert.Equal(t, start.AddMicroseconds(70), c.Raw())
}

func TestSynced_UpdateKeepsElapsedTime(t *testing.T) {
	src := clock.NewManual(time.Microsecond)
	c := clock.NewSynced(start, src)
	src.AdvanceDuration(90 * time.Minute)

	c.Update(func(v calendar.Instant) calendar.Instant { return v.SetHour(8) })
	assert.Equal(t, calendar.Date(2024, 1, 15, 8, 30, 0, 0, 0), c.Raw())

	src.AdvanceDuration(time.Minute)
	assert.Equal(t, calendar.Date(2024, 1, 15, 8, 31, 0, 0, 0), c.Raw())
}

func TestSynced_SetRaw(t *testing.T) {
	src := clock.NewManual(time.Microsecond)
	c := clock.NewSynced(start, src)
	src.AdvanceDuration(time.Hour)

	c.SetRaw(calendar.UnixEpoch)
	assert.Equal(t, calendar.UnixEpoch, c.Raw())
	src.AdvanceDuration(time.Second)
	assert.Equal(t, calendar.UnixEpoch.AddSeconds(1), c.Raw())
}

func TestSynced_AddRawDoesNotReadSource(t *testing.T) {
	src := newMockTicks(t)
	src.On("Ticks").Return(uint64(0)).Once()

	c := clock.NewSynced(start, src)
	c.AddRaw(calendar.Hour)
	c.AddRaw(-calendar.Minute)
	src.AssertExpectations(t)

	src.On("Ticks").Return(uint64(0)).Once()
	assert.Equal(t, calendar.Date(2024, 1, 15, 12, 59, 0, 0, 0), c.Raw())
	src.AssertExpectations(t)
}

func TestSynced_Resync(t *testing.T) {
	src := clock.NewManual(time.Microsecond)
	c := clock.NewSynced(start, src)
	src.Advance(42)
	c.Resync()
	assert.Equal(t, start.AddMicroseconds(42), c.Raw())
	src.Advance(1)
	assert.Equal(t, start.AddMicroseconds(43), c.Raw())
}

// -----------------------------------------------------------------------------
// Two clocks
// -----------------------------------------------------------------------------

func TestSynced_SubSameSourceUsesReferenceTicks(t *testing.T) {
	src := newMockTicks(t)
	src.On("Ticks").Return(uint64(100)).Once()
	a := clock.NewSynced(start, src)
	src.On("Ticks").Return(uint64(250)).Once()
	b := clock.NewSynced(start, src)

	// a started 150 ticks earlier, so it reads 150 µs ahead.
	assert.Equal(t, int64(150), a.Sub(b))
	assert.Equal(t, int64(-150), b.Sub(a))
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	src.AssertExpectations(t)
}

func TestSynced_SubDifferentSources(t *testing.T) {
	s1 := clock.NewManual(time.Microsecond)
	s2 := clock.NewManual(time.Millisecond)
	a := clock.NewSynced(start, s1)
	b := clock.NewSynced(start, s2)

	s1.Advance(3000)
	s2.Advance(1)
	assert.Equal(t, 2*calendar.Millisecond, a.Sub(b))

	s2.Advance(2)
	assert.Equal(t, 0, a.Compare(b))
}
