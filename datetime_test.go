package datetime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	datetime "github.com/tartampluch/go-datetime"
	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/clock"
	"github.com/tartampluch/go-datetime/zone"
)

func paris(t *testing.T) zone.Zone {
	t.Helper()
	z, err := zone.ParsePOSIX("CET-1CEST,M3.5.0,M10.5.0/3")
	require.NoError(t, err)
	return z
}

// -----------------------------------------------------------------------------
// Plain instants
// -----------------------------------------------------------------------------

func TestHelpers_Instant(t *testing.T) {
	v := calendar.Date(2009, 6, 15, 13, 45, 30, 0, 0)

	datetime.SetDay(&v, 31)
	assert.Equal(t, calendar.Date(2009, 6, 30, 13, 45, 30, 0, 0), v)

	datetime.SetHour(&v, 8)
	datetime.SetMinute(&v, 5)
	datetime.SetSecond(&v, 1)
	datetime.SetMillisecond(&v, 2)
	datetime.SetMicrosecond(&v, 3)
	assert.Equal(t, calendar.Date(2009, 6, 30, 8, 5, 1, 2, 3), v)

	datetime.SetYear(&v, -44)
	datetime.SetMonth(&v, 3)
	assert.Equal(t, -44, v.Year())
	assert.Equal(t, 3, v.Month())

	datetime.SetDate(&v, calendar.DateFields{Year: 2024, Month: 2, Day: 29})
	datetime.SetTime(&v, calendar.TimeFields{Hour: 23, Minute: 59})
	assert.Equal(t, calendar.Date(2024, 2, 29, 23, 59, 0, 0, 0), v)

	datetime.SetDayOfYear(&v, 1)
	assert.Equal(t, calendar.Date(2024, 1, 1, 23, 59, 0, 0, 0), v)

	datetime.SetFields(&v, calendar.Fields{DateFields: calendar.DateFields{Year: 1, Month: 1, Day: 1}})
	assert.Equal(t, calendar.Zero, v)
}

func TestHelpers_Additions(t *testing.T) {
	v := calendar.Date(2024, 1, 31, 0, 0, 0, 0, 0)

	datetime.AddMonths(&v, 1)
	assert.Equal(t, calendar.Date(2024, 2, 29, 0, 0, 0, 0, 0), v)
	datetime.AddYears(&v, 1)
	assert.Equal(t, calendar.Date(2025, 2, 28, 0, 0, 0, 0, 0), v)

	datetime.AddDays(&v, 1)
	datetime.AddHours(&v, 1)
	datetime.AddMinutes(&v, 1)
	datetime.AddSeconds(&v, 1)
	datetime.AddMilliseconds(&v, 1)
	datetime.AddMicroseconds(&v, 1)
	assert.Equal(t, calendar.Date(2025, 3, 1, 1, 1, 1, 1, 1), v)

	f := datetime.Fields(&v)
	assert.Equal(t, calendar.Saturday, f.Weekday)
}

func TestCompare(t *testing.T) {
	a := calendar.Date(2024, 1, 1, 0, 0, 0, 0, 0)
	b := a.AddSeconds(1)
	assert.Equal(t, -1, datetime.Compare(&a, &b))
	assert.Equal(t, 1, datetime.Compare(&b, &a))
	assert.Equal(t, 0, datetime.Compare(&a, &a))
}

// -----------------------------------------------------------------------------
// Zoned and synced clocks
// -----------------------------------------------------------------------------

func TestHelpers_ZonedTime(t *testing.T) {
	tm := zone.NewTime(calendar.Date(2024, 1, 15, 12, 0, 0, 0, 0), paris(t))

	datetime.SetMonth(&tm, 7)
	assert.Equal(t, calendar.Date(2024, 7, 15, 13, 0, 0, 0, 0), tm.Raw())
	assert.Equal(t, calendar.Date(2024, 7, 15, 11, 0, 0, 0, 0), datetime.ToUTC(&tm))
	assert.Equal(t, "2024-07-15T13:00:00+02:00", datetime.FormatZoned(&tm, "yyyy-MM-dd'T'HH:mm:sszzz", nil))
	assert.Equal(t, "2024-07-15", datetime.Format(&tm, "yyyy-MM-dd", nil))
}

func TestHelpers_ZonedSynced(t *testing.T) {
	src := clock.NewManual(time.Microsecond)
	c := clock.NewZonedSynced(zone.NewTime(calendar.Date(2024, 3, 30, 12, 0, 0, 0, 0), paris(t)), src)

	datetime.AddDays(&c, 1)
	assert.Equal(t, calendar.Date(2024, 3, 31, 13, 0, 0, 0, 0), c.Raw())
	assert.True(t, c.IsDST())

	src.AdvanceDuration(time.Hour)
	assert.Equal(t, calendar.Date(2024, 3, 31, 12, 0, 0, 0, 0), datetime.ToUTC(&c))

	utc := zone.FromUTC(calendar.Date(2024, 3, 31, 12, 0, 0, 0, 0), zone.Fixed("UTC", 0))
	assert.Equal(t, 0, datetime.CompareUTC(&c, &utc))
}

func TestHelpers_Synced(t *testing.T) {
	src := clock.NewManual(time.Microsecond)
	c := clock.NewSynced(calendar.Date(2024, 1, 31, 10, 0, 0, 0, 0), src)
	src.AdvanceDuration(time.Minute)

	datetime.SetSecond(&c, 30)
	assert.Equal(t, calendar.Date(2024, 1, 31, 10, 1, 30, 0, 0), c.Raw())
	datetime.AddMonths(&c, 1)
	assert.Equal(t, calendar.Date(2024, 2, 29, 10, 1, 30, 0, 0), c.Raw())
}
