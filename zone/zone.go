// Package zone attaches a UTC offset and a daylight saving rule to calendar
// instants.
//
// Rules are evaluated in local standard time: the instant with the zone
// offset applied but without any daylight saving delta. A zoned Time keeps
// its visible value as a continuous wall clock; whenever a change moves it
// across a rule boundary the value is corrected by the delta, so adding one
// hour across the spring transition reads two hours later on the wall.
package zone

import (
	"errors"

	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/internal/config"
)

// ErrInvalidRule is returned for malformed POSIX TZ strings.
var ErrInvalidRule = errors.New(config.ErrPosixRule)

// TimeZone is a fixed offset from UTC.
type TimeZone struct {
	// Name is the abbreviation of standard time, such as "CET".
	Name string
	// Offset is in minutes east of UTC.
	Offset int
}

// UTC is the zero offset.
var UTC = TimeZone{Name: "UTC"}

// Micros returns the offset in microseconds.
func (tz TimeZone) Micros() int64 {
	return int64(tz.Offset) * calendar.Minute
}

// Zone is a named offset with its daylight saving rule. A nil Rule never
// applies daylight saving time.
type Zone struct {
	TimeZone
	DSTName string
	Rule    Rule
}

// Fixed returns a zone without daylight saving time.
func Fixed(name string, offset int) Zone {
	return Zone{TimeZone: TimeZone{Name: name, Offset: offset}}
}

func (z Zone) rule() Rule {
	if z.Rule == nil {
		return NoDST{}
	}
	return z.Rule
}

// HasDST reports whether the rule ever applies.
func (z Zone) HasDST() bool {
	_, ok := z.rule().(NoDST)
	return !ok && z.rule().Delta() != 0
}

// Delta returns the daylight saving delta in minutes.
func (z Zone) Delta() int { return z.rule().Delta() }

func (z Zone) deltaMicros() calendar.Instant {
	return calendar.Instant(int64(z.rule().Delta()) * calendar.Minute)
}

// InDST reports whether the standard-time instant std lies in the daylight
// saving region.
func (z Zone) InDST(std calendar.Instant) bool { return z.rule().InRegion(std) }

// NextTransition returns the first rule transition strictly after the
// standard-time instant std, and whether daylight saving is in effect after
// it.
func (z Zone) NextTransition(std calendar.Instant) (calendar.Instant, bool, bool) {
	return z.rule().NextTransition(std)
}
