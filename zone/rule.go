package zone

import (
	"fmt"

	"github.com/tartampluch/go-datetime/calendar"
)

// Rule decides where daylight saving time applies. Instants are local
// standard time.
type Rule interface {
	// InRegion reports whether std lies inside the daylight saving region.
	InRegion(std calendar.Instant) bool
	// NextTransition returns the first transition strictly after std and
	// whether the region is entered there. ok is false for rules that never
	// change.
	NextTransition(std calendar.Instant) (at calendar.Instant, dst bool, ok bool)
	// Delta returns the daylight saving delta in minutes.
	Delta() int
}

// NoDST is the rule of zones that stay on standard time.
type NoDST struct{}

func (NoDST) InRegion(calendar.Instant) bool { return false }
func (NoDST) Delta() int                     { return 0 }

func (NoDST) NextTransition(calendar.Instant) (calendar.Instant, bool, bool) {
	return 0, false, false
}

// TransitionKind is the way a POSIX transition names its day.
type TransitionKind int

const (
	// Julian counts days 1..365 and never counts February 29th (Jn).
	Julian TransitionKind = iota
	// DayOfYear counts days 0..365 including February 29th (n).
	DayOfYear
	// MonthWeekDay selects the d-th weekday of week w of month m (Mm.w.d).
	// Week 5 is the last such weekday of the month.
	MonthWeekDay
)

// Transition is one end of a daylight saving period.
type Transition struct {
	Kind  TransitionKind
	Day   int // day number, or weekday 0 (Sunday) to 6 for MonthWeekDay
	Week  int
	Month int
	// Time is the local time of day of the change in seconds. It may be
	// negative or exceed one day.
	Time int
}

// At returns the local instant of the transition in year, in the frame of
// the time in effect before it.
func (tr Transition) At(year int) calendar.Instant {
	jan1 := calendar.Date(year, 1, 1, 0, 0, 0, 0, 0)
	var doy int
	switch tr.Kind {
	case Julian:
		doy = tr.Day - 1
		if calendar.IsLeap(year) && tr.Day >= 60 {
			doy++
		}
	case DayOfYear:
		doy = tr.Day
	case MonthWeekDay:
		day := calendar.NthWeekday(year, tr.Month, tr.Week, calendar.Weekday(tr.Day+1))
		doy = calendar.Date(year, tr.Month, day, 0, 0, 0, 0, 0).DayOfYear() - 1
	}
	return jan1.AddDays(int64(doy)).AddSeconds(int64(tr.Time))
}

// String renders the transition in POSIX form, with the time omitted when
// it is the 02:00 default.
func (tr Transition) String() string {
	var s string
	switch tr.Kind {
	case Julian:
		s = fmt.Sprintf("J%d", tr.Day)
	case DayOfYear:
		s = fmt.Sprintf("%d", tr.Day)
	default:
		s = fmt.Sprintf("M%d.%d.%d", tr.Month, tr.Week, tr.Day)
	}
	if tr.Time == defaultTransitionTime {
		return s
	}
	return s + "/" + formatPOSIXOffset(tr.Time)
}

// PosixRule is a yearly pair of transitions. Start is expressed in standard
// time and End in daylight saving time, as in POSIX TZ strings. A Start
// later in the year than End describes a southern hemisphere rule. A rule
// whose transitions coincide never applies.
type PosixRule struct {
	Start        Transition
	End          Transition
	DeltaMinutes int
}

func (r PosixRule) Delta() int { return r.DeltaMinutes }

func (r PosixRule) bounds(year int) (start, end calendar.Instant) {
	start = r.Start.At(year)
	end = r.End.At(year) - calendar.Instant(int64(r.DeltaMinutes)*calendar.Minute)
	return start, end
}

func (r PosixRule) InRegion(std calendar.Instant) bool {
	start, end := r.bounds(std.Year())
	switch {
	case start == end:
		return false
	case start < end:
		return std >= start && std < end
	default:
		return std >= start || std < end
	}
}

func (r PosixRule) NextTransition(std calendar.Instant) (calendar.Instant, bool, bool) {
	year := std.Year()
	next := year + 1
	if next == 0 {
		next = 1
	}

	var at calendar.Instant
	var dst, found bool
	for _, y := range [2]int{year, next} {
		start, end := r.bounds(y)
		if start == end {
			return 0, false, false
		}
		for _, c := range [2]struct {
			at  calendar.Instant
			dst bool
		}{{start, true}, {end, false}} {
			if c.at > std && (!found || c.at < at) {
				at, dst, found = c.at, c.dst, true
			}
		}
	}
	return at, dst, found
}
