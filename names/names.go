// Package names provides the month and weekday name tables used by the
// pattern engine. Tables are injectable: the built-in English table needs no
// resources, localized tables are built from embedded translations.
package names

import (
	"github.com/tartampluch/go-datetime/calendar"
)

// Table resolves month numbers (1..12) and weekdays to display names.
// Out-of-range arguments are clamped.
type Table interface {
	Month(month int) string
	MonthAbbr(month int) string
	Weekday(d calendar.Weekday) string
	WeekdayAbbr(d calendar.Weekday) string
}

// Static is a Table backed by fixed arrays. Index 0 is January or Sunday.
type Static struct {
	Months       [12]string
	MonthAbbrs   [12]string
	Weekdays     [7]string
	WeekdayAbbrs [7]string
}

// English is the default table.
var English = &Static{
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthAbbrs: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Weekdays: [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
	WeekdayAbbrs: [7]string{
		"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
	},
}

func monthIndex(m int) int {
	switch {
	case m < 1:
		return 0
	case m > 12:
		return 11
	}
	return m - 1
}

func weekdayIndex(d calendar.Weekday) int {
	switch {
	case d < calendar.Sunday:
		return 0
	case d > calendar.Saturday:
		return 6
	}
	return int(d - calendar.Sunday)
}

func (s *Static) Month(m int) string                    { return s.Months[monthIndex(m)] }
func (s *Static) MonthAbbr(m int) string                { return s.MonthAbbrs[monthIndex(m)] }
func (s *Static) Weekday(d calendar.Weekday) string     { return s.Weekdays[weekdayIndex(d)] }
func (s *Static) WeekdayAbbr(d calendar.Weekday) string { return s.WeekdayAbbrs[weekdayIndex(d)] }

// Months lists the twelve month names of t, abbreviated or not, in order.
func Months(t Table, abbr bool) []string {
	out := make([]string, 12)
	for i := range out {
		if abbr {
			out[i] = t.MonthAbbr(i + 1)
		} else {
			out[i] = t.Month(i + 1)
		}
	}
	return out
}

// Weekdays lists the seven weekday names of t starting with Sunday.
func Weekdays(t Table, abbr bool) []string {
	out := make([]string, 7)
	for i := range out {
		d := calendar.Sunday + calendar.Weekday(i)
		if abbr {
			out[i] = t.WeekdayAbbr(d)
		} else {
			out[i] = t.Weekday(d)
		}
	}
	return out
}
