// Package interop exchanges zone rules and dates with calendar software:
// VTIMEZONE definitions (RFC 5545) out, vCard dates (RFC 6350) in.
package interop

import (
	"fmt"
	"io"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"
	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/internal/config"
	"github.com/tartampluch/go-datetime/pattern"
	"github.com/tartampluch/go-datetime/zone"
)

const secondsPerDay = 24 * 60 * 60

// commonYear is any year without February 29th; Julian days are mapped to
// month and day through it.
const commonYear = 1970

var byDay = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// VTimezone describes z as a VTIMEZONE component starting in fromYear. An
// empty tzid uses the standard time abbreviation. Zones without a POSIX
// rule get a single STANDARD observance.
func VTimezone(z zone.Zone, tzid string, fromYear int) *ical.Component {
	if tzid == "" {
		tzid = z.Name
	}
	tz := ical.NewComponent(config.CompTimezone)
	tz.Props.SetText(config.PropTZID, tzid)

	r, ok := z.Rule.(zone.PosixRule)
	if !ok || !z.HasDST() {
		std := ical.NewComponent(config.CompStandard)
		std.Props.SetText(config.PropTZName, z.Name)
		setRaw(std, config.PropOffsetFrom, utcOffset(z.Offset))
		setRaw(std, config.PropOffsetTo, utcOffset(z.Offset))
		setRaw(std, config.PropDTStart, localTime(calendar.Date(config.VTimezoneEpochYear, 1, 1, 0, 0, 0, 0, 0)))
		tz.Children = append(tz.Children, std)
		return tz
	}

	dst := z.Offset + r.DeltaMinutes
	tz.Children = append(tz.Children,
		observance(config.CompDaylight, z.DSTName, z.Offset, dst, r.Start, fromYear),
		observance(config.CompStandard, z.Name, dst, z.Offset, r.End, fromYear),
	)
	return tz
}

// observance builds one DAYLIGHT or STANDARD block. Transition.At already
// yields the local time in the offset in effect before the change, which is
// what DTSTART and RDATE expect.
func observance(name, tzname string, from, to int, tr zone.Transition, fromYear int) *ical.Component {
	c := ical.NewComponent(name)
	c.Props.SetText(config.PropTZName, tzname)
	setRaw(c, config.PropOffsetFrom, utcOffset(from))
	setRaw(c, config.PropOffsetTo, utcOffset(to))
	setRaw(c, config.PropDTStart, localTime(tr.At(fromYear)))

	if tr.Time >= 0 && tr.Time < secondsPerDay {
		setRaw(c, config.PropRRule, Recurrence(tr).RRuleString())
		return c
	}
	// The day of the change moves with the time; list the dates instead.
	for y := fromYear + 1; y < fromYear+config.VTimezoneRDateYears; y++ {
		p := ical.NewProp(config.PropRDate)
		p.Value = localTime(tr.At(y))
		c.Props[p.Name] = append(c.Props[p.Name], *p)
	}
	return c
}

// Recurrence returns the yearly recurrence of tr. The time of day is not
// part of it.
func Recurrence(tr zone.Transition) *rrule.ROption {
	opt := &rrule.ROption{Freq: rrule.YEARLY}
	switch tr.Kind {
	case zone.MonthWeekDay:
		n := tr.Week
		if n == 5 {
			n = -1
		}
		opt.Bymonth = []int{tr.Month}
		opt.Byweekday = []rrule.Weekday{byDay[tr.Day].Nth(n)}
	case zone.Julian:
		d := calendar.Date(commonYear, 1, 1, 0, 0, 0, 0, 0).AddDays(int64(tr.Day - 1))
		opt.Bymonth = []int{d.Month()}
		opt.Bymonthday = []int{d.Day()}
	case zone.DayOfYear:
		opt.Byyearday = []int{tr.Day + 1}
	}
	return opt
}

// setRaw stores a property value verbatim, without text escaping or a
// VALUE parameter.
func setRaw(c *ical.Component, name, value string) {
	p := ical.NewProp(name)
	p.Value = value
	c.Props.Set(p)
}

func utcOffset(minutes int) string {
	return pattern.Format(calendar.Zero, config.LayoutICalOffset, &pattern.Options{TZOffset: minutes})
}

func localTime(t calendar.Instant) string {
	return pattern.Format(t, config.LayoutICalLocal, nil)
}

// Calendar wraps components in a VCALENDAR with the standard headers.
func Calendar(components ...*ical.Component) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)
	cal.Children = append(cal.Children, components...)
	return cal
}

// Encode writes cal in iCalendar form.
func Encode(w io.Writer, cal *ical.Calendar) error {
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return nil
}

// EncodeZone writes the VCALENDAR holding the VTIMEZONE of z.
func EncodeZone(w io.Writer, z zone.Zone, tzid string, fromYear int) error {
	return Encode(w, Calendar(VTimezone(z, tzid, fromYear)))
}
