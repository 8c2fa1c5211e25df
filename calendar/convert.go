package calendar

// monthStarts holds the zero-based day of year on which each month begins,
// for common (index 0) and leap (index 1) years.
var monthStarts = [2][13]int{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366},
}

// astronomical maps a calendar year to the astronomical numbering in which
// 1 BC is year 0.
func astronomical(year int) int64 {
	if year < 0 {
		return int64(year) + 1
	}
	return int64(year)
}

// fromAstronomical is the inverse of astronomical.
func fromAstronomical(a int64) int {
	if a <= 0 {
		return int(a - 1)
	}
	return int(a)
}

func isLeapAstronomical(a int64) bool {
	return a%4 == 0 && (a%100 != 0 || a%400 == 0)
}

func leapIndex(a int64) int {
	if isLeapAstronomical(a) {
		return 1
	}
	return 0
}

// IsLeap reports whether year has 366 days. Negative years are shifted by
// one first because year 0 does not exist: 1 BC, 5 BC and 401 BC are leap.
func IsLeap(year int) bool {
	return isLeapAstronomical(astronomical(year))
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	return monthStarts[leapIndex(astronomical(year))][12]
}

// DaysInMonth returns the length of month (1..12, clamped) in year.
func DaysInMonth(year, month int) int {
	s := &monthStarts[leapIndex(astronomical(year))]
	month = clamp(month, 1, 12)
	return s[month] - s[month-1]
}

// daysBeforeYear counts the days from the epoch to January 1st of the
// astronomical year a. It is negative for a <= 0.
func daysBeforeYear(a int64) int64 {
	y := a - 1
	return 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
}

// yearFromDays resolves a day count to an astronomical year and a zero-based
// day of year by peeling 400, 100, 4 and 1 year blocks. The last year of a
// four-year block and the last century of a 400-year block are one day
// longer, hence the clamps.
func yearFromDays(days int64) (a int64, doy int) {
	n400 := floorDiv(days, daysPer400Years)
	d := days - n400*daysPer400Years

	n100 := d / daysPer100Years
	if n100 == 4 {
		n100 = 3
	}
	d -= n100 * daysPer100Years

	n4 := d / daysPer4Years
	d -= n4 * daysPer4Years

	n1 := d / 365
	if n1 == 4 {
		n1 = 3
	}
	d -= n1 * 365

	return 400*n400 + 100*n100 + 4*n4 + n1 + 1, int(d)
}

// monthDay resolves a zero-based day of year with a fixed decision tree over
// the month starts; any day is placed in at most four comparisons.
func monthDay(doy int, leap int) (month, day int) {
	s := &monthStarts[leap]
	var m int
	if doy < s[6] {
		if doy < s[3] {
			if doy < s[1] {
				m = 0
			} else if doy < s[2] {
				m = 1
			} else {
				m = 2
			}
		} else {
			if doy < s[4] {
				m = 3
			} else if doy < s[5] {
				m = 4
			} else {
				m = 5
			}
		}
	} else {
		if doy < s[9] {
			if doy < s[7] {
				m = 6
			} else if doy < s[8] {
				m = 7
			} else {
				m = 8
			}
		} else {
			if doy < s[10] {
				m = 9
			} else if doy < s[11] {
				m = 10
			} else {
				m = 11
			}
		}
	}
	return m + 1, doy - s[m] + 1
}

// civil is the date part of an instant in the form the field operations need.
type civil struct {
	a     int64 // astronomical year
	leap  int
	doy   int // zero-based
	month int
	day   int
}

func civilFromDays(days int64) civil {
	a, doy := yearFromDays(days)
	leap := leapIndex(a)
	m, d := monthDay(doy, leap)
	return civil{a: a, leap: leap, doy: doy, month: m, day: d}
}

// daysFromCivil counts days from the epoch; month and day must be valid.
func daysFromCivil(a int64, month, day int) int64 {
	return daysBeforeYear(a) + int64(monthStarts[leapIndex(a)][month-1]+day-1)
}

func splitDays(t Instant) (days int64, micros int64) {
	days = floorDiv(int64(t), Day)
	return days, int64(t) - days*Day
}

func weekdayFromDays(days int64) Weekday {
	// 0001-01-01 was a Monday.
	return Weekday(floorMod(days+1, 7) + 1)
}

// Decompose splits an instant into its calendar fields.
func Decompose(t Instant) Fields {
	days, us := splitDays(t)
	c := civilFromDays(days)
	return Fields{
		DateFields: DateFields{
			Year:    fromAstronomical(c.a),
			Month:   c.month,
			Day:     c.day,
			Weekday: weekdayFromDays(days),
		},
		TimeFields: timeFromMicros(us),
	}
}

func timeFromMicros(us int64) TimeFields {
	return TimeFields{
		Hour:        int(us / Hour),
		Minute:      int(us % Hour / Minute),
		Second:      int(us % Minute / Second),
		Millisecond: int(us % Second / Millisecond),
		Microsecond: int(us % Millisecond),
	}
}

// Compose is the inverse of Decompose. Out-of-range fields are clamped:
// year 0 becomes 1, the day is limited to the month length and every time
// field to its range. Weekday is ignored.
func Compose(f Fields) Instant {
	a := astronomical(clampYear(f.Year))
	m := clamp(f.Month, 1, 12)
	d := clamp(f.Day, 1, monthStarts[leapIndex(a)][m]-monthStarts[leapIndex(a)][m-1])
	return Instant(daysFromCivil(a, m, d)*Day + microsFromTime(f.TimeFields))
}

func microsFromTime(t TimeFields) int64 {
	return int64(clamp(t.Hour, 0, 23))*Hour +
		int64(clamp(t.Minute, 0, 59))*Minute +
		int64(clamp(t.Second, 0, 59))*Second +
		int64(clamp(t.Millisecond, 0, 999))*Millisecond +
		int64(clamp(t.Microsecond, 0, 999))
}

func clampYear(y int) int {
	if y == 0 {
		return 1
	}
	return clamp(y, MinYear, MaxYear)
}

// Date composes an instant from individual fields, clamping like Compose.
func Date(year, month, day, hour, minute, second, millisecond, microsecond int) Instant {
	return Compose(Fields{
		DateFields: DateFields{Year: year, Month: month, Day: day},
		TimeFields: TimeFields{
			Hour:        hour,
			Minute:      minute,
			Second:      second,
			Millisecond: millisecond,
			Microsecond: microsecond,
		},
	})
}

// Fields decomposes the instant.
func (t Instant) Fields() Fields { return Decompose(t) }

// Date returns the date part of the instant.
func (t Instant) Date() DateFields { return Decompose(t).DateFields }

// Clock returns the time-of-day part of the instant.
func (t Instant) Clock() TimeFields {
	_, us := splitDays(t)
	return timeFromMicros(us)
}
