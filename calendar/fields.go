package calendar

// Time-of-day fields are read and written by modulo arithmetic on the raw
// value, so they never need the date. floorMod keeps BC instants correct.

// Microsecond returns the microsecond within the millisecond (0..999).
func (t Instant) Microsecond() int { return int(floorMod(int64(t), Millisecond)) }

// Millisecond returns the millisecond within the second (0..999).
func (t Instant) Millisecond() int { return int(floorMod(int64(t), Second) / Millisecond) }

// Second returns the second within the minute (0..59).
func (t Instant) Second() int { return int(floorMod(int64(t), Minute) / Second) }

// Minute returns the minute within the hour (0..59).
func (t Instant) Minute() int { return int(floorMod(int64(t), Hour) / Minute) }

// Hour returns the hour of the day (0..23).
func (t Instant) Hour() int { return int(floorMod(int64(t), Day) / Hour) }

// MicrosOfDay returns the microseconds elapsed since midnight.
func (t Instant) MicrosOfDay() int64 { return floorMod(int64(t), Day) }

// DaysFromEpoch returns the whole days since 0001-01-01, negative for BC.
func (t Instant) DaysFromEpoch() int64 { return floorDiv(int64(t), Day) }

// SetMicrosecond replaces the microsecond field (clamped to 0..999).
func (t Instant) SetMicrosecond(v int) Instant {
	return t + Instant(int64(clamp(v, 0, 999)-t.Microsecond()))
}

// SetMillisecond replaces the millisecond field (clamped to 0..999).
func (t Instant) SetMillisecond(v int) Instant {
	return t + Instant(int64(clamp(v, 0, 999)-t.Millisecond())*Millisecond)
}

// SetSecond replaces the second field (clamped to 0..59).
func (t Instant) SetSecond(v int) Instant {
	return t + Instant(int64(clamp(v, 0, 59)-t.Second())*Second)
}

// SetMinute replaces the minute field (clamped to 0..59).
func (t Instant) SetMinute(v int) Instant {
	return t + Instant(int64(clamp(v, 0, 59)-t.Minute())*Minute)
}

// SetHour replaces the hour field (clamped to 0..23).
func (t Instant) SetHour(v int) Instant {
	return t + Instant(int64(clamp(v, 0, 23)-t.Hour())*Hour)
}

// SetMicrosOfDay replaces the time of day (clamped to one day).
func (t Instant) SetMicrosOfDay(us int64) Instant {
	if us < 0 {
		us = 0
	} else if us >= Day {
		us = Day - 1
	}
	return t - Instant(t.MicrosOfDay()) + Instant(us)
}

// SetDaysFromEpoch moves the instant to another day, keeping the time of day.
func (t Instant) SetDaysFromEpoch(days int64) Instant {
	return Instant(days*Day + t.MicrosOfDay())
}

// SetTime replaces the whole time of day.
func (t Instant) SetTime(f TimeFields) Instant {
	return t.SetMicrosOfDay(microsFromTime(f))
}

// AddMicroseconds through AddDays are pure offsets.

func (t Instant) AddMicroseconds(n int64) Instant { return t + Instant(n) }
func (t Instant) AddMilliseconds(n int64) Instant { return t + Instant(n*Millisecond) }
func (t Instant) AddSeconds(n int64) Instant      { return t + Instant(n*Second) }
func (t Instant) AddMinutes(n int64) Instant      { return t + Instant(n*Minute) }
func (t Instant) AddHours(n int64) Instant        { return t + Instant(n*Hour) }
func (t Instant) AddDays(n int64) Instant         { return t + Instant(n*Day) }

func (t Instant) civil() (civil, int64) {
	days, us := splitDays(t)
	return civilFromDays(days), us
}

// Year returns the calendar year; never 0.
func (t Instant) Year() int {
	c, _ := t.civil()
	return fromAstronomical(c.a)
}

// Month returns the month (1..12).
func (t Instant) Month() int {
	c, _ := t.civil()
	return c.month
}

// Day returns the day of the month (1..31).
func (t Instant) Day() int {
	c, _ := t.civil()
	return c.day
}

// DayOfYear returns the day of the year (1..366).
func (t Instant) DayOfYear() int {
	c, _ := t.civil()
	return c.doy + 1
}

// SetDay replaces the day of the month, clamped to the month length.
func (t Instant) SetDay(v int) Instant {
	c, _ := t.civil()
	limit := monthStarts[c.leap][c.month] - monthStarts[c.leap][c.month-1]
	return t + Instant(int64(clamp(v, 1, limit)-c.day)*Day)
}

// SetDayOfYear replaces the day of the year, clamped to the year length.
func (t Instant) SetDayOfYear(v int) Instant {
	c, _ := t.civil()
	return t + Instant(int64(clamp(v, 1, monthStarts[c.leap][12])-1-c.doy)*Day)
}

// SetMonth replaces the month (clamped to 1..12). The day is clamped to the
// length of the new month.
func (t Instant) SetMonth(v int) Instant {
	c, us := t.civil()
	return fromCivil(c.a, clamp(v, 1, 12), c.day, us)
}

// SetYear replaces the year, clamped to MinYear..MaxYear with 0 read as 1.
// February 29th becomes the 28th in a common year.
func (t Instant) SetYear(v int) Instant {
	c, us := t.civil()
	return fromCivil(astronomical(clampYear(v)), c.month, c.day, us)
}

// SetDate replaces the date, keeping the time of day. Fields are clamped as
// in Compose.
func (t Instant) SetDate(f DateFields) Instant {
	_, us := splitDays(t)
	a := astronomical(clampYear(f.Year))
	return fromCivil(a, clamp(f.Month, 1, 12), f.Day, us)
}

// AddMonths moves the instant by n calendar months. The destination is found
// from the total month count, then the day is clamped to its length.
func (t Instant) AddMonths(n int) Instant {
	c, us := t.civil()
	total := c.a*12 + int64(c.month-1) + int64(n)
	return fromCivil(floorDiv(total, 12), int(floorMod(total, 12))+1, c.day, us)
}

// AddYears moves the instant by n calendar years; 1 BC plus one year is
// AD 1. February 29th is clamped in common years.
func (t Instant) AddYears(n int) Instant {
	c, us := t.civil()
	return fromCivil(c.a+int64(n), c.month, c.day, us)
}

func fromCivil(a int64, month, day int, us int64) Instant {
	s := &monthStarts[leapIndex(a)]
	day = clamp(day, 1, s[month]-s[month-1])
	return Instant(daysFromCivil(a, month, day)*Day + us)
}
