package calendar

// Weekday returns the day of the week of the instant.
func (t Instant) Weekday() Weekday {
	return weekdayFromDays(floorDiv(int64(t), Day))
}

// weekIndex numbers the week containing the zero-based day idx of a period
// whose first day falls on dowFirst. Weeks start on first; the partial week
// at the start of the period is week 1.
func weekIndex(idx int, dowFirst, first Weekday) int {
	return (idx+int(floorMod(int64(dowFirst-first), 7)))/7 + 1
}

// WeekOfYear returns the week of the year (1..54) with weeks starting on
// first.
func (t Instant) WeekOfYear(first Weekday) int {
	days := floorDiv(int64(t), Day)
	c := civilFromDays(days)
	jan1 := weekdayFromDays(days - int64(c.doy))
	return weekIndex(c.doy, jan1, first)
}

// WeekOfMonth returns the week of the month (1..6) with weeks starting on
// first.
func (t Instant) WeekOfMonth(first Weekday) int {
	days := floorDiv(int64(t), Day)
	c := civilFromDays(days)
	return weekIndex(c.day-1, weekdayFromDays(days-int64(c.day-1)), first)
}

// WeekdayOfMonth returns which occurrence of its weekday the day is within
// the month: 1 for the first Monday, 2 for the second and so on.
func (t Instant) WeekdayOfMonth() int {
	return (t.Day()-1)/7 + 1
}

// NthWeekday returns the day of month of the n-th wd in the given month. An
// n of 5 or more selects the last occurrence, n below 1 the first.
func NthWeekday(year, month, n int, wd Weekday) int {
	a := astronomical(clampYear(year))
	month = clamp(month, 1, 12)
	return nthWeekday(a, month, n, wd)
}

func nthWeekday(a int64, month, n int, wd Weekday) int {
	s := &monthStarts[leapIndex(a)]
	length := s[month] - s[month-1]
	first := weekdayFromDays(daysFromCivil(a, month, 1))
	day := 1 + int(floorMod(int64(wd-first), 7)) + (clamp(n, 1, 5)-1)*7
	for day > length {
		day -= 7
	}
	return day
}
