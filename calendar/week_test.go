package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-datetime/calendar"
)

func TestWeekday(t *testing.T) {
	assert.Equal(t, calendar.Monday, calendar.Zero.Weekday())
	assert.Equal(t, calendar.Monday, calendar.Date(2009, 6, 15, 0, 0, 0, 0, 0).Weekday())
	assert.Equal(t, calendar.Thursday, calendar.Date(1970, 1, 1, 23, 0, 0, 0, 0).Weekday())
	assert.Equal(t, calendar.Sunday, calendar.Date(-1, 12, 31, 0, 0, 0, 0, 0).Weekday())
	assert.Equal(t, calendar.Saturday, calendar.Date(-1, 12, 30, 0, 0, 0, 0, 0).Weekday())
	assert.Equal(t, "Wednesday", calendar.Wednesday.String())
	assert.Equal(t, "Weekday(9)", calendar.Weekday(9).String())
}

func TestWeekOfMonth_WednesdayFirst(t *testing.T) {
	// May 1st 2024 was a Wednesday.
	for day := 1; day <= 4; day++ {
		assert.Equal(t, 1, calendar.Date(2024, 5, day, 0, 0, 0, 0, 0).WeekOfMonth(calendar.Sunday), "day %d", day)
	}
	for day := 5; day <= 11; day++ {
		assert.Equal(t, 2, calendar.Date(2024, 5, day, 0, 0, 0, 0, 0).WeekOfMonth(calendar.Sunday), "day %d", day)
	}
	assert.Equal(t, 3, calendar.Date(2024, 5, 12, 0, 0, 0, 0, 0).WeekOfMonth(calendar.Sunday))
	// On a Monday-first week the 6th is where week 2 starts.
	assert.Equal(t, 1, calendar.Date(2024, 5, 5, 0, 0, 0, 0, 0).WeekOfMonth(calendar.Monday))
	assert.Equal(t, 2, calendar.Date(2024, 5, 6, 0, 0, 0, 0, 0).WeekOfMonth(calendar.Monday))
}

func TestWeekOfYear(t *testing.T) {
	// January 1st 2025 was a Wednesday.
	assert.Equal(t, 1, calendar.Date(2025, 1, 4, 0, 0, 0, 0, 0).WeekOfYear(calendar.Sunday))
	assert.Equal(t, 2, calendar.Date(2025, 1, 5, 0, 0, 0, 0, 0).WeekOfYear(calendar.Sunday))
	assert.Equal(t, 53, calendar.Date(2025, 12, 31, 0, 0, 0, 0, 0).WeekOfYear(calendar.Sunday))
}

func TestWeekdayOfMonth(t *testing.T) {
	assert.Equal(t, 1, calendar.Date(2024, 5, 7, 0, 0, 0, 0, 0).WeekdayOfMonth())
	assert.Equal(t, 2, calendar.Date(2024, 5, 8, 0, 0, 0, 0, 0).WeekdayOfMonth())
	assert.Equal(t, 5, calendar.Date(2024, 5, 31, 0, 0, 0, 0, 0).WeekdayOfMonth())
}

func TestNthWeekday(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		n     int
		wd    calendar.Weekday
		want  int
	}{
		{"SecondSundayOfMarch2024", 2024, 3, 2, calendar.Sunday, 10},
		{"FirstSundayOfNovember2024", 2024, 11, 1, calendar.Sunday, 3},
		{"LastSundayOfMarch2024", 2024, 3, 5, calendar.Sunday, 31},
		{"LastSundayOfOctober2024", 2024, 10, 5, calendar.Sunday, 27},
		{"LastFridayOfFebruary2024", 2024, 2, 5, calendar.Friday, 23},
		{"FifthThursdayOfFebruary2024", 2024, 2, 5, calendar.Thursday, 29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.NthWeekday(tt.year, tt.month, tt.n, tt.wd))
		})
	}
}
