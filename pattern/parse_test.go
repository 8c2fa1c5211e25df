package pattern_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/names"
	"github.com/tartampluch/go-datetime/pattern"
)

func TestParse_ExactWidth(t *testing.T) {
	var res pattern.Result
	n := pattern.Parse("15", "dd", nil, &res)
	assert.Equal(t, 2, n)
	assert.Equal(t, 15, res.Instant.Day())

	n = pattern.Parse("5", "dd", nil, &res)
	assert.LessOrEqual(t, n, 0)
	assert.Equal(t, -1, n)

	n = pattern.Parse("5", "d", nil, &res)
	assert.Equal(t, 1, n)
	assert.Equal(t, 5, res.Instant.Day())
}

func TestParse_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		layout string
		want   calendar.Instant
	}{
		{"ISODateTime", "2009-06-15T13:45:30", pattern.ISODateTime, calendar.Date(2009, 6, 15, 13, 45, 30, 0, 0)},
		{"Micro", "2009-06-15T13:45:30.123456", pattern.ISODateTimeMicro, sample},
		{"Compact", "20090615T134530", pattern.Compact, calendar.Date(2009, 6, 15, 13, 45, 30, 0, 0)},
		{"Names", "Mon, 15 JUNE 2009", "EEE, d MMMM y", calendar.Date(2009, 6, 15, 0, 0, 0, 0, 0)},
		{"MonthAbbr", "15-jun-2009", "dd-MMM-yyyy", calendar.Date(2009, 6, 15, 0, 0, 0, 0, 0)},
		{"TwoDigitYearLow", "49", "yy", calendar.Date(2049, 1, 1, 0, 0, 0, 0, 0)},
		{"TwoDigitYearHigh", "50", "yy", calendar.Date(1950, 1, 1, 0, 0, 0, 0, 0)},
		{"EraBC", "44 BC", "y G", calendar.Date(-44, 1, 1, 0, 0, 0, 0, 0)},
		{"EraAD", "44 ad", "y G", calendar.Date(44, 1, 1, 0, 0, 0, 0, 0)},
		{"OptionalEraPresent", "44bc", "yg", calendar.Date(-44, 1, 1, 0, 0, 0, 0, 0)},
		{"OptionalEraAbsent", "44", "yg", calendar.Date(44, 1, 1, 0, 0, 0, 0, 0)},
		{"SignedYear", "-0044-03-15", "YYYY-MM-dd", calendar.Date(-44, 3, 15, 0, 0, 0, 0, 0)},
		{"PlusSignedYear", "+2009", "Y", calendar.Date(2009, 1, 1, 0, 0, 0, 0, 0)},
		{"PM", "01:45 PM", "hh:mm a", calendar.Date(1, 1, 1, 13, 45, 0, 0, 0)},
		{"Midnight", "12:05 am", "hh:mm a", calendar.Date(1, 1, 1, 0, 5, 0, 0, 0)},
		{"Noon", "12:05 PM", "h:mm a", calendar.Date(1, 1, 1, 12, 5, 0, 0, 0)},
		{"MarkerBeforeHour", "PM 1", "a h", calendar.Date(1, 1, 1, 13, 0, 0, 0, 0)},
		{"DayOfYear", "2024-060", "yyyy-DDD", calendar.Date(2024, 2, 29, 0, 0, 0, 0, 0)},
		{"VariableFraction", "30.5", "ss.FFFFFF", calendar.Date(1, 1, 1, 0, 0, 30, 500, 0)},
		{"EmptyFraction", "30.", "ss.FFF", calendar.Date(1, 1, 1, 0, 0, 30, 0, 0)},
		{"LongFraction", "30.12345678", "ss.ffffffff", calendar.Date(1, 1, 1, 0, 0, 30, 123, 456)},
		{"WeekFieldsConsumed", "2 25 3 3 15/6/2009", "e w W n d/M/y", calendar.Date(2009, 6, 15, 0, 0, 0, 0, 0)},
		{"QuotedLiteral", "day 15", "'day' d", calendar.Date(1, 1, 15, 0, 0, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res pattern.Result
			n := pattern.Parse(tt.input, tt.layout, nil, &res)
			require.Equal(t, len(tt.input), n)
			assert.Equal(t, tt.want, res.Instant)
			assert.False(t, res.HasOffset)
		})
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		layout string
		offset int
	}{
		{"LiteralMismatch", "2009/06/15", pattern.ISODate, 4},
		{"MonthRange", "2009-13-15", pattern.ISODate, 5},
		{"DayPastMonth", "2023-02-29", pattern.ISODate, 8},
		{"DayOfYearPastYear", "2023-366", "yyyy-DDD", 5},
		{"HourRange", "24:00", "HH:mm", 0},
		{"Hour12Range", "13", "hh", 0},
		{"ShortInput", "2009-06", pattern.ISODate, 7},
		{"ShortFraction", "30.12", "ss.fff", 5},
		{"UnknownMonthName", "15 Smarch", "d MMMM", 3},
		{"UnknownEra", "44 CE", "y G", 3},
		{"YearZero", "0000", "yyyy", 0},
		{"MissingOffsetSign", "0100", "zzzz", 0},
		{"OffsetMinutes", "+01:60", "zzz", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res pattern.Result
			res.Instant = 42
			n := pattern.Parse(tt.input, tt.layout, nil, &res)
			assert.Equal(t, -tt.offset, n)
			assert.Equal(t, calendar.Instant(42), res.Instant, "result untouched on failure")
		})
	}
}

func TestParse_SkipText(t *testing.T) {
	opts := &pattern.Options{MatchText: false}
	var res pattern.Result
	n := pattern.Parse("2009/06/15", pattern.ISODate, opts, &res)
	assert.Equal(t, 10, n)
	assert.Equal(t, calendar.Date(2009, 6, 15, 0, 0, 0, 0, 0), res.Instant)

	// Characters are skipped by rune, not by byte.
	n = pattern.Parse("15é06", "dd-MM", opts, &res)
	assert.Equal(t, len("15é06"), n)
	assert.Equal(t, 6, res.Instant.Month())
}

func TestParse_TrailingInput(t *testing.T) {
	var res pattern.Result
	assert.Equal(t, 2, pattern.Parse("15xyz", "dd", nil, &res))
}

func TestParse_Offsets(t *testing.T) {
	tests := []struct {
		input  string
		layout string
		want   int
	}{
		{"+1", "z", 60},
		{"-11", "z", -660},
		{"+05", "zz", 300},
		{"-03:30", "zzz", -210},
		{"+0530", "zzzz", 330},
		{"Z", "Z", 0},
		{"+02:00", "Z", 120},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var res pattern.Result
			n := pattern.Parse(tt.input, tt.layout, nil, &res)
			require.Equal(t, len(tt.input), n)
			assert.True(t, res.HasOffset)
			assert.Equal(t, tt.want, res.Offset)
		})
	}
}

func TestParse_French(t *testing.T) {
	fr, err := names.Localized("fr")
	require.NoError(t, err)
	opts := &pattern.Options{Names: fr, MatchText: true}

	var res pattern.Result
	in := "LUNDI 15 FÉVRIER 2010"
	n := pattern.Parse(in, "EEEE d MMMM y", opts, &res)
	require.Equal(t, len(in), n)
	assert.Equal(t, calendar.Date(2010, 2, 15, 0, 0, 0, 0, 0), res.Instant)
}

func TestParse_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	layouts := []string{pattern.Extended, "Y-M-d H:m:s.FFFFFF", "y G D HH mm ss ffffff"}
	lo, hi := int64(calendar.MinInstant), int64(calendar.MaxInstant)
	for i := 0; i < 5000; i++ {
		raw := calendar.Instant(rng.Int63n(hi))
		if i%2 == 1 {
			raw = calendar.Instant(-rng.Int63n(-lo))
		}
		for _, layout := range layouts {
			text := pattern.Format(raw, layout, nil)
			var res pattern.Result
			n := pattern.Parse(text, layout, nil, &res)
			require.Equal(t, len(text), n, "%q with %q", text, layout)
			require.Equal(t, raw, res.Instant, "%q with %q", text, layout)
		}
	}
}

func TestParseInstant(t *testing.T) {
	res, err := pattern.ParseInstant("2009-06-15T13:45:30+02:00", pattern.ISODateTimeOffset, nil)
	require.NoError(t, err)
	assert.Equal(t, calendar.Date(2009, 6, 15, 13, 45, 30, 0, 0), res.Instant)
	assert.True(t, res.HasOffset)
	assert.Equal(t, 120, res.Offset)

	_, err = pattern.ParseInstant("2009-06-15 extra", pattern.ISODate, nil)
	require.ErrorIs(t, err, pattern.ErrParse)
	var perr *pattern.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 10, perr.Offset)

	_, err = pattern.ParseInstant("2009-6-15", pattern.ISODate, nil)
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 6, perr.Offset)
	assert.Contains(t, err.Error(), "offset 6")
}

func TestLookup(t *testing.T) {
	assert.Equal(t, pattern.ISODate, pattern.Lookup("isodate"))
	assert.Equal(t, "d/M", pattern.Lookup("d/M"))
}
