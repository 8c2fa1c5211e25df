package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/names"
	"github.com/tartampluch/go-datetime/pattern"
)

var sample = calendar.Date(2009, 6, 15, 13, 45, 30, 123, 456)

func TestFormat_Specifiers(t *testing.T) {
	tests := []struct {
		layout string
		want   string
	}{
		{"yyyy-MM-ddTHH:mm:ss", "2009-06-15T13:45:30"},
		{"y", "2009"},
		{"yy", "09"},
		{"yyyyyy", "002009"},
		{"M/d", "6/15"},
		{"MMM", "Jun"},
		{"MMMM", "June"},
		{"D DDD", "166 166"},
		{"E EEEE e", "Mon Monday 2"},
		{"w W n", "25 3 3"},
		{"h:mm a", "1:45 PM"},
		{"G g", "AD "},
		{"f ff fff ffff", "1 12 123 1234"},
		{"ffffff ffffffff", "123456 12345600"},
		{"F FFF FFFFFF", "1 123 123456"},
		{"z zz zzz zzzz Z", "+0 +00 +00:00 +0000 Z"},
	}
	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			assert.Equal(t, tt.want, pattern.Format(sample, tt.layout, nil))
		})
	}
}

func TestFormat_Scenario(t *testing.T) {
	v := calendar.Compose(calendar.Fields{
		DateFields: calendar.DateFields{Year: 2009, Month: 6, Day: 15},
		TimeFields: calendar.TimeFields{Hour: 13, Minute: 45, Second: 30},
	})
	assert.Equal(t, "2009-06-15T13:45:30", pattern.Format(v, "yyyy-MM-ddTHH:mm:ss", nil))
}

func TestFormat_Literals(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"SingleQuoted", "'day' d", "day 15"},
		{"DoubleQuoted", `"year" y`, "year 2009"},
		{"DoubledQuote", "h 'o''clock'", "1 o'clock"},
		{"EmptyQuote", "''d''", "'15'"},
		{"Escape", `\y\M y`, "yM 2009"},
		{"TrailingBackslash", `d\`, `15\`},
		{"UnterminatedQuote", "d 'open", "15 open"},
		{"OtherLettersAreLiteral", "T X", "T X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pattern.Format(sample, tt.layout, nil))
		})
	}
}

func TestFormat_Fraction(t *testing.T) {
	v := calendar.Date(2009, 6, 15, 0, 0, 0, 120, 0)
	assert.Equal(t, "12", pattern.Format(v, "FFFFFF", nil))
	assert.Equal(t, "120000", pattern.Format(v, "ffffff", nil))
	assert.Equal(t, "", pattern.Format(v.SetMillisecond(0), "FFF", nil))
	assert.Equal(t, "1", pattern.Format(v, "f", nil))
}

func TestFormat_BC(t *testing.T) {
	v := calendar.Date(-44, 3, 15, 0, 0, 0, 0, 0)
	assert.Equal(t, "44 BC", pattern.Format(v, "y G", nil))
	assert.Equal(t, "0044BC", pattern.Format(v, "yyyyg", nil))
	assert.Equal(t, "-0044-03-15", pattern.Format(v, "YYYY-MM-dd", nil))
	assert.Equal(t, "-44", pattern.Format(v, "Y", nil))
}

func TestFormat_TwelveHour(t *testing.T) {
	assert.Equal(t, "12:30 AM", pattern.Format(calendar.Date(2009, 6, 15, 0, 30, 0, 0, 0), "hh:mm a", nil))
	assert.Equal(t, "12:30 PM", pattern.Format(calendar.Date(2009, 6, 15, 12, 30, 0, 0, 0), "hh:mm a", nil))
	assert.Equal(t, "11 PM", pattern.Format(calendar.Date(2009, 6, 15, 23, 0, 0, 0, 0), "h a", nil))
}

func TestFormat_Offsets(t *testing.T) {
	tests := []struct {
		name string
		tz   int
		dst  int
		want string
	}{
		{"Paris", 60, 0, "+1 +01 +01:00 +0100 +01:00"},
		{"ParisSummer", 60, 60, "+2 +02 +02:00 +0200 +02:00"},
		{"Newfoundland", -210, 0, "-3 -03 -03:30 -0330 -03:30"},
		{"India", 330, 0, "+5 +05 +05:30 +0530 +05:30"},
		{"UTC", 0, 0, "+0 +00 +00:00 +0000 Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &pattern.Options{TZOffset: tt.tz, DSTOffset: tt.dst}
			assert.Equal(t, tt.want, pattern.Format(sample, "z zz zzz zzzz Z", opts))
		})
	}
}

func TestFormat_Names(t *testing.T) {
	fr, err := names.Localized("fr")
	require.NoError(t, err)
	opts := &pattern.Options{Names: fr}
	assert.Equal(t, "lundi 15 juin 2009", pattern.Format(sample, "EEEE d MMMM y", opts))
	assert.Equal(t, "lun. 15 juin", pattern.Format(sample, "EEE d MMM", opts))
}

func TestFormat_FirstDayOfWeek(t *testing.T) {
	// June 14th 2009 was a Sunday.
	v := calendar.Date(2009, 6, 14, 0, 0, 0, 0, 0)
	assert.Equal(t, "3", pattern.Format(v, "W", nil))
	assert.Equal(t, "2", pattern.Format(v, "W", &pattern.Options{FirstDayOfWeek: calendar.Monday}))
}

func TestAppend(t *testing.T) {
	buf := []byte("at ")
	buf = pattern.Append(buf, sample, pattern.ISODate, nil)
	assert.Equal(t, "at 2009-06-15", string(buf))
}

func TestFormatBuffer(t *testing.T) {
	t.Run("Fits", func(t *testing.T) {
		buf := make([]byte, 32)
		n := pattern.FormatBuffer(buf, sample, pattern.ISODateTime, nil)
		assert.Equal(t, 19, n)
		assert.Equal(t, "2009-06-15T13:45:30", string(buf[:n]))
		assert.Equal(t, byte(0), buf[n])
	})

	t.Run("Truncated", func(t *testing.T) {
		buf := make([]byte, 5)
		n := pattern.FormatBuffer(buf, sample, pattern.ISODateTime, nil)
		assert.Equal(t, 4, n)
		assert.Equal(t, []byte{'2', '0', '0', '9', 0}, buf)
	})

	t.Run("ExactFit", func(t *testing.T) {
		buf := make([]byte, 11)
		n := pattern.FormatBuffer(buf, sample, pattern.ISODate, nil)
		assert.Equal(t, 10, n)
		assert.Equal(t, "2009-06-15\x00", string(buf))
	})

	t.Run("RuneBoundary", func(t *testing.T) {
		fr, err := names.Localized("fr")
		require.NoError(t, err)
		feb := calendar.Date(2009, 2, 1, 0, 0, 0, 0, 0)
		// Two bytes of room would split the "é" of "février".
		buf := make([]byte, 3)
		n := pattern.FormatBuffer(buf, feb, "MMMM", &pattern.Options{Names: fr})
		assert.Equal(t, 1, n)
		assert.Equal(t, "f", string(buf[:n]))
		assert.Equal(t, byte(0), buf[n])
	})

	t.Run("NothingAfterCut", func(t *testing.T) {
		buf := make([]byte, 4)
		n := pattern.FormatBuffer(buf, sample, "MMMM-d", nil)
		assert.Equal(t, 3, n)
		assert.Equal(t, "Jun", string(buf[:n]))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, 0, pattern.FormatBuffer(nil, sample, pattern.ISODate, nil))
	})

	t.Run("OnlyTerminator", func(t *testing.T) {
		buf := []byte{'x'}
		assert.Equal(t, 0, pattern.FormatBuffer(buf, sample, pattern.ISODate, nil))
		assert.Equal(t, byte(0), buf[0])
	})
}
