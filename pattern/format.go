// Package pattern formats and parses instants with a letter-based layout
// language.
//
// A layout is scanned left to right. A run of one specifier letter is a
// field whose repeat count selects its width or form ("MM" is the two-digit
// month, "MMMM" the full month name). Text between single or double quotes
// is literal, a doubled quote inside a span is the quote itself, and a
// backslash escapes one character. Letters without a meaning are literal.
//
//	y     year, unpadded; yy two digits; yyy... padded to the count
//	Y     signed year: "-" for BC, then as y
//	G     era, AD or BC; g era only for BC
//	M     month 1..12; MM padded; MMM abbreviation; MMMM name
//	d     day of month; D day of year (DD.. three digits)
//	E     weekday abbreviation; EEEE weekday name; e weekday number, Sunday 1
//	w     week of year; W week of month; n occurrence of the weekday in the month
//	H     hour 0..23; h hour 1..12; a AM or PM
//	m s   minute, second
//	f     fraction truncated to the count; F fraction without trailing zeros
//	z     offset: +1, +01, +01:00, +0100 for counts 1 to 4
//	Z     "Z" for UTC, else +hh:mm
//
// Offsets come from Options rather than from the instant.
package pattern

import (
	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/internal/config"
	"github.com/tartampluch/go-datetime/names"
)

// Options carries what a layout needs beyond the instant. A nil *Options
// stands for DefaultOptions().
type Options struct {
	// TZOffset is the zone offset in minutes east of UTC.
	TZOffset int
	// DSTOffset is the daylight saving offset in minutes currently applied.
	DSTOffset int
	// Names resolves month and weekday names; nil means English.
	Names names.Table
	// FirstDayOfWeek is the week start used by w and W; zero means Sunday.
	FirstDayOfWeek calendar.Weekday
	// MatchText makes Parse compare literal text. When false the parser
	// skips as many input characters as the literal has.
	MatchText bool
}

// DefaultOptions returns UTC, English names, Sunday-first weeks and strict
// literal matching.
func DefaultOptions() *Options {
	return &Options{Names: names.English, FirstDayOfWeek: calendar.Sunday, MatchText: true}
}

func resolve(o *Options) *Options {
	if o == nil {
		return DefaultOptions()
	}
	if o.Names != nil && o.FirstDayOfWeek != 0 {
		return o
	}
	c := *o
	if c.Names == nil {
		c.Names = names.English
	}
	if c.FirstDayOfWeek == 0 {
		c.FirstDayOfWeek = calendar.Sunday
	}
	return &c
}

// Format renders t with layout.
func Format(t calendar.Instant, layout string, opts *Options) string {
	return string(Append(nil, t, layout, opts))
}

// Append renders t with layout onto dst and returns the extended slice.
func Append(dst []byte, t calendar.Instant, layout string, opts *Options) []byte {
	s := &appendSink{buf: dst}
	render(s, t, layout, resolve(opts))
	return s.buf
}

// FormatBuffer renders t into buf without growing it. Output that does not
// fit is truncated and the result is always NUL-terminated when buf is not
// empty. It returns the number of bytes written before the terminator.
func FormatBuffer(buf []byte, t calendar.Instant, layout string, opts *Options) int {
	s := &boundedSink{buf: buf}
	render(s, t, layout, resolve(opts))
	return s.terminate()
}

func render(s sink, t calendar.Instant, layout string, o *Options) {
	f := calendar.Decompose(t)
	sc := scanner{layout: layout}
	for {
		tok, ok := sc.next()
		if !ok {
			return
		}
		if tok.kind == tokenLiteral {
			s.putString(tok.text)
			continue
		}
		formatField(s, t, &f, tok, o)
	}
}

func formatField(s sink, t calendar.Instant, f *calendar.Fields, tok token, o *Options) {
	n := tok.count
	switch tok.letter {
	case 'Y':
		if f.Year < 0 {
			s.putByte('-')
		}
		formatYear(s, f.Year, n)
	case 'y':
		formatYear(s, f.Year, n)
	case 'G':
		if f.Year < 0 {
			s.putString(config.EraBC)
		} else {
			s.putString(config.EraAD)
		}
	case 'g':
		if f.Year < 0 {
			s.putString(config.EraBC)
		}
	case 'M':
		switch {
		case n >= 4:
			s.putString(o.Names.Month(f.Month))
		case n == 3:
			s.putString(o.Names.MonthAbbr(f.Month))
		default:
			putInt(s, int64(f.Month), n)
		}
	case 'd':
		putInt(s, int64(f.Day), min(n, 2))
	case 'D':
		if n == 1 {
			putInt(s, int64(t.DayOfYear()), 1)
		} else {
			putInt(s, int64(t.DayOfYear()), 3)
		}
	case 'E':
		if n >= 4 {
			s.putString(o.Names.Weekday(f.Weekday))
		} else {
			s.putString(o.Names.WeekdayAbbr(f.Weekday))
		}
	case 'e':
		putInt(s, int64(f.Weekday), 1)
	case 'w':
		putInt(s, int64(t.WeekOfYear(o.FirstDayOfWeek)), min(n, 2))
	case 'W':
		putInt(s, int64(t.WeekOfMonth(o.FirstDayOfWeek)), 1)
	case 'n':
		putInt(s, int64(t.WeekdayOfMonth()), 1)
	case 'H':
		putInt(s, int64(f.Hour), min(n, 2))
	case 'h':
		h, _ := f.Hour12()
		putInt(s, int64(h), min(n, 2))
	case 'a':
		if _, pm := f.Hour12(); pm {
			s.putString(config.MarkerPM)
		} else {
			s.putString(config.MarkerAM)
		}
	case 'm':
		putInt(s, int64(f.Minute), min(n, 2))
	case 's':
		putInt(s, int64(f.Second), min(n, 2))
	case 'f', 'F':
		formatFraction(s, f.Millisecond*1000+f.Microsecond, n, tok.letter == 'F')
	case 'z':
		formatOffset(s, o.TZOffset+o.DSTOffset, n)
	case 'Z':
		off := o.TZOffset + o.DSTOffset
		if off == 0 {
			s.putString(config.MarkerUTC)
		} else {
			formatOffset(s, off, 3)
		}
	}
}

func formatYear(s sink, year, n int) {
	if year < 0 {
		year = -year
	}
	if n == 2 {
		putInt(s, int64(year%100), 2)
		return
	}
	putInt(s, int64(year), n)
}

// formatFraction writes the first n digits of the six-digit microsecond
// fraction, padding with zeros past six. With trim set, at most n digits are
// written and trailing zeros are dropped.
func formatFraction(s sink, micros, n int, trim bool) {
	var digits [6]byte
	for i := 5; i >= 0; i-- {
		digits[i] = byte('0' + micros%10)
		micros /= 10
	}
	if !trim {
		for i := 0; i < n; i++ {
			if i < 6 {
				s.putByte(digits[i])
			} else {
				s.putByte('0')
			}
		}
		return
	}
	end := min(n, 6)
	for end > 0 && digits[end-1] == '0' {
		end--
	}
	s.putString(string(digits[:end]))
}

// formatOffset writes off minutes in one of the four z forms.
func formatOffset(s sink, off, n int) {
	if off < 0 {
		s.putByte('-')
		off = -off
	} else {
		s.putByte('+')
	}
	h, m := off/60, off%60
	switch n {
	case 1:
		putInt(s, int64(h), 1)
	case 2:
		putInt(s, int64(h), 2)
	case 3:
		putInt(s, int64(h), 2)
		s.putByte(':')
		putInt(s, int64(m), 2)
	default:
		putInt(s, int64(h), 2)
		putInt(s, int64(m), 2)
	}
}
