package pattern

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/internal/config"
	"github.com/tartampluch/go-datetime/names"
)

// ErrParse is matched by every *ParseError.
var ErrParse = errors.New(config.ErrParseFailed)

// ParseError reports the byte offset of the first input character that
// could not be parsed.
type ParseError struct {
	Input  string
	Layout string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(config.ErrParseFormat, e.Offset, e.Input, e.Layout)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// Result is the outcome of a successful Parse.
type Result struct {
	// Instant holds the parsed wall-clock fields. Fields missing from the
	// layout default to 0001-01-01T00:00:00.
	Instant calendar.Instant
	// Offset is the parsed UTC offset in minutes, valid when HasOffset.
	Offset    int
	HasOffset bool
}

// Parse reads input according to layout and stores the result in res.
//
// A positive return value is the number of input bytes consumed; input may
// continue past it. Zero or a negative value is a failure at byte offset
// -n, where n is the return value. Because an empty match also reports 0,
// layouts are expected to consume at least one byte. res is written only
// on success.
//
// Numeric fields read an exact digit count when the repeat count fixes the
// width ("dd" needs two digits) or a bounded count otherwise. Era, sign and
// AM/PM markers are applied once the whole layout is consumed; the day is
// then checked against the length of the parsed month.
func Parse(input, layout string, opts *Options, res *Result) int {
	p := parser{in: input, o: resolve(opts), year: 1, month: 1, day: 1}
	sc := scanner{layout: layout}
	for {
		tok, ok := sc.next()
		if !ok {
			break
		}
		var good bool
		if tok.kind == tokenLiteral {
			good = p.literal(tok.text)
		} else {
			good = p.field(tok)
		}
		if !good {
			return -p.fail
		}
	}
	t, ok := p.resolve()
	if !ok {
		return -p.fail
	}
	if res != nil {
		*res = Result{Instant: t, Offset: p.offset, HasOffset: p.hasOffset}
	}
	return p.pos
}

// ParseInstant is Parse with an error instead of the integer protocol. The
// whole input must be consumed.
func ParseInstant(input, layout string, opts *Options) (Result, error) {
	var res Result
	n := Parse(input, layout, opts, &res)
	if n <= 0 {
		return Result{}, &ParseError{Input: input, Layout: layout, Offset: -n}
	}
	if n != len(input) {
		return Result{}, &ParseError{Input: input, Layout: layout, Offset: n}
	}
	return res, nil
}

type parser struct {
	in   string
	pos  int
	fail int
	o    *Options

	year     int
	month    int
	day      int
	doy      int
	hour     int
	minute   int
	second   int
	micros   int
	offset   int
	yearPos  int
	dayPos   int
	doyPos   int
	negative bool
	bc       bool
	hasDoy   bool
	hasHour  bool
	hour12   bool
	hasMark  bool
	pm       bool

	hasOffset bool
}

func (p *parser) failAt(pos int) bool {
	p.fail = pos
	return false
}

func (p *parser) literal(text string) bool {
	if p.o.MatchText {
		for i := 0; i < len(text); i++ {
			if p.pos+i >= len(p.in) || p.in[p.pos+i] != text[i] {
				return p.failAt(p.pos + i)
			}
		}
		p.pos += len(text)
		return true
	}
	for i, n := 0, utf8.RuneCountInString(text); i < n; i++ {
		if p.pos >= len(p.in) {
			return p.failAt(p.pos)
		}
		_, size := utf8.DecodeRuneInString(p.in[p.pos:])
		p.pos += size
	}
	return true
}

// digits reads between minN and maxN decimal digits.
func (p *parser) digits(minN, maxN int) (int, bool) {
	v, i := 0, 0
	for i < maxN && p.pos+i < len(p.in) {
		c := p.in[p.pos+i]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
		i++
	}
	if i < minN {
		return 0, p.failAt(p.pos + i)
	}
	p.pos += i
	return v, true
}

// number reads a field whose count 1 means "1 to maxN digits" and any other
// count means exactly width digits, then checks lo..hi.
func (p *parser) number(count, maxN, width, lo, hi int) (int, bool) {
	start := p.pos
	var v int
	var ok bool
	if count == 1 {
		v, ok = p.digits(1, maxN)
	} else {
		v, ok = p.digits(width, width)
	}
	if !ok {
		return 0, false
	}
	if v < lo || v > hi {
		return 0, p.failAt(start)
	}
	return v, true
}

func (p *parser) name(candidates []string) (int, bool) {
	idx, n := names.MatchPrefix(p.in[p.pos:], candidates)
	if idx < 0 {
		return 0, p.failAt(p.pos)
	}
	p.pos += n
	return idx, true
}

func (p *parser) field(tok token) bool {
	n := tok.count
	var ok bool
	switch tok.letter {
	case 'Y':
		if p.pos < len(p.in) && (p.in[p.pos] == '-' || p.in[p.pos] == '+') {
			p.negative = p.in[p.pos] == '-'
			p.pos++
		}
		return p.parseYear(n)
	case 'y':
		return p.parseYear(n)
	case 'G':
		var idx int
		if idx, ok = p.name([]string{config.EraAD, config.EraBC}); ok {
			p.bc = idx == 1
		}
	case 'g':
		if idx, m := names.MatchPrefix(p.in[p.pos:], []string{config.EraBC}); idx == 0 {
			p.bc = true
			p.pos += m
		}
		return true
	case 'M':
		if n >= 3 {
			var idx int
			if idx, ok = p.name(names.Months(p.o.Names, n == 3)); ok {
				p.month = idx + 1
			}
			return ok
		}
		p.month, ok = p.number(n, 2, 2, 1, 12)
	case 'd':
		p.dayPos = p.pos
		p.day, ok = p.number(n, 2, 2, 1, 31)
	case 'D':
		p.doyPos = p.pos
		p.doy, ok = p.number(n, 3, 3, 1, 366)
		p.hasDoy = ok
	case 'E':
		_, ok = p.name(names.Weekdays(p.o.Names, n < 4))
	case 'e':
		_, ok = p.number(1, 1, 1, 1, 7)
	case 'w':
		_, ok = p.number(n, 2, 2, 1, 54)
	case 'W':
		_, ok = p.number(1, 1, 1, 1, 6)
	case 'n':
		_, ok = p.number(1, 1, 1, 1, 5)
	case 'H':
		p.hour, ok = p.number(n, 2, 2, 0, 23)
		p.hasHour, p.hour12 = true, false
	case 'h':
		p.hour, ok = p.number(n, 2, 2, 1, 12)
		p.hasHour, p.hour12 = true, true
	case 'a':
		var idx int
		if idx, ok = p.name([]string{config.MarkerAM, config.MarkerPM}); ok {
			p.hasMark, p.pm = true, idx == 1
		}
	case 'm':
		p.minute, ok = p.number(n, 2, 2, 0, 59)
	case 's':
		p.second, ok = p.number(n, 2, 2, 0, 59)
	case 'f':
		ok = p.fraction(n, n)
	case 'F':
		ok = p.fraction(0, n)
	case 'z':
		ok = p.parseOffset(n)
	case 'Z':
		if p.pos < len(p.in) && (p.in[p.pos] == 'Z' || p.in[p.pos] == 'z') {
			p.pos++
			p.offset, p.hasOffset = 0, true
			return true
		}
		ok = p.parseOffset(3)
	}
	return ok
}

func (p *parser) parseYear(n int) bool {
	p.yearPos = p.pos
	switch n {
	case 1:
		v, ok := p.digits(1, config.MaxYearDigits)
		if !ok {
			return false
		}
		p.year = v
	case 2:
		v, ok := p.digits(2, 2)
		if !ok {
			return false
		}
		if v < config.TwoDigitYearPivot {
			p.year = 2000 + v
		} else {
			p.year = 1900 + v
		}
		return true
	default:
		v, ok := p.digits(n, n)
		if !ok {
			return false
		}
		p.year = v
	}
	if p.year == 0 || p.year > calendar.MaxYear {
		return p.failAt(p.yearPos)
	}
	return true
}

// fraction reads minN..maxN digits as a decimal fraction of a second.
// Digits past the sixth are read but do not contribute.
func (p *parser) fraction(minN, maxN int) bool {
	start := p.pos
	v, i := 0, 0
	for i < maxN && p.pos+i < len(p.in) {
		c := p.in[p.pos+i]
		if c < '0' || c > '9' {
			break
		}
		if i < 6 {
			v = v*10 + int(c-'0')
		}
		i++
	}
	if i < minN {
		return p.failAt(start + i)
	}
	for k := i; k < 6; k++ {
		v *= 10
	}
	p.micros = v
	p.pos += i
	return true
}

func (p *parser) parseOffset(n int) bool {
	if p.pos >= len(p.in) || (p.in[p.pos] != '+' && p.in[p.pos] != '-') {
		return p.failAt(p.pos)
	}
	neg := p.in[p.pos] == '-'
	p.pos++

	var h, m int
	var ok bool
	switch n {
	case 1:
		h, ok = p.number(1, 2, 2, 0, 23)
	case 2:
		h, ok = p.number(2, 2, 2, 0, 23)
	case 3:
		if h, ok = p.number(2, 2, 2, 0, 23); !ok {
			return false
		}
		if !p.literal(":") {
			return false
		}
		m, ok = p.number(2, 2, 2, 0, 59)
	default:
		if h, ok = p.number(2, 2, 2, 0, 23); !ok {
			return false
		}
		m, ok = p.number(2, 2, 2, 0, 59)
	}
	if !ok {
		return false
	}
	p.offset = h*60 + m
	if neg {
		p.offset = -p.offset
	}
	p.hasOffset = true
	return true
}

// resolve applies the markers collected while parsing and composes the
// instant.
func (p *parser) resolve() (calendar.Instant, bool) {
	year := p.year
	if p.bc || p.negative {
		year = -year
	}

	hour := p.hour
	if p.hasMark {
		switch {
		case p.hour12:
			hour = hour % 12
			if p.pm {
				hour += 12
			}
		case p.pm && hour < 12:
			hour += 12
		}
	}

	month, day := p.month, p.day
	if p.hasDoy {
		if p.doy > calendar.DaysInYear(year) {
			return 0, p.failAt(p.doyPos)
		}
		start := calendar.Date(year, 1, 1, 0, 0, 0, 0, 0).SetDayOfYear(p.doy)
		month, day = start.Month(), start.Day()
	} else if day > calendar.DaysInMonth(year, month) {
		return 0, p.failAt(p.dayPos)
	}

	return calendar.Date(year, month, day, hour, p.minute, p.second, p.micros/1000, p.micros%1000), true
}
