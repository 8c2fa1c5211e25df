package zone

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tartampluch/go-datetime/internal/config"
)

const (
	secondsPerMinute      = 60
	secondsPerHour        = 60 * secondsPerMinute
	defaultTransitionTime = config.DefaultTransitionSeconds
)

// ParsePOSIX parses a POSIX TZ string such as "CET-1CEST,M3.5.0,M10.5.0/3".
// POSIX offsets count west of UTC; the returned zone counts east. A DST name
// without an offset means one hour ahead of standard time, and a DST name
// without rules uses the United States rules. Seconds in zone offsets are
// dropped.
func ParsePOSIX(s string) (Zone, error) {
	fail := func() (Zone, error) {
		return Zone{}, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}

	stdName, rest, ok := posixName(s)
	if !ok {
		return fail()
	}
	stdOffset, rest, ok := posixOffset(rest)
	if !ok {
		return fail()
	}
	z := Zone{TimeZone: TimeZone{Name: stdName, Offset: -stdOffset / secondsPerMinute}}
	if rest == "" {
		return z, nil
	}

	dstName, rest, ok := posixName(rest)
	if !ok {
		return fail()
	}
	dstOffset := stdOffset - secondsPerHour
	if rest != "" && rest[0] != ',' && rest[0] != ';' {
		if dstOffset, rest, ok = posixOffset(rest); !ok {
			return fail()
		}
	}

	if rest == "" {
		rest = config.DefaultPosixRule
	}
	if rest[0] != ',' && rest[0] != ';' {
		return fail()
	}
	start, rest, err := parseTransition(rest[1:])
	if err != nil || rest == "" || rest[0] != ',' {
		return fail()
	}
	end, rest, err := parseTransition(rest[1:])
	if err != nil || rest != "" {
		return fail()
	}

	z.DSTName = dstName
	z.Rule = PosixRule{
		Start:        start,
		End:          end,
		DeltaMinutes: (stdOffset - dstOffset) / secondsPerMinute,
	}
	return z, nil
}

// ParseTransition parses one POSIX transition such as "M3.5.0/3" or "J60".
func ParseTransition(s string) (Transition, error) {
	tr, rest, err := parseTransition(s)
	if err != nil {
		return Transition{}, err
	}
	if rest != "" {
		return Transition{}, fmt.Errorf("%s: %q", config.ErrPosixTransition, s)
	}
	return tr, nil
}

func parseTransition(s string) (Transition, string, error) {
	bad := func() (Transition, string, error) {
		return Transition{}, "", fmt.Errorf("%s: %q", config.ErrPosixTransition, s)
	}
	if s == "" {
		return bad()
	}

	var tr Transition
	var ok bool
	rest := s
	switch s[0] {
	case 'J':
		tr.Kind = Julian
		if tr.Day, rest, ok = posixNum(s[1:], 1, 365); !ok {
			return bad()
		}
	case 'M':
		tr.Kind = MonthWeekDay
		if tr.Month, rest, ok = posixNum(s[1:], 1, 12); !ok || rest == "" || rest[0] != '.' {
			return bad()
		}
		if tr.Week, rest, ok = posixNum(rest[1:], 1, 5); !ok || rest == "" || rest[0] != '.' {
			return bad()
		}
		if tr.Day, rest, ok = posixNum(rest[1:], 0, 6); !ok {
			return bad()
		}
	default:
		tr.Kind = DayOfYear
		if tr.Day, rest, ok = posixNum(s, 0, 365); !ok {
			return bad()
		}
	}

	tr.Time = defaultTransitionTime
	if rest != "" && rest[0] == '/' {
		if tr.Time, rest, ok = posixOffset(rest[1:]); !ok {
			return bad()
		}
	}
	return tr, rest, nil
}

// posixName reads an alphabetic abbreviation of at least three letters or a
// quoted <...> name.
func posixName(s string) (name, rest string, ok bool) {
	if s == "" {
		return "", "", false
	}
	if s[0] == '<' {
		end := strings.IndexByte(s, '>')
		if end < 0 {
			return "", "", false
		}
		return s[1:end], s[end+1:], true
	}
	for i, r := range s {
		switch r {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ',', ';', '-', '+':
			if i < 3 {
				return "", "", false
			}
			return s[:i], s[i:], true
		}
	}
	if len(s) < 3 {
		return "", "", false
	}
	return s, "", true
}

// posixOffset reads [+-]hh[:mm[:ss]] in seconds. Hours up to 167 are
// accepted, as tzdata does for transition times.
func posixOffset(s string) (offset int, rest string, ok bool) {
	if s == "" {
		return 0, "", false
	}
	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		s, neg = s[1:], true
	}

	hours, s, ok := posixNum(s, 0, 24*7-1)
	if !ok {
		return 0, "", false
	}
	offset = hours * secondsPerHour
	for _, unit := range [2]int{secondsPerMinute, 1} {
		if s == "" || s[0] != ':' {
			break
		}
		var v int
		if v, s, ok = posixNum(s[1:], 0, 59); !ok {
			return 0, "", false
		}
		offset += v * unit
	}
	if neg {
		offset = -offset
	}
	return offset, s, true
}

func posixNum(s string, lo, hi int) (num int, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		num = num*10 + int(s[i]-'0')
		if num > hi {
			return 0, "", false
		}
		i++
	}
	if i == 0 || num < lo {
		return 0, "", false
	}
	return num, s[i:], true
}

// formatPOSIXOffset renders seconds as [-]h[:mm[:ss]].
func formatPOSIXOffset(sec int) string {
	sign := ""
	if sec < 0 {
		sign, sec = "-", -sec
	}
	h, m, s := sec/secondsPerHour, sec/secondsPerMinute%60, sec%60
	out := sign + strconv.Itoa(h)
	if m != 0 || s != 0 {
		out += fmt.Sprintf(":%02d", m)
	}
	if s != 0 {
		out += fmt.Sprintf(":%02d", s)
	}
	return out
}

func formatPOSIXName(name string) string {
	if len(name) >= 3 && strings.IndexFunc(name, func(r rune) bool {
		return !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z')
	}) < 0 {
		return name
	}
	return "<" + name + ">"
}

// POSIX renders the zone as a TZ string that ParsePOSIX reads back. Rules
// other than PosixRule are rendered as standard time only.
func (z Zone) POSIX() string {
	var b strings.Builder
	b.WriteString(formatPOSIXName(z.Name))
	b.WriteString(formatPOSIXOffset(-z.Offset * secondsPerMinute))

	r, ok := z.Rule.(PosixRule)
	if !ok {
		return b.String()
	}
	b.WriteString(formatPOSIXName(z.DSTName))
	if r.DeltaMinutes != 60 {
		b.WriteString(formatPOSIXOffset(-(z.Offset + r.DeltaMinutes) * secondsPerMinute))
	}
	b.WriteByte(',')
	b.WriteString(r.Start.String())
	b.WriteByte(',')
	b.WriteString(r.End.String())
	return b.String()
}
