package pattern

import (
	"strconv"
	"unicode/utf8"
)

// sink receives formatter output.
type sink interface {
	putByte(c byte)
	putString(s string)
}

// appendSink grows a byte slice.
type appendSink struct {
	buf []byte
}

func (a *appendSink) putByte(c byte)     { a.buf = append(a.buf, c) }
func (a *appendSink) putString(s string) { a.buf = append(a.buf, s...) }

// boundedSink writes into a fixed buffer, keeping the last byte for the NUL
// terminator. Once a write does not fit, the output is cut at a rune
// boundary and everything after it is dropped.
type boundedSink struct {
	buf  []byte
	n    int
	full bool
}

func (b *boundedSink) room() int { return len(b.buf) - 1 - b.n }

func (b *boundedSink) putByte(c byte) {
	if b.full || b.room() < 1 {
		b.full = true
		return
	}
	b.buf[b.n] = c
	b.n++
}

func (b *boundedSink) putString(s string) {
	if b.full {
		return
	}
	if len(s) > b.room() {
		cut := max(b.room(), 0)
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
		b.full = true
	}
	b.n += copy(b.buf[b.n:], s)
}

func (b *boundedSink) terminate() int {
	if len(b.buf) == 0 {
		return 0
	}
	b.buf[b.n] = 0
	return b.n
}

// putInt writes a non-negative v zero-padded to width digits.
func putInt(s sink, v int64, width int) {
	var tmp [24]byte
	digits := strconv.AppendInt(tmp[:0], v, 10)
	for i := len(digits); i < width; i++ {
		s.putByte('0')
	}
	s.putString(string(digits))
}
