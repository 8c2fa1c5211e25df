package pattern

import (
	"strings"
	"unicode/utf8"
)

// specLetters are the pattern letters with a meaning. Any other letter is
// literal text.
const specLetters = "yYGgMdDEewWnHhamsfFzZ"

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenSpec
)

// token is one element of a layout: a run of one specifier letter with its
// repeat count, or literal text.
type token struct {
	kind   tokenKind
	letter byte
	count  int
	text   string
	pos    int // byte offset in the layout
}

// scanner tokenizes a layout lazily, left to right. Layouts are not compiled;
// each format or parse call scans again.
type scanner struct {
	layout string
	pos    int
}

func isSpec(c byte) bool {
	return strings.IndexByte(specLetters, c) >= 0
}

func (s *scanner) next() (token, bool) {
	if s.pos >= len(s.layout) {
		return token{}, false
	}
	start := s.pos
	c := s.layout[start]

	switch {
	case isSpec(c):
		end := start + 1
		for end < len(s.layout) && s.layout[end] == c {
			end++
		}
		s.pos = end
		return token{kind: tokenSpec, letter: c, count: end - start, pos: start}, true

	case c == '\'' || c == '"':
		return s.quoted(c), true

	case c == '\\':
		if start+1 >= len(s.layout) {
			s.pos = len(s.layout)
			return token{kind: tokenLiteral, text: `\`, pos: start}, true
		}
		_, size := utf8.DecodeRuneInString(s.layout[start+1:])
		s.pos = start + 1 + size
		return token{kind: tokenLiteral, text: s.layout[start+1 : s.pos], pos: start}, true
	}

	end := start + 1
	for end < len(s.layout) {
		c := s.layout[end]
		if isSpec(c) || c == '\'' || c == '"' || c == '\\' {
			break
		}
		end++
	}
	s.pos = end
	return token{kind: tokenLiteral, text: s.layout[start:end], pos: start}, true
}

// quoted reads a span delimited by q. Two adjacent quotes inside the span,
// or an empty span, stand for the quote itself. An unterminated span runs to
// the end of the layout.
func (s *scanner) quoted(q byte) token {
	start := s.pos
	if start+1 < len(s.layout) && s.layout[start+1] == q {
		s.pos = start + 2
		return token{kind: tokenLiteral, text: s.layout[start : start+1], pos: start}
	}

	var b strings.Builder
	i := start + 1
	from := i
	for i < len(s.layout) {
		if s.layout[i] != q {
			i++
			continue
		}
		if i+1 < len(s.layout) && s.layout[i+1] == q {
			b.WriteString(s.layout[from : i+1])
			i += 2
			from = i
			continue
		}
		break
	}
	if b.Len() == 0 {
		text := s.layout[from:i]
		s.pos = min(i+1, len(s.layout))
		return token{kind: tokenLiteral, text: text, pos: start}
	}
	b.WriteString(s.layout[from:i])
	s.pos = min(i+1, len(s.layout))
	return token{kind: tokenLiteral, text: b.String(), pos: start}
}
