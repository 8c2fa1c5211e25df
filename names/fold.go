package names

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// MatchPrefix finds the longest candidate that starts input when both are
// case folded. It returns the candidate index and the number of input bytes
// it covers, or -1 and 0 when nothing matches. Empty candidates never match.
func MatchPrefix(input string, candidates []string) (index, n int) {
	fold := cases.Fold()
	index = -1
	best := 0
	for i, c := range candidates {
		if c == "" {
			continue
		}
		fc := fold.String(c)
		if len(fc) <= best {
			continue
		}
		if k := foldedPrefix(fold, input, fc); k > 0 {
			index, n, best = i, k, len(fc)
		}
	}
	return index, n
}

// foldedPrefix returns the byte length of the shortest prefix of input whose
// folded form equals target, or 0. Folding can change byte lengths, so the
// prefix grows rune by rune.
func foldedPrefix(fold cases.Caser, input, target string) int {
	for k := 0; k < len(input); {
		_, size := utf8.DecodeRuneInString(input[k:])
		k += size
		f := fold.String(input[:k])
		if len(f) > len(target) || target[:len(f)] != f {
			return 0
		}
		if len(f) == len(target) {
			return k
		}
	}
	return 0
}
