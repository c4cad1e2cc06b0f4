package libdiff

import (
	"strings"
	"unicode"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// StringDiff renders the difference between two strings inline, marking
// deleted words as [-text-] and inserted words as {+text+}.
func StringDiff(from, to string) string {
	ab := &alphabet{}
	ops := ab.diff(words(from), words(to))
	var sb strings.Builder
	for _, op := range diffpatch.New().DiffCleanupMerge(ops) {
		pre, post := "", ""
		switch op.Type {
		case diffpatch.DiffDelete:
			pre, post = "[-", "-]"
		case diffpatch.DiffInsert:
			pre, post = "{+", "+}"
		}
		sb.WriteString(pre)
		for _, r := range op.Text {
			sb.WriteString(ab.keys[ab.index(r)])
		}
		sb.WriteString(post)
	}
	return sb.String()
}

// words splits s into runs of letters and digits, runs of white space
// and single other characters. Joining the result gives back s.
func words(s string) []string {
	var res []string
	for len(s) > 0 {
		r, n := utf8.DecodeRuneInString(s)
		class := wordClass(r)
		if class != 0 {
			for n < len(s) {
				next, m := utf8.DecodeRuneInString(s[n:])
				if wordClass(next) != class {
					break
				}
				n += m
			}
		}
		res = append(res, s[:n])
		s = s[n:]
	}
	return res
}

func wordClass(r rune) int {
	switch {
	case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
		return 1
	case unicode.IsSpace(r):
		return 2
	}
	return 0
}
