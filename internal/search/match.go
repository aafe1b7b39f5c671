package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type span struct {
	start int
	end   int
}

// findAll returns the non-overlapping occurrences of needle in haystack,
// scanning left to right and resuming after each hit.
func findAll(haystack, needle string, caseSensitive bool) []span {
	if needle == "" || haystack == "" {
		return nil
	}
	if caseSensitive {
		return literalSpans(haystack, needle)
	}
	if isASCII(haystack) && isASCII(needle) {
		return literalSpans(strings.ToLower(haystack), strings.ToLower(needle))
	}

	var spans []span
	for i := 0; i < len(haystack); {
		if end, ok := matchFoldedAt(haystack, i, needle); ok {
			spans = append(spans, span{start: i, end: end})
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(haystack[i:])
		i += size
	}
	return spans
}

func literalSpans(haystack, needle string) []span {
	var spans []span
	from := 0
	for from <= len(haystack)-len(needle) {
		idx := strings.Index(haystack[from:], needle)
		if idx == -1 {
			break
		}
		start := from + idx
		end := start + len(needle)
		spans = append(spans, span{start: start, end: end})
		from = end
	}
	return spans
}

// matchFoldedAt reports whether needle matches haystack at byte offset start
// under simple case folding, returning the byte offset where the match ends.
func matchFoldedAt(haystack string, start int, needle string) (int, bool) {
	pos := start
	for _, nr := range needle {
		if pos >= len(haystack) {
			return 0, false
		}
		hr, size := utf8.DecodeRuneInString(haystack[pos:])
		if !equalFold(hr, nr) {
			return 0, false
		}
		pos += size
	}
	return pos, true
}

func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
