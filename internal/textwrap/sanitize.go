package textwrap

import (
	"strings"
	"unicode/utf8"
)

// ControlPlaceholder stands in for control characters removed by Sanitize.
const ControlPlaceholder = '?'

// formattingLabels makes invisible bidi and zero-width runes visible so they
// cannot reorder or hide the text around them.
var formattingLabels = map[rune]string{
	0x00AD: "⟪SHY⟫",
	0x061C: "⟪ALM⟫",
	0x180E: "⟪MVS⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// Sanitize rewrites text so it can be written to a terminal verbatim. C0 and
// C1 control characters (ESC included) become ControlPlaceholder, carriage
// returns and line breaks become spaces, formatting runes are labelled and
// invalid UTF-8 becomes U+FFFD.
// Tabs are left alone; expand them first.
func Sanitize(text string) string {
	for _, r := range text {
		if needsSanitizing(r) {
			return sanitize(text)
		}
	}
	return text
}

func needsSanitizing(r rune) bool {
	if r == '\t' {
		return false
	}
	if r == utf8.RuneError {
		return true
	}
	if _, ok := formattingLabels[r]; ok {
		return true
	}
	return isControl(r)
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f)
}

func sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if label, ok := formattingLabels[r]; ok {
			b.WriteString(label)
			continue
		}
		switch {
		case r == '\t':
			b.WriteRune(r)
		case r == '\n', r == '\r':
			b.WriteByte(' ')
		case isControl(r):
			b.WriteRune(ControlPlaceholder)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
