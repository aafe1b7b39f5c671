// Package textwrap splits lines into terminal rows without copying them, so
// callers can map byte offsets in the source line onto wrapped rows.
package textwrap

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is used when no tab width is configured.
const DefaultTabWidth = 4

// Segment is the byte range [Start, End) of a line that fills one display row.
type Segment struct {
	Start int
	End   int
}

// Len reports the number of bytes covered by the segment.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Segments wraps line to width display cells. Breaks prefer whitespace; a
// word longer than the row is split at the last rune that fits. Whitespace at
// a break point belongs to neither row. An empty line still yields one
// (empty) segment so blank lines occupy a row.
func Segments(line string, width int) []Segment {
	if width < 1 {
		width = 1
	}
	if line == "" || DisplayWidth(line) <= width {
		return []Segment{{Start: 0, End: len(line)}}
	}
	var segments []Segment
	start := 0
	for start < len(line) {
		end, next := breakRow(line, start, width)
		segments = append(segments, Segment{Start: start, End: end})
		start = next
	}
	if len(segments) == 0 {
		segments = append(segments, Segment{Start: 0, End: 0})
	}
	return segments
}

// breakRow returns where the row beginning at start ends and where the
// following row begins.
func breakRow(line string, start, width int) (int, int) {
	cols := 0
	lastSpace := -1
	for pos := start; pos < len(line); {
		r, size := utf8.DecodeRuneInString(line[pos:])
		space := unicode.IsSpace(r)
		w := runeWidth(r)
		if cols+w > width {
			if space {
				if end := trimSpaces(line, start, pos); end > start {
					return end, skipSpaces(line, pos)
				}
			}
			if lastSpace > start {
				if end := trimSpaces(line, start, lastSpace); end > start {
					return end, skipSpaces(line, lastSpace)
				}
			}
			if pos == start {
				return pos + size, pos + size
			}
			return pos, pos
		}
		if space {
			lastSpace = pos
		}
		cols += w
		pos += size
	}
	return len(line), len(line)
}

func trimSpaces(line string, start, end int) int {
	for end > start {
		r, size := utf8.DecodeLastRuneInString(line[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	return end
}

func skipSpaces(line string, pos int) int {
	for pos < len(line) {
		r, size := utf8.DecodeRuneInString(line[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}

// RowCount reports how many display rows lines occupy at width.
func RowCount(lines []string, width int) int {
	total := 0
	for _, line := range lines {
		total += len(Segments(line, width))
	}
	return total
}

// RowOf reports the wrapped row, counted from the first line, that holds the
// byte offset within lines[line]. Offsets falling in a dropped break are
// attributed to the row before the break.
func RowOf(lines []string, line, offset, width int) int {
	if line < 0 {
		return 0
	}
	if line >= len(lines) {
		return RowCount(lines, width)
	}
	row := RowCount(lines[:line], width)
	segments := Segments(lines[line], width)
	for idx, seg := range segments {
		if offset < seg.End || idx == len(segments)-1 {
			return row + idx
		}
		if next := idx + 1; offset < segments[next].Start {
			return row + idx
		}
	}
	return row
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, r := range text {
		width += runeWidth(r)
	}
	return width
}

func runeWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		w = 1
	}
	return w
}

// ExpandTabs replaces tab characters with spaces respecting terminal column width.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	column := 0
	for _, r := range text {
		if r == '\t' {
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		builder.WriteRune(r)
		column += runeWidth(r)
	}
	return builder.String()
}
