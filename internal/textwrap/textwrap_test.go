package textwrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegments(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		width int
		want  []string
	}{
		{name: "fits", line: "hello world", width: 20, want: []string{"hello world"}},
		{name: "empty", line: "", width: 10, want: []string{""}},
		{name: "break at space", line: "hello world", width: 5, want: []string{"hello", "world"}},
		{name: "prefers last space", line: "hello world again", width: 13, want: []string{"hello world", "again"}},
		{name: "long word", line: "abcdefghij", width: 4, want: []string{"abcd", "efgh", "ij"}},
		{name: "collapses break spaces", line: "one   two", width: 4, want: []string{"one", "two"}},
		{name: "wide runes", line: "日本語テキスト", width: 6, want: []string{"日本語", "テキス", "ト"}},
		{name: "zero width clamps to one", line: "ab", width: 0, want: []string{"a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segments := Segments(tc.line, tc.width)
			got := make([]string, len(segments))
			for i, seg := range segments {
				got[i] = tc.line[seg.Start:seg.End]
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRowCountAndRowOf(t *testing.T) {
	lines := []string{"short", "hello world again", "", "tail"}

	assert.Equal(t, 5, RowCount(lines, 11))
	assert.Equal(t, 0, RowOf(lines, 0, 0, 11))
	assert.Equal(t, 1, RowOf(lines, 1, 0, 11))
	assert.Equal(t, 2, RowOf(lines, 1, 12, 11), "offset of 'again'")
	assert.Equal(t, 1, RowOf(lines, 1, 11, 11), "space at break stays on earlier row")
	assert.Equal(t, 3, RowOf(lines, 2, 0, 11))
	assert.Equal(t, 4, RowOf(lines, 3, 2, 11))
	assert.Equal(t, 5, RowOf(lines, 9, 0, 11))
}

func TestExpandTabs(t *testing.T) {
	assert.Equal(t, "a   b", ExpandTabs("a\tb", 4))
	assert.Equal(t, "    x", ExpandTabs("\tx", 4))
	assert.Equal(t, "no tabs", ExpandTabs("no tabs", 4))
	assert.Equal(t, "a\tb", ExpandTabs("a\tb", 0))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 5, DisplayWidth("hello"))
	assert.Equal(t, 4, DisplayWidth("日本"))
}
