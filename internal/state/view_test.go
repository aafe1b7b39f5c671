package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/pagescout/internal/document"
	"github.com/csheth/pagescout/internal/search"
)

func pages(n int, linesPerPage int) *document.Store {
	texts := make([]string, n)
	for i := range texts {
		lines := make([]string, linesPerPage)
		for j := range lines {
			lines[j] = "line"
		}
		texts[i] = strings.Join(lines, "\n")
	}
	return document.New("test", texts, document.Options{})
}

func TestNewStartsOnFirstPageInNormalMode(t *testing.T) {
	v := New(pages(3, 1))

	assert.Equal(t, 0, v.Page())
	assert.Equal(t, 0, v.Offset())
	assert.Equal(t, Normal{}, v.Mode())
	w, h := v.Viewport()
	assert.Equal(t, 80, w)
	assert.Equal(t, 20, h)
}

func TestGotoPageClamps(t *testing.T) {
	v := New(pages(5, 40))
	v.Resize(80, 10)

	v.GotoPage(3)
	v.Scroll(4)
	v.GotoPage(-5)
	negative := *v

	v.GotoPage(3)
	v.GotoPage(0)
	assert.Equal(t, negative, *v, "GotoPage(-5) and GotoPage(0) land in the same state")
	assert.Equal(t, 0, v.Offset())

	v.GotoPage(99)
	assert.Equal(t, 4, v.Page())
}

func TestNavigationOnEmptyDocumentIsNoop(t *testing.T) {
	v := New(document.New("", nil, document.Options{}))

	v.GotoPage(3)
	assert.False(t, v.NextPage())
	assert.False(t, v.PrevPage())
	v.GotoFirst()
	v.GotoLast()
	v.Scroll(5)
	v.ScrollToMatch(search.Match{Page: 2})

	assert.Equal(t, 0, v.Page())
	assert.Equal(t, 0, v.Offset())
	assert.Equal(t, 0, v.RowCount())
}

func TestPageSteppingDoesNotWrap(t *testing.T) {
	v := New(pages(2, 1))

	assert.False(t, v.PrevPage())
	assert.True(t, v.NextPage())
	assert.Equal(t, 1, v.Page())
	assert.False(t, v.NextPage())
	assert.Equal(t, 1, v.Page())

	v.GotoFirst()
	assert.Equal(t, 0, v.Page())
	v.GotoLast()
	assert.Equal(t, 1, v.Page())
}

func TestScrollClamps(t *testing.T) {
	v := New(pages(1, 3))
	v.Resize(80, 10)

	v.Scroll(1000)
	assert.Equal(t, 0, v.Offset(), "content that fits never scrolls")

	long := New(pages(1, 25))
	long.Resize(80, 10)
	long.Scroll(1000)
	assert.Equal(t, 15, long.Offset())
	long.Scroll(-3)
	assert.Equal(t, 12, long.Offset())
	long.Scroll(-1000)
	assert.Equal(t, 0, long.Offset())
}

func TestClampedOffsetFollowsResize(t *testing.T) {
	v := New(pages(1, 25))
	v.Resize(80, 10)
	v.Scroll(1000)
	require.Equal(t, 15, v.Offset())

	v.Resize(80, 20)
	assert.Equal(t, 15, v.Offset(), "resize keeps the stored offset")
	assert.Equal(t, 5, v.ClampedOffset())

	v.Scroll(1)
	assert.Equal(t, 5, v.Offset())
}

func TestResizeMinimum(t *testing.T) {
	v := New(pages(1, 1))
	v.Resize(0, -3)
	w, h := v.Viewport()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestScrollToMatch(t *testing.T) {
	store := document.New("", []string{
		"a",
		"first line\nsecond\nthird\nfourth\nhello world",
	}, document.Options{})
	v := New(store)
	v.Resize(80, 2)

	v.ScrollToMatch(search.Match{Page: 1, Line: 4, Offset: 0, Length: 5})
	assert.Equal(t, 1, v.Page())
	assert.Equal(t, 3, v.Offset(), "last row cannot scroll above the viewport bottom")

	v.Resize(80, 1)
	v.ScrollToMatch(search.Match{Page: 1, Line: 4, Offset: 0, Length: 5})
	assert.Equal(t, 4, v.Offset())
}

func TestModeAndStatus(t *testing.T) {
	v := New(pages(1, 1))

	v.SetMode(Search{Buffer: "abc"})
	assert.Equal(t, "abc", BufferOf(v.Mode()))
	assert.Equal(t, "search", v.Mode().Name())

	v.SetMode(nil)
	assert.Equal(t, Normal{}, v.Mode())
	assert.Equal(t, "", BufferOf(v.Mode()))

	v.SetStatus("hi")
	assert.Equal(t, "hi", v.Status())
	v.ClearStatus()
	assert.Empty(t, v.Status())
}
