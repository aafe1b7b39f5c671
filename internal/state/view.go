// Package state tracks where the reader is in a document: page, scroll
// offset, input mode, status message and the size of the body viewport.
package state

import (
	"github.com/csheth/pagescout/internal/document"
	"github.com/csheth/pagescout/internal/search"
	"github.com/csheth/pagescout/internal/textwrap"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
)

// View is the mutable session state of the viewer. Only the input controller
// changes it; everything else reads it.
type View struct {
	store  *document.Store
	page   int
	offset int
	mode   Mode
	status string
	width  int
	height int
}

// New returns a View on the first page of store in Normal mode.
func New(store *document.Store) *View {
	if store == nil {
		store = document.New("", nil, document.Options{})
	}
	return &View{
		store:  store,
		mode:   Normal{},
		width:  defaultWidth,
		height: defaultHeight,
	}
}

func (v *View) Store() *document.Store { return v.store }
func (v *View) Page() int              { return v.page }
func (v *View) Mode() Mode             { return v.mode }
func (v *View) Status() string         { return v.status }

// Offset returns the stored scroll offset. Renderers should use
// ClampedOffset, which accounts for resizes since the last scroll.
func (v *View) Offset() int { return v.offset }

// Viewport returns the body size in cells.
func (v *View) Viewport() (int, int) { return v.width, v.height }

// SetMode switches the input mode.
func (v *View) SetMode(m Mode) {
	if m == nil {
		m = Normal{}
	}
	v.mode = m
}

func (v *View) SetStatus(msg string) { v.status = msg }
func (v *View) ClearStatus()         { v.status = "" }

// Resize records the body viewport. Dimensions below one cell are raised to
// one. Page and offset are left alone.
func (v *View) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// GotoPage moves to page n, clamped into the document, and scrolls to the
// top. It does nothing when the document has no pages.
func (v *View) GotoPage(n int) {
	count := v.store.PageCount()
	if count == 0 {
		return
	}
	v.page = clamp(n, 0, count-1)
	v.offset = 0
}

// NextPage advances one page and reports whether the page changed.
func (v *View) NextPage() bool {
	if v.page+1 >= v.store.PageCount() {
		return false
	}
	v.GotoPage(v.page + 1)
	return true
}

// PrevPage goes back one page and reports whether the page changed.
func (v *View) PrevPage() bool {
	if v.page <= 0 || v.store.PageCount() == 0 {
		return false
	}
	v.GotoPage(v.page - 1)
	return true
}

func (v *View) GotoFirst() { v.GotoPage(0) }
func (v *View) GotoLast()  { v.GotoPage(v.store.PageCount() - 1) }

// Scroll moves the offset by delta rows, keeping the last row of the page at
// or below the bottom of the viewport.
func (v *View) Scroll(delta int) {
	v.offset = clamp(v.ClampedOffset()+delta, 0, v.MaxOffset())
}

// ScrollToMatch shows the page holding m with the row of the match start at
// the top of the viewport, as far as the page length allows.
func (v *View) ScrollToMatch(m search.Match) {
	if v.store.PageCount() == 0 {
		return
	}
	v.GotoPage(m.Page)
	if v.page != m.Page {
		return
	}
	row := textwrap.RowOf(v.store.Lines(v.page), m.Line, m.Offset, v.width)
	v.offset = clamp(row, 0, v.MaxOffset())
}

// RowCount reports the number of wrapped rows on the current page.
func (v *View) RowCount() int {
	return textwrap.RowCount(v.store.Lines(v.page), v.width)
}

// MaxOffset is the largest offset that still fills the viewport.
func (v *View) MaxOffset() int {
	return max(0, v.RowCount()-v.height)
}

// ClampedOffset returns the offset limited to the current viewport.
func (v *View) ClampedOffset() int {
	return clamp(v.offset, 0, v.MaxOffset())
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
