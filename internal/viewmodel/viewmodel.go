// Package viewmodel projects the document, view state and search index into
// the text a renderer draws for one frame.
package viewmodel

import (
	"fmt"

	"github.com/csheth/pagescout/internal/document"
	"github.com/csheth/pagescout/internal/search"
	"github.com/csheth/pagescout/internal/state"
	"github.com/csheth/pagescout/internal/textwrap"
)

// Span is a highlighted byte range [Start, End) of a row's Text. An empty
// span at the end of Text marks a match that lies wholly in the whitespace
// dropped at a wrap break; renderers draw it as one highlighted blank cell.
type Span struct {
	Start   int
	End     int
	Current bool
}

// Line is one wrapped display row.
type Line struct {
	Text       string
	Highlights []Span
}

// Hint is a key binding shown in the footer.
type Hint struct {
	Key  string
	Desc string
}

// ViewModel is everything a renderer needs for one frame.
type ViewModel struct {
	Header      string
	Lines       []Line
	Footer      []Hint
	Status      string
	Mode        state.Mode
	Page        int
	PageCount   int
	Offset      int
	TotalRows   int
	MatchCount  int
	MatchCursor int
}

// Build computes the frame for the current state. It never mutates its
// arguments.
func Build(store *document.Store, view *state.View, index *search.Index) ViewModel {
	if store == nil {
		store = view.Store()
	}
	width, height := view.Viewport()
	page := view.Page()
	offset := view.ClampedOffset()
	lines := store.Lines(page)

	vm := ViewModel{
		Header:      header(store, view),
		Footer:      footer(view.Mode(), index),
		Status:      view.Status(),
		Mode:        view.Mode(),
		Page:        page,
		PageCount:   store.PageCount(),
		Offset:      offset,
		TotalRows:   textwrap.RowCount(lines, width),
		MatchCount:  index.Len(),
		MatchCursor: index.Cursor(),
	}
	vm.Lines = body(lines, page, offset, width, height, index)
	return vm
}

func header(store *document.Store, view *state.View) string {
	count := store.PageCount()
	switch m := view.Mode().(type) {
	case state.PageJump:
		return fmt.Sprintf("Go to page (1-%d): %s", count, m.Buffer)
	case state.Search:
		return "Search: " + m.Buffer
	}
	current := 0
	if count > 0 {
		current = view.Page() + 1
	}
	counter := fmt.Sprintf("Page %d of %d", current, count)
	if title := store.Title(); title != "" {
		return title + " - " + counter
	}
	return counter
}

func body(lines []string, page, offset, width, height int, index *search.Index) []Line {
	byLine := make(map[int][]search.Match)
	for _, m := range index.MatchesOnPage(page) {
		byLine[m.Line] = append(byLine[m.Line], m)
	}

	var rows []Line
	row := 0
	for lineIdx, text := range lines {
		segments := textwrap.Segments(text, width)
		for segIdx, seg := range segments {
			if row >= offset+height {
				return rows
			}
			if row >= offset {
				next := len(text)
				if segIdx+1 < len(segments) {
					next = segments[segIdx+1].Start
				}
				rows = append(rows, Line{
					Text:       text[seg.Start:seg.End],
					Highlights: highlights(byLine[lineIdx], seg, next, index),
				})
			}
			row++
		}
	}
	return rows
}

// highlights clips matches to seg. A match crossing a wrap boundary yields
// one span on each row it touches. The break whitespace between seg.End and
// next belongs to this row, the same row textwrap.RowOf reports for it.
func highlights(matches []search.Match, seg textwrap.Segment, next int, index *search.Index) []Span {
	var spans []Span
	for _, m := range matches {
		start := max(m.Offset, seg.Start)
		end := min(m.End(), seg.End)
		switch {
		case start < end:
			spans = append(spans, Span{
				Start:   start - seg.Start,
				End:     end - seg.Start,
				Current: index.IsCurrent(m),
			})
		case m.Offset >= seg.End && m.End() <= next && seg.End < next:
			// Several matches in one break share a single marker.
			if n := len(spans); n > 0 && spans[n-1].Start == seg.Len() && spans[n-1].End == seg.Len() {
				spans[n-1].Current = spans[n-1].Current || index.IsCurrent(m)
				continue
			}
			spans = append(spans, Span{
				Start:   seg.Len(),
				End:     seg.Len(),
				Current: index.IsCurrent(m),
			})
		}
	}
	return spans
}

func footer(mode state.Mode, index *search.Index) []Hint {
	switch mode.(type) {
	case state.PageJump:
		return []Hint{
			{Key: "0-9", Desc: "page number"},
			{Key: "enter", Desc: "go"},
			{Key: "esc", Desc: "cancel"},
		}
	case state.Search:
		return []Hint{
			{Key: "type", Desc: "query"},
			{Key: "enter", Desc: "search"},
			{Key: "esc", Desc: "cancel"},
		}
	}
	hints := []Hint{
		{Key: "←/→", Desc: "page"},
		{Key: "↑/↓", Desc: "scroll"},
		{Key: "g", Desc: "go to page"},
		{Key: "/", Desc: "search"},
	}
	if index.Active() {
		hints = append(hints, Hint{Key: "F/B", Desc: "next/prev match"})
	}
	return append(hints, Hint{Key: "q", Desc: "quit"})
}
