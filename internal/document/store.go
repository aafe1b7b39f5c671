package document

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/csheth/pagescout/internal/textwrap"
)

// ErrOutOfRange is returned when a page index falls outside the document.
var ErrOutOfRange = errors.New("page index out of range")

// Page is the ordered text lines of one document page.
type Page struct {
	Index int
	Lines []string
}

// Options controls how raw page text is normalised on load.
type Options struct {
	TabWidth int
}

// Store owns the pages of a loaded document. It is never mutated after New.
type Store struct {
	title string
	pages []Page
}

// New builds a Store from extracted page texts. Construction never fails: an
// empty slice yields a valid zero-page document. Control characters in the
// title and text are replaced before the store is frozen, so everything the
// store returns is safe to write to a terminal.
func New(title string, texts []string, opts Options) *Store {
	tabWidth := opts.TabWidth
	if tabWidth <= 0 {
		tabWidth = textwrap.DefaultTabWidth
	}
	pages := make([]Page, len(texts))
	for idx, text := range texts {
		pages[idx] = Page{Index: idx, Lines: splitLines(text, tabWidth)}
	}
	return &Store{title: textwrap.Sanitize(title), pages: pages}
}

func splitLines(text string, tabWidth int) []string {
	text = norm.NFC.String(text)
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		lines[i] = textwrap.Sanitize(textwrap.ExpandTabs(line, tabWidth))
	}
	return lines
}

// Title returns the display name of the document.
func (s *Store) Title() string {
	return s.title
}

// PageCount reports the number of pages.
func (s *Store) PageCount() int {
	return len(s.pages)
}

// Page returns a copy of the page at index.
func (s *Store) Page(index int) (Page, error) {
	if index < 0 || index >= len(s.pages) {
		return Page{}, fmt.Errorf("page %d of %d: %w", index, len(s.pages), ErrOutOfRange)
	}
	page := s.pages[index]
	page.Lines = slices.Clone(page.Lines)
	return page, nil
}

// LineCount reports the number of lines on the page at index, or 0 when the
// index is out of range.
func (s *Store) LineCount(index int) int {
	if index < 0 || index >= len(s.pages) {
		return 0
	}
	return len(s.pages[index].Lines)
}

// Lines returns the lines of the page at index, or nil when out of range. The
// slice is shared with the store and must not be modified.
func (s *Store) Lines(index int) []string {
	if index < 0 || index >= len(s.pages) {
		return nil
	}
	return s.pages[index].Lines
}
