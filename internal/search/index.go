package search

import (
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/csheth/pagescout/internal/document"
)

// Direction selects which way Advance moves the cursor.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Options configures how a query is matched.
type Options struct {
	CaseSensitive bool
}

// Match locates one occurrence of the query. Offset and Length are byte
// positions inside the page line.
type Match struct {
	Page   int
	Line   int
	Offset int
	Length int
}

// End returns the byte offset just past the match.
func (m Match) End() int {
	return m.Offset + m.Length
}

// Index holds the matches of one query in document order plus a cursor over
// them. The zero value is an empty index with no active search.
type Index struct {
	query   string
	opts    Options
	matches []Match
	cursor  int
}

// Rebuild scans every line of store for non-overlapping occurrences of query.
// An empty query produces an empty index. When matches exist the cursor
// starts on the first one.
func Rebuild(query string, store *document.Store, opts Options) *Index {
	query = norm.NFC.String(query)
	idx := &Index{query: query, opts: opts}
	if query == "" || store == nil {
		return idx
	}
	for page := 0; page < store.PageCount(); page++ {
		for line, text := range store.Lines(page) {
			for _, span := range findAll(text, query, opts.CaseSensitive) {
				idx.matches = append(idx.matches, Match{
					Page:   page,
					Line:   line,
					Offset: span.start,
					Length: span.end - span.start,
				})
			}
		}
	}
	return idx
}

// Query returns the text the index was built for.
func (ix *Index) Query() string {
	if ix == nil {
		return ""
	}
	return ix.query
}

// Options returns the matching options the index was built with.
func (ix *Index) Options() Options {
	if ix == nil {
		return Options{}
	}
	return ix.opts
}

// Active reports whether a non-empty query is in effect.
func (ix *Index) Active() bool {
	return ix.Query() != ""
}

// Len reports the number of matches.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.matches)
}

// Matches returns a copy of all matches in document order.
func (ix *Index) Matches() []Match {
	if ix.Len() == 0 {
		return nil
	}
	return append([]Match(nil), ix.matches...)
}

// Cursor returns the position of the current match, or -1 when there is none.
func (ix *Index) Cursor() int {
	if ix.Len() == 0 {
		return -1
	}
	return ix.cursor
}

// Current returns the match under the cursor.
func (ix *Index) Current() (Match, bool) {
	if ix.Len() == 0 {
		return Match{}, false
	}
	return ix.matches[ix.cursor], true
}

// Advance moves the cursor one match in dir, wrapping at either end. With no
// matches it reports false and leaves the index unchanged.
func (ix *Index) Advance(dir Direction) (Match, bool) {
	count := ix.Len()
	if count == 0 {
		return Match{}, false
	}
	delta := 1
	if dir == Backward {
		delta = -1
	}
	ix.cursor = (ix.cursor + delta) % count
	if ix.cursor < 0 {
		ix.cursor += count
	}
	return ix.matches[ix.cursor], true
}

// MatchesOnPage returns the matches on page in reading order. The slice is
// shared with the index and must not be modified.
func (ix *Index) MatchesOnPage(page int) []Match {
	if ix.Len() == 0 {
		return nil
	}
	lo := sort.Search(len(ix.matches), func(i int) bool { return ix.matches[i].Page >= page })
	hi := sort.Search(len(ix.matches), func(i int) bool { return ix.matches[i].Page > page })
	if lo == hi {
		return nil
	}
	return ix.matches[lo:hi:hi]
}

// CursorOnPage returns the position of the current match within
// MatchesOnPage(page), or -1 when the current match is on another page.
func (ix *Index) CursorOnPage(page int) int {
	current, ok := ix.Current()
	if !ok || current.Page != page {
		return -1
	}
	for i, m := range ix.MatchesOnPage(page) {
		if m == current {
			return i
		}
	}
	return -1
}

// IsCurrent reports whether m is the match under the cursor.
func (ix *Index) IsCurrent(m Match) bool {
	current, ok := ix.Current()
	return ok && current == m
}
