package tui

const (
	headerRows  = 1
	statusRows  = 1
	footerRows  = 1
	bodyPadding = 1
)

// pageLayout splits the terminal into header, body, status and footer rows.
type pageLayout struct {
	windowWidth  int
	windowHeight int
	bodyWidth    int
	bodyHeight   int
}

func newPageLayout() pageLayout {
	return pageLayout{
		windowWidth:  80,
		windowHeight: 24,
		bodyWidth:    80 - 2*bodyPadding,
		bodyHeight:   24 - headerRows - statusRows - footerRows,
	}
}

// Update recomputes the body area for a terminal of width x height cells.
// The body never shrinks below one cell in either direction.
func (l *pageLayout) Update(width, height int) {
	l.windowWidth = max(width, 1)
	l.windowHeight = max(height, 1)
	l.bodyWidth = max(width-2*bodyPadding, 1)
	l.bodyHeight = max(height-headerRows-statusRows-footerRows, 1)
}
