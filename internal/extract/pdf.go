package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// wordGap is the fraction of the font size that separates two text runs by
// a space.
const wordGap = 0.2

// pdfPages reads every page of the PDF at path. Pages without content
// become empty pages so page numbers match the document.
func pdfPages(path string) (pages []string, err error) {
	// The parser panics on some malformed input.
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer file.Close()

	count := reader.NumPage()
	pages = make([]string, 0, count)
	for i := 1; i <= count; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText(page))
	}
	return pages, nil
}

func pageText(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err == nil && len(rows) > 0 {
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			lines = append(lines, rowText(row.Content))
		}
		return strings.Join(lines, "\n")
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

func rowText(runs pdf.TextHorizontal) string {
	var builder strings.Builder
	var prev *pdf.Text
	for i := range runs {
		run := &runs[i]
		if prev != nil && needsSpace(prev, run) {
			builder.WriteByte(' ')
		}
		builder.WriteString(run.S)
		prev = run
	}
	return strings.TrimRight(builder.String(), " ")
}

func needsSpace(prev, next *pdf.Text) bool {
	if strings.HasSuffix(prev.S, " ") || strings.HasPrefix(next.S, " ") {
		return false
	}
	return next.X-(prev.X+prev.W) > prev.FontSize*wordGap
}
