package extract

import (
	"fmt"
	"strings"
)

// buildPDF assembles a minimal PDF with one page per content stream. All
// pages share a Helvetica font named /F1.
func buildPDF(streams ...string) []byte {
	var b strings.Builder
	offsets := map[int]int{}
	object := func(id int, body string) {
		offsets[id] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", id, body)
	}

	b.WriteString("%PDF-1.4\n")

	const fontID = 3
	kids := make([]string, len(streams))
	for i := range streams {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	object(1, "<< /Type /Catalog /Pages 2 0 R >>")
	object(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(streams)))
	object(fontID, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	for i, stream := range streams {
		pageID, contentID := 4+2*i, 5+2*i
		object(pageID, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 300 300] /Contents %d 0 R /Resources << /Font << /F1 %d 0 R >> >> >>",
			contentID, fontID))
		if !strings.HasSuffix(stream, "\n") {
			stream += "\n"
		}
		object(contentID, fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(stream), stream))
	}

	maxObj := 3 + 2*len(streams)
	xrefStart := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", maxObj+1)
	b.WriteString("0000000000 65535 f \n")
	for id := 1; id <= maxObj; id++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[id])
	}
	fmt.Fprintf(&b, "trailer\n<< /Root 1 0 R /Size %d >>\nstartxref\n%d\n%%%%EOF\n", maxObj+1, xrefStart)
	return []byte(b.String())
}

func textAt(x, y int, s string) string {
	return fmt.Sprintf("BT /F1 12 Tf 1 0 0 1 %d %d Tm (%s) Tj ET\n", x, y, s)
}
