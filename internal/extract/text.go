package extract

import "strings"

const formFeed = "\f"

// textPages splits plain text on form feeds. A form feed at the very end of
// the text does not start another page.
func textPages(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	if text == "" {
		return nil
	}
	pages := strings.Split(text, formFeed)
	if len(pages) > 1 && strings.TrimSpace(pages[len(pages)-1]) == "" {
		pages = pages[:len(pages)-1]
	}
	return pages
}
