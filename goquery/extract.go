package goquery

import "strings"

// PageTitle returns the document title with any "| Shop name" style
// suffix removed. Storefront titles conventionally lead with the brand
// name, so this doubles as the brand name heuristic.
func PageTitle(html string) string {
	doc, err := parseDocument(html)
	if err != nil {
		return ""
	}
	title := doc.Find("title").First().Text()
	name, _, _ := strings.Cut(title, "|")
	return strings.TrimSpace(name)
}

// PageText returns the document's visible text with runs of whitespace
// collapsed. Used as a fallback when main-content extraction fails.
func PageText(html string) string {
	doc, err := parseDocument(html)
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
