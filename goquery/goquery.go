// Package goquery implements the heuristic HTML extraction engine on top
// of PuerkitoBio/goquery: keyword link classification, social handle
// discovery, hero product location, and contact detail extraction.
//
// All operations take raw HTML and parse it per call. Extraction is
// best-effort: individual malformed candidates are skipped, never
// surfaced as errors.
package goquery

import (
	"strings"

	"brandsight"

	"github.com/PuerkitoBio/goquery"
)

// Compile-time interface verification.
var (
	_ brandsight.LinkClassifier   = (*Extractor)(nil)
	_ brandsight.SocialExtractor  = (*Extractor)(nil)
	_ brandsight.HeroLocator      = (*Extractor)(nil)
	_ brandsight.ContactExtractor = (*Extractor)(nil)
)

// Extractor implements the page extraction interfaces. It is stateless
// and safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// parseDocument parses raw HTML into a goquery document.
func parseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, brandsight.Errorf(brandsight.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
