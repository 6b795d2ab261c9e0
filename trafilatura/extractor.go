// Package trafilatura extracts main content from HTML pages using
// go-trafilatura, removing navigation, footer, and other boilerplate.
package trafilatura

import (
	"bytes"
	"strings"

	"brandsight"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements brandsight.TextExtractor at compile time.
var _ brandsight.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page's main content as both
// clean HTML and plain text. The plain text is what gets submitted to
// the AI structuring adapter; the HTML feeds markdown conversion.
func (e *Extractor) Extract(rawHTML string) (*brandsight.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, brandsight.Errorf(brandsight.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &brandsight.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		ContentText: strings.TrimSpace(result.ContentText),
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
