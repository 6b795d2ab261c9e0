package brandsight

// LinkClassifier finds keyword-tagged links on a page.
type LinkClassifier interface {
	// ClassifyLinks scans the page for anchors matching each keyword by
	// case-insensitive substring of the anchor text or href. Page regions
	// are scanned in priority order (footer, then nav/header/footer, then
	// the whole document) and the first match per keyword wins. Relative
	// hrefs are resolved against baseURL; non-http(s) schemes are ignored.
	ClassifyLinks(html string, baseURL string, keywords []string) (map[string]string, error)
}

// SocialExtractor finds social media profile links on a page.
type SocialExtractor interface {
	// SocialHandles returns a mapping from platform name to the first
	// profile URL found for that platform. Footer and header are scanned
	// before the rest of the document; if either yields at least one
	// handle, the whole-document scan is skipped.
	SocialHandles(html string) (map[string]string, error)
}

// HeroLocator finds product URLs prominently linked from a homepage.
type HeroLocator interface {
	// HeroProducts returns up to 20 canonicalized, validated product URLs
	// discovered by multiple independent strategies. Results are
	// deduplicated and kept in first-discovered order.
	HeroProducts(html string, baseURL string) ([]string, error)
}

// ContactExtractor finds emails and phone numbers in page text.
type ContactExtractor interface {
	ContactDetails(html string) (*ContactDetails, error)
}

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar) removed.
	ContentHTML string

	// ContentText is the plain-text form of the main content.
	ContentText string
}

// TextExtractor extracts main content from HTML pages, removing boilerplate.
type TextExtractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input should be
	// clean HTML (e.g., from a TextExtractor).
	Convert(html string) (string, error)
}
