package goquery

import (
	"strings"

	"brandsight"

	"github.com/PuerkitoBio/goquery"
)

// ClassifyLinks scans the page for anchors matching each keyword and
// returns a mapping from keyword to absolute URL.
//
// Regions are scanned in priority order: the first footer if present,
// then every nav/header/footer element, then the whole document as a
// final fallback. The first matching anchor per keyword wins; a keyword
// resolved in a higher-priority region is never overwritten. Scanning
// stops early once every keyword is resolved in a non-final region.
func (e *Extractor) ClassifyLinks(html string, baseURL string, keywords []string) (map[string]string, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	var regions []*goquery.Selection

	// Footer first: the most reliable location for policy links.
	if footer := doc.Find("footer").First(); footer.Length() > 0 {
		regions = append(regions, footer)
	}
	doc.Find("nav, header, footer").Each(func(_ int, sel *goquery.Selection) {
		regions = append(regions, sel)
	})
	regions = append(regions, doc.Selection)

	links := make(map[string]string)
	final := len(regions) - 1

	for i, region := range regions {
		region.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			if href == "" {
				return
			}

			text := strings.ToLower(strings.TrimSpace(a.Text()))
			hrefLower := strings.ToLower(href)

			for _, keyword := range keywords {
				if _, ok := links[keyword]; ok {
					continue
				}
				if !strings.Contains(text, keyword) && !strings.Contains(hrefLower, keyword) {
					continue
				}

				resolved := resolveKeywordLink(baseURL, href)
				if resolved == "" {
					continue
				}
				links[keyword] = resolved
				break
			}
		})

		if len(links) == len(keywords) && i < final {
			break
		}
	}

	return links, nil
}

// resolveKeywordLink makes href absolute against the base URL. Relative
// paths are joined to the base; anything that is neither a path nor an
// absolute http(s) URL (mailto:, tel:, javascript:) is rejected.
func resolveKeywordLink(baseURL string, href string) string {
	if strings.HasPrefix(href, "/") {
		return brandsight.NormalizeBaseURL(baseURL) + href
	}
	lower := strings.ToLower(href)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return ""
	}
	return href
}
