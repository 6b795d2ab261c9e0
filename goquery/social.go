package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// socialPlatforms maps each supported platform to the domain substrings
// that identify its profile URLs. Order is fixed so extraction is
// deterministic.
var socialPlatforms = []struct {
	name    string
	domains []string
}{
	{"instagram", []string{"instagram.com", "instagr.am"}},
	{"facebook", []string{"facebook.com", "fb.com"}},
	{"twitter", []string{"twitter.com", "x.com"}},
	{"tiktok", []string{"tiktok.com"}},
	{"youtube", []string{"youtube.com", "youtu.be"}},
	{"pinterest", []string{"pinterest.com"}},
	{"linkedin", []string{"linkedin.com"}},
	{"snapchat", []string{"snapchat.com"}},
}

// SocialHandles returns a mapping from platform name to the first profile
// URL found for that platform.
//
// The footer and header are scanned first; if either yields at least one
// handle, the whole-document fallback scan is skipped. The first match
// per platform wins and later anchors for that platform are ignored.
func (e *Extractor) SocialHandles(html string) (map[string]string, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	handles := make(map[string]string)

	var priority []*goquery.Selection
	if footer := doc.Find("footer").First(); footer.Length() > 0 {
		priority = append(priority, footer)
	}
	if header := doc.Find("header").First(); header.Length() > 0 {
		priority = append(priority, header)
	}

	for _, region := range priority {
		scanSocialAnchors(region, handles)
	}
	if len(handles) == 0 {
		scanSocialAnchors(doc.Selection, handles)
	}

	return handles, nil
}

// scanSocialAnchors matches each anchor against the platform table. An
// anchor contributes at most one platform.
func scanSocialAnchors(region *goquery.Selection, handles map[string]string) {
	region.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if href == "" {
			return
		}
		lower := strings.ToLower(href)

		for _, platform := range socialPlatforms {
			if _, ok := handles[platform.name]; ok {
				continue
			}
			for _, domain := range platform.domains {
				if strings.Contains(lower, domain) {
					handles[platform.name] = href
					return
				}
			}
		}
	})
}
