package goquery

import (
	"encoding/json"
	"regexp"
	"strings"

	"brandsight"

	"github.com/PuerkitoBio/goquery"
)

// maxHeroProducts caps the number of product URLs returned per page.
const maxHeroProducts = 20

// productContainerSelectors matches product-card markup used by common
// Shopify themes.
var productContainerSelectors = strings.Join([]string{
	".grid-product",
	".product-card",
	".product-item",
	".product-block",
	".product-tile",
	".product-grid-item",
	".featured-product",
	".collection-item",
	"li.product",
	`[class*="product-item"]`,
	`[class*="product-card"]`,
	`[class*="product-grid"]`,
	`[class*="product-block"]`,
	`[class*="featured-product"]`,
	"[data-product-id]",
	"[data-product-handle]",
}, ", ")

var (
	sectionClassRe  = regexp.MustCompile(`(?i)(featured|hero|collection|products|bestseller)`)
	productAnchorRe = regexp.MustCompile(`/products/[^/]+/?$`)
)

// heroAccumulator collects candidate product URLs, canonicalizing and
// validating each one. Candidates are deduplicated by canonical string
// and kept in first-discovered order; invalid ones are dropped silently.
type heroAccumulator struct {
	baseURL string
	seen    map[string]bool
	urls    []string
}

func (acc *heroAccumulator) add(href string) {
	canonical := brandsight.CanonicalURL(acc.baseURL, href)
	if canonical == "" || !brandsight.IsValidProductURL(canonical) {
		return
	}
	if acc.seen[canonical] {
		return
	}
	acc.seen[canonical] = true
	acc.urls = append(acc.urls, canonical)
}

// HeroProducts returns up to 20 canonicalized product URLs prominently
// linked from the homepage. Four independent strategies contribute to a
// single deduplicated set:
//
//  1. Shopify product-card containers located by CSS class and data
//     attribute patterns.
//  2. Sections whose class suggests a product showcase (featured, hero,
//     collection, products, bestseller).
//  3. Elements carrying data-product-id or data-product-handle.
//  4. JSON-LD blocks listing Product entries.
func (e *Extractor) HeroProducts(html string, baseURL string) ([]string, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	acc := &heroAccumulator{baseURL: baseURL, seen: make(map[string]bool)}

	scanProductContainers(doc, acc)
	scanShowcaseSections(doc, acc)
	scanProductDataAttributes(doc, acc)
	scanStructuredData(doc, acc)

	if len(acc.urls) > maxHeroProducts {
		acc.urls = acc.urls[:maxHeroProducts]
	}
	return acc.urls, nil
}

// scanProductContainers takes the first product anchor within each
// product-card container.
func scanProductContainers(doc *goquery.Document, acc *heroAccumulator) {
	doc.Find(productContainerSelectors).Each(func(_ int, container *goquery.Selection) {
		href := firstProductHref(container)
		if href == "" {
			return
		}

		if isCollectionListingLink(href) {
			return
		}
		for _, skip := range []string{"/cart", "/checkout", "/account", "/search"} {
			if strings.Contains(href, skip) {
				return
			}
		}

		acc.add(href)
	})
}

// firstProductHref returns the href of the first anchor in the container
// that points at a product path.
func firstProductHref(container *goquery.Selection) string {
	var href string
	container.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		h, _ := a.Attr("href")
		if strings.Contains(h, "/products/") {
			href = h
			return false
		}
		return true
	})
	return href
}

// isCollectionListingLink reports whether href points at a collection
// listing rather than a product nested under a collection path.
func isCollectionListingLink(href string) bool {
	idx := strings.LastIndex(href, "/collections/")
	if idx < 0 {
		return false
	}
	tail := href[idx+len("/collections/"):]
	return !strings.Contains(tail, "/products/")
}

// scanShowcaseSections collects anchors ending in a product path from
// sections whose class suggests a homepage product showcase.
func scanShowcaseSections(doc *goquery.Document, acc *heroAccumulator) {
	doc.Find("section, div").Each(func(_ int, section *goquery.Selection) {
		class, ok := section.Attr("class")
		if !ok || !sectionClassRe.MatchString(class) {
			return
		}
		section.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			if productAnchorRe.MatchString(href) {
				acc.add(href)
			}
		})
	})
}

// scanProductDataAttributes collects product anchors nested under
// elements that carry Shopify product data attributes.
func scanProductDataAttributes(doc *goquery.Document, acc *heroAccumulator) {
	doc.Find("[data-product-id], [data-product-handle]").Each(func(_ int, el *goquery.Selection) {
		el.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			if strings.Contains(href, "/products/") {
				acc.add(href)
			}
		})
	})
}

// scanStructuredData collects product URLs from embedded JSON-LD blocks.
// Only top-level lists are considered: a single top-level Product object
// describes a product detail page, not a homepage listing. Malformed
// blocks are skipped without failing the scan.
func scanStructuredData(doc *goquery.Document, acc *heroAccumulator) {
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, script *goquery.Selection) {
		var data any
		if err := json.Unmarshal([]byte(script.Text()), &data); err != nil {
			return
		}

		items, ok := data.([]any)
		if !ok {
			return
		}
		for _, item := range items {
			obj, ok := item.(map[string]any)
			if !ok || obj["@type"] != "Product" {
				continue
			}
			url, _ := obj["url"].(string)
			if strings.Contains(url, "/products/") {
				acc.add(url)
			}
		}
	})
}
