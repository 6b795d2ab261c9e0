// Package competitor discovers candidate competitor domains for a brand
// by issuing templated web searches and filtering the results.
package competitor

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"brandsight"

	"golang.org/x/time/rate"
)

const (
	maxCompetitors  = 5
	maxProductTypes = 3
	searchDepth     = "basic"
	resultsPerQuery = 8
)

// excludedDomains lists well-known platforms, marketplaces, and media
// sites that can never be a brand's direct competitor. Entries that are
// common storefront-name prefixes (shopify, wix) match on the full
// domain so that e.g. shopify-competitor.com is not swallowed.
var excludedDomains = []string{
	"facebook", "instagram", "youtube", "pinterest", "twitter", "x.com",
	"linkedin", "wikipedia", "amazon", "myntra", "flipkart", "forbes",
	"inc.com", "reddit", "quora", "medium", "techcrunch", "crunchbase",
	"bloomberg", "reuters", "google", "bing", "yahoo", "shopify.com",
	"squarespace", "wix.com", "wordpress", "github", "stackoverflow",
	"aliexpress", "alibaba", "ebay", "etsy", "tiktok", "snapchat",
}

// infrastructureMarkers flag hosts that serve a site's supporting
// content (blogs, docs, CDNs) rather than a storefront.
var infrastructureMarkers = []string{
	"blog.", "news.", "wiki.", "forum.", "support.", "help.",
	"api.", "dev.", "docs.", "cdn.", "static.", "img.",
	".blogspot.", ".wordpress.", ".tumblr.", ".medium.",
}

// allowedTLDs are suffixes commonly used by brand storefronts.
var allowedTLDs = []string{
	"com", "co", "net", "org", "in", "co.in", "co.uk", "ca",
	"au", "de", "fr", "it", "es", "br", "mx", "jp", "kr",
}

// brandIndicators are commerce words whose presence in a result's title
// or content suggests the domain belongs to a selling brand.
var brandIndicators = []string{
	"shop", "store", "buy", "collection", "product", "brand",
	"fashion", "clothing", "apparel", "accessories", "jewelry",
}

// Ensure Finder implements brandsight.CompetitorFinder at compile time.
var _ brandsight.CompetitorFinder = (*Finder)(nil)

// Finder implements brandsight.CompetitorFinder on top of a Searcher.
type Finder struct {
	searcher brandsight.Searcher
	limiter  *rate.Limiter
}

// NewFinder creates a new Finder. The limiter paces consecutive search
// queries to stay under the provider's rate limits; this is advisory,
// not correctness-critical.
func NewFinder(searcher brandsight.Searcher) *Finder {
	return &Finder{
		searcher: searcher,
		limiter:  rate.NewLimiter(rate.Limit(2), 1),
	}
}

// FindCompetitors searches the web for competitors of brandName and
// returns up to 5 root domains in first-discovered order.
//
// An empty brand name or an unconfigured searcher yields an empty list
// without error, and a failed individual query degrades to the results
// of the remaining queries.
func (f *Finder) FindCompetitors(ctx context.Context, brandName string, productTypes []string) ([]string, error) {
	if f.searcher == nil || brandName == "" {
		return nil, nil
	}

	queries := BuildQueries(brandName, productPhrase(productTypes))
	keywords := brandKeywords(brandName)

	seen := make(map[string]bool)
	var domains []string

	for _, query := range queries {
		if err := f.limiter.Wait(ctx); err != nil {
			return domains, err
		}

		results, err := f.searcher.Search(ctx, query, searchDepth, resultsPerQuery)
		if err != nil {
			continue
		}

		collectCompetitors(results, keywords, seen, &domains)
	}

	if len(domains) > maxCompetitors {
		domains = domains[:maxCompetitors]
	}
	return domains, nil
}

// productPhrase joins up to 3 distinct, non-empty product types into a
// query phrase. Returns "" when no usable types exist.
func productPhrase(productTypes []string) string {
	var phrase []string
	seen := make(map[string]bool)
	for _, pt := range productTypes {
		pt = strings.TrimSpace(pt)
		if pt == "" || seen[pt] {
			continue
		}
		seen[pt] = true
		phrase = append(phrase, pt)
		if len(phrase) == maxProductTypes {
			break
		}
	}
	return strings.Join(phrase, " ")
}

// BuildQueries returns the three templated search queries for a brand.
func BuildQueries(brandName string, productPhrase string) []string {
	if productPhrase != "" {
		return []string{
			fmt.Sprintf("direct competitors of %s %s", brandName, productPhrase),
			fmt.Sprintf("brands like %s %s", brandName, productPhrase),
			fmt.Sprintf("alternatives to %s %s", brandName, productPhrase),
		}
	}
	return []string{
		fmt.Sprintf("direct competitors of %s", brandName),
		fmt.Sprintf("brands similar to %s", brandName),
		fmt.Sprintf("competitors analysis %s", brandName),
	}
}

// brandKeywords extracts the brand name's words longer than 2 characters
// for excluding the brand's own domains from results. Short brand names
// may produce an empty list, in which case no exclusion applies.
func brandKeywords(brandName string) []string {
	var keywords []string
	for _, word := range strings.Fields(brandName) {
		if len(word) > 2 {
			keywords = append(keywords, strings.ToLower(word))
		}
	}
	return keywords
}

// collectCompetitors filters one query's results and appends newly seen
// root domains.
func collectCompetitors(results []brandsight.SearchResult, brandWords []string, seen map[string]bool, domains *[]string) {
	for _, result := range results {
		parsed, err := url.Parse(result.URL)
		if err != nil {
			continue
		}

		host := strings.ToLower(strings.TrimPrefix(parsed.Hostname(), "www."))
		if host == "" {
			continue
		}

		if containsAny(host, brandWords) || containsAny(host, excludedDomains) {
			continue
		}
		if !isLegitimateBrandDomain(host, result.Title, result.Content) {
			continue
		}

		root := brandsight.RootDomain(host)
		if root == "" || seen[root] {
			continue
		}
		seen[root] = true
		*domains = append(*domains, root)
	}
}

// isLegitimateBrandDomain applies the legitimacy heuristics: no
// infrastructure subdomain markers, a recognized TLD suffix, and at
// least one commerce indicator word in the result's title or content.
func isLegitimateBrandDomain(host string, title string, content string) bool {
	if containsAny(host, infrastructureMarkers) {
		return false
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}

	tld := strings.Join(labels[len(labels)-2:], ".")
	allowed := false
	for _, suffix := range allowedTLDs {
		if strings.HasSuffix(tld, suffix) {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}

	text := strings.ToLower(title + " " + content)
	return containsAny(text, brandIndicators)
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
