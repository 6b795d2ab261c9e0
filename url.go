package brandsight

import (
	"net/url"
	"strings"
)

// productURLBlocklist contains path keywords that indicate a URL is not a
// product detail page even when it carries a /products/ segment.
var productURLBlocklist = []string{
	"collections", "pages", "blogs", "cart", "checkout",
	"account", "search", "admin", "api",
}

// NormalizeBaseURL trims trailing slashes so the base can be joined with
// absolute paths.
func NormalizeBaseURL(raw string) string {
	return strings.TrimRight(raw, "/")
}

// CanonicalURL resolves href against baseURL and strips the query and
// fragment, leaving scheme+host+path. Returns "" if either URL is
// malformed or the result is not http(s).
func CanonicalURL(baseURL string, href string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}

	resolved.RawQuery = ""
	resolved.Fragment = ""
	resolved.RawFragment = ""
	return resolved.String()
}

// RootDomain reduces a hostname to its last two dot-separated labels,
// lowercased and with a leading "www." removed. The two-label rule is a
// deliberate simplification; multi-part public suffixes are not expanded.
func RootDomain(host string) string {
	host = strings.ToLower(strings.TrimPrefix(host, "www."))
	if host == "" {
		return ""
	}
	parts := strings.Split(host, ".")
	if len(parts) < 2 {
		return host
	}
	return strings.Join(parts[len(parts)-2:], ".")
}

// IsValidProductURL reports whether rawURL looks like a genuine product
// detail page. Malformed URLs are invalid, not an error.
//
// A valid product URL has a path of the form /products/<handle> where the
// handle is 2-100 characters, and contains none of the blocklisted path
// keywords anywhere in the URL.
func IsValidProductURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	if !strings.Contains(rawURL, "/products/") {
		return false
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 || parts[0] != "products" {
		return false
	}

	handle := parts[1]
	if len(handle) < 2 || len(handle) > 100 {
		return false
	}

	lower := strings.ToLower(rawURL)
	for _, keyword := range productURLBlocklist {
		if strings.Contains(lower, keyword) {
			return false
		}
	}

	return true
}
