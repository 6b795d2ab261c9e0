// Package insight orchestrates brand insight extraction. It coordinates
// homepage fetching, catalog retrieval, heuristic page extraction, AI
// structuring of linked pages, and competitor discovery into a single
// BrandInsights result.
package insight

import (
	"context"
	"strings"

	"brandsight"
	"brandsight/goquery"

	"golang.org/x/sync/errgroup"
)

// Schemas sent to the AI structurer for linked-page processing.
const (
	summarySchema = `{'summary': 'A concise, one-paragraph summary of the brand.'}`
	faqSchema     = `{'faqs': [{'question': 'string', 'answer': 'string'}]}`
)

const (
	// contextFallbackChars caps the raw-text brand context used when the
	// structurer is unavailable or returns no summary.
	contextFallbackChars = 500

	// catalogTypeEntries is how many leading catalog entries contribute
	// product types to competitor discovery.
	catalogTypeEntries = 10
)

// linkKeywords are the page categories classified from homepage anchors.
var linkKeywords = []string{"privacy", "refund", "return", "contact", "faq", "about", "track"}

// policyKeywords are the link categories stored as policies.
var policyKeywords = []string{"privacy", "refund", "return"}

// Ensure Service implements brandsight.InsightService at compile time.
var _ brandsight.InsightService = (*Service)(nil)

// Service orchestrates the insight extraction pipeline.
type Service struct {
	Fetcher   brandsight.Fetcher
	Catalog   brandsight.CatalogFetcher
	Links     brandsight.LinkClassifier
	Social    brandsight.SocialExtractor
	Heroes    brandsight.HeroLocator
	Contacts  brandsight.ContactExtractor
	Texts     brandsight.TextExtractor
	Converter brandsight.Converter

	// Structurer and Competitors are optional. A nil Structurer skips AI
	// structuring (brand context falls back to raw text, FAQs stay
	// empty); a nil Competitors skips competitor discovery.
	Structurer  brandsight.Structurer
	Competitors brandsight.CompetitorFinder
}

// FetchInsights analyzes the storefront at websiteURL. Only a failed
// homepage fetch fails the request; every other extraction failure
// degrades to an empty field in the result.
func (s *Service) FetchInsights(ctx context.Context, websiteURL string) (*brandsight.BrandInsights, error) {
	base := brandsight.NormalizeBaseURL(websiteURL)

	homepage, err := s.Fetcher.Fetch(ctx, base)
	if err != nil {
		return nil, brandsight.Errorf(brandsight.ENOTFOUND, "website not found or could not be accessed")
	}

	insights := &brandsight.BrandInsights{
		ProductCatalog: []brandsight.Product{},
		HeroProducts:   []string{},
		Policies:       map[string]string{},
		FAQs:           []brandsight.FAQItem{},
		SocialHandles:  map[string]string{},
		ImportantLinks: map[string]string{},
		Competitors:    []string{},
	}

	// Homepage extractions are independent; run them in parallel. Each
	// writes a distinct field and degrades to the zero value on failure.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if products, err := s.Catalog.FetchCatalog(gctx, base); err == nil && products != nil {
			insights.ProductCatalog = products
		}
		return nil
	})
	g.Go(func() error {
		if heroes, err := s.Heroes.HeroProducts(homepage, base); err == nil && heroes != nil {
			insights.HeroProducts = heroes
		}
		return nil
	})
	g.Go(func() error {
		if links, err := s.Links.ClassifyLinks(homepage, base, linkKeywords); err == nil && links != nil {
			insights.ImportantLinks = links
		}
		return nil
	})
	g.Go(func() error {
		if handles, err := s.Social.SocialHandles(homepage); err == nil && handles != nil {
			insights.SocialHandles = handles
		}
		return nil
	})
	g.Go(func() error {
		if details, err := s.Contacts.ContactDetails(homepage); err == nil && details != nil {
			insights.ContactDetails = *details
		}
		return nil
	})

	_ = g.Wait()

	// Linked pages are a single extra hop each, processed sequentially.
	if aboutURL, ok := insights.ImportantLinks["about"]; ok {
		insights.BrandContext = s.brandContext(ctx, aboutURL)
	}
	if faqURL, ok := insights.ImportantLinks["faq"]; ok {
		insights.FAQs = s.faqs(ctx, faqURL)
	}
	for _, keyword := range policyKeywords {
		policyURL, ok := insights.ImportantLinks[keyword]
		if !ok {
			continue
		}
		if policy := s.policy(ctx, policyURL); policy != "" {
			insights.Policies[keyword+"_policy"] = policy
		}
	}

	insights.BrandName = goquery.PageTitle(homepage)

	if s.Competitors != nil {
		productTypes := catalogProductTypes(insights.ProductCatalog)
		if competitors, err := s.Competitors.FindCompetitors(ctx, insights.BrandName, productTypes); err == nil && competitors != nil {
			insights.Competitors = competitors
		}
	}

	return insights, nil
}

// brandContext fetches the about page and summarizes it. Falls back to
// the leading raw text when the structurer is absent or unhelpful.
func (s *Service) brandContext(ctx context.Context, aboutURL string) string {
	html, err := s.Fetcher.Fetch(ctx, aboutURL)
	if err != nil {
		return ""
	}
	text := s.pageText(html)
	if text == "" {
		return ""
	}

	if s.Structurer != nil {
		if data, err := s.Structurer.Structure(ctx, text, summarySchema); err == nil {
			if summary, ok := data["summary"].(string); ok && summary != "" {
				return summary
			}
		}
	}

	return truncateText(text, contextFallbackChars)
}

// faqs fetches the FAQ page and structures it into question/answer
// pairs. Requires the structurer; malformed entries are skipped.
func (s *Service) faqs(ctx context.Context, faqURL string) []brandsight.FAQItem {
	if s.Structurer == nil {
		return []brandsight.FAQItem{}
	}

	html, err := s.Fetcher.Fetch(ctx, faqURL)
	if err != nil {
		return []brandsight.FAQItem{}
	}
	text := s.pageText(html)
	if text == "" {
		return []brandsight.FAQItem{}
	}

	data, err := s.Structurer.Structure(ctx, text, faqSchema)
	if err != nil {
		return []brandsight.FAQItem{}
	}

	items, ok := data["faqs"].([]any)
	if !ok {
		return []brandsight.FAQItem{}
	}

	faqs := make([]brandsight.FAQItem, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		question, _ := entry["question"].(string)
		answer, _ := entry["answer"].(string)
		if question == "" {
			continue
		}
		faqs = append(faqs, brandsight.FAQItem{Question: question, Answer: answer})
	}
	return faqs
}

// policy fetches a policy page and returns its content as Markdown,
// falling back to plain text when main-content extraction or conversion
// fails.
func (s *Service) policy(ctx context.Context, policyURL string) string {
	html, err := s.Fetcher.Fetch(ctx, policyURL)
	if err != nil {
		return ""
	}

	if extracted, err := s.Texts.Extract(html); err == nil {
		if extracted.ContentHTML != "" {
			if markdown, err := s.Converter.Convert(extracted.ContentHTML); err == nil && markdown != "" {
				return markdown
			}
		}
		if extracted.ContentText != "" {
			return extracted.ContentText
		}
	}

	return goquery.PageText(html)
}

// pageText returns the readable text of a page, preferring main-content
// extraction over the whole-document fallback.
func (s *Service) pageText(html string) string {
	if extracted, err := s.Texts.Extract(html); err == nil && extracted.ContentText != "" {
		return extracted.ContentText
	}
	return goquery.PageText(html)
}

// catalogProductTypes collects non-empty product types from the leading
// catalog entries, preserving catalog order.
func catalogProductTypes(catalog []brandsight.Product) []string {
	var types []string
	for i, product := range catalog {
		if i >= catalogTypeEntries {
			break
		}
		if pt := strings.TrimSpace(product.ProductType); pt != "" {
			types = append(types, pt)
		}
	}
	return types
}

// truncateText caps text at limit characters without splitting a rune.
func truncateText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
