package mock

import "brandsight"

var _ brandsight.LinkClassifier = (*LinkClassifier)(nil)

// LinkClassifier is a mock implementation of brandsight.LinkClassifier.
type LinkClassifier struct {
	ClassifyLinksFn func(html, baseURL string, keywords []string) (map[string]string, error)
}

func (c *LinkClassifier) ClassifyLinks(html, baseURL string, keywords []string) (map[string]string, error) {
	return c.ClassifyLinksFn(html, baseURL, keywords)
}

var _ brandsight.SocialExtractor = (*SocialExtractor)(nil)

// SocialExtractor is a mock implementation of brandsight.SocialExtractor.
type SocialExtractor struct {
	SocialHandlesFn func(html string) (map[string]string, error)
}

func (s *SocialExtractor) SocialHandles(html string) (map[string]string, error) {
	return s.SocialHandlesFn(html)
}

var _ brandsight.HeroLocator = (*HeroLocator)(nil)

// HeroLocator is a mock implementation of brandsight.HeroLocator.
type HeroLocator struct {
	HeroProductsFn func(html, baseURL string) ([]string, error)
}

func (l *HeroLocator) HeroProducts(html, baseURL string) ([]string, error) {
	return l.HeroProductsFn(html, baseURL)
}

var _ brandsight.ContactExtractor = (*ContactExtractor)(nil)

// ContactExtractor is a mock implementation of brandsight.ContactExtractor.
type ContactExtractor struct {
	ContactDetailsFn func(html string) (*brandsight.ContactDetails, error)
}

func (c *ContactExtractor) ContactDetails(html string) (*brandsight.ContactDetails, error) {
	return c.ContactDetailsFn(html)
}

var _ brandsight.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of brandsight.TextExtractor.
type TextExtractor struct {
	ExtractFn func(html string) (*brandsight.ExtractResult, error)
}

func (e *TextExtractor) Extract(html string) (*brandsight.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ brandsight.Converter = (*Converter)(nil)

// Converter is a mock implementation of brandsight.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
