package brandsight

import (
	"context"
	"time"
)

// BrandInsights is the aggregate result of analyzing one storefront.
// It is assembled once per request and not mutated afterwards.
type BrandInsights struct {
	BrandName      string            `json:"brand_name"`
	ProductCatalog []Product         `json:"product_catalog"`
	HeroProducts   []string          `json:"hero_products"`
	Policies       map[string]string `json:"policies"`
	FAQs           []FAQItem         `json:"faqs"`
	SocialHandles  map[string]string `json:"social_handles"`
	ContactDetails ContactDetails    `json:"contact_details"`
	BrandContext   string            `json:"brand_context"`
	ImportantLinks map[string]string `json:"important_links"`
	Competitors    []string          `json:"competitors"`
}

// Product is one entry of a store's product catalog. Only the declared
// fields are decoded from the upstream catalog JSON; everything else the
// endpoint returns is dropped.
type Product struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Vendor      string `json:"vendor"`
	ProductType string `json:"product_type"`
	Handle      string `json:"handle"`
	CreatedAt   string `json:"created_at"`
}

// FAQItem is a single question/answer pair extracted from a FAQ page.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContactDetails holds contact information scraped from a page.
// Emails are lowercased and capped at 5; phone numbers are trimmed and
// capped at 3. Both are deduplicated in first-discovered order.
type ContactDetails struct {
	Emails       []string `json:"emails"`
	PhoneNumbers []string `json:"phone_numbers"`
}

// FetchRequest is the inbound request for the insights API.
type FetchRequest struct {
	WebsiteURL string `json:"website_url" validate:"required,url"`
}

// InsightService produces brand insights for a storefront URL.
type InsightService interface {
	// FetchInsights analyzes the storefront at websiteURL.
	// Returns ENOTFOUND if the homepage cannot be fetched; all other
	// extraction failures degrade to empty fields in the result.
	FetchInsights(ctx context.Context, websiteURL string) (*BrandInsights, error)
}

// Insight is a persisted snapshot of a fetched BrandInsights record.
type Insight struct {
	ID          string         `json:"id"`
	WebsiteURL  string         `json:"websiteUrl"`
	BrandName   string         `json:"brandName"`
	Record      *BrandInsights `json:"record"`
	ContentHash string         `json:"contentHash"`
	FetchedAt   time.Time      `json:"fetchedAt"`
}

// Validate returns an error if the insight contains invalid fields.
func (i *Insight) Validate() error {
	if i.WebsiteURL == "" {
		return Errorf(EINVALID, "insight website URL required")
	}
	if i.Record == nil {
		return Errorf(EINVALID, "insight record required")
	}
	return nil
}

// InsightFilter represents a filter for FindInsights.
type InsightFilter struct {
	ID         *string `json:"id"`
	WebsiteURL *string `json:"websiteUrl"`
	BrandName  *string `json:"brandName"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// InsightStore persists fetched insight records.
type InsightStore interface {
	// CreateInsight stores a new insight snapshot.
	CreateInsight(ctx context.Context, insight *Insight) error

	// FindInsightByID retrieves an insight by ID.
	// Returns ENOTFOUND if the insight does not exist.
	FindInsightByID(ctx context.Context, id string) (*Insight, error)

	// FindInsights retrieves insights matching the filter, newest first.
	FindInsights(ctx context.Context, filter InsightFilter) ([]*Insight, error)

	// DeleteInsight permanently removes an insight.
	// Returns ENOTFOUND if the insight does not exist.
	DeleteInsight(ctx context.Context, id string) error
}
