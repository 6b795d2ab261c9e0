package insight_test

import (
	"context"
	"strings"
	"testing"

	"brandsight"
	"brandsight/insight"
	"brandsight/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const homepageHTML = `<html><head><title>BrandX | Official Store</title></head>
<body><p>Welcome to BrandX.</p></body></html>`

// newService returns a Service with every dependency mocked to a benign
// default. Tests override the fields they exercise.
func newService(pages map[string]string) *insight.Service {
	return &insight.Service{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if html, ok := pages[url]; ok {
					return html, nil
				}
				return "", brandsight.Errorf(brandsight.ENOTFOUND, "page not found")
			},
		},
		Catalog: &mock.CatalogFetcher{
			FetchCatalogFn: func(ctx context.Context, baseURL string) ([]brandsight.Product, error) {
				return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "no catalog")
			},
		},
		Links: &mock.LinkClassifier{
			ClassifyLinksFn: func(html, baseURL string, keywords []string) (map[string]string, error) {
				return map[string]string{}, nil
			},
		},
		Social: &mock.SocialExtractor{
			SocialHandlesFn: func(html string) (map[string]string, error) {
				return map[string]string{}, nil
			},
		},
		Heroes: &mock.HeroLocator{
			HeroProductsFn: func(html, baseURL string) ([]string, error) {
				return []string{}, nil
			},
		},
		Contacts: &mock.ContactExtractor{
			ContactDetailsFn: func(html string) (*brandsight.ContactDetails, error) {
				return &brandsight.ContactDetails{}, nil
			},
		},
		Texts: &mock.TextExtractor{
			ExtractFn: func(html string) (*brandsight.ExtractResult, error) {
				return nil, brandsight.Errorf(brandsight.EINVALID, "no content")
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", brandsight.Errorf(brandsight.EINVALID, "no content")
			},
		},
	}
}

func TestService_FetchInsights(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND when homepage cannot be fetched", func(t *testing.T) {
		t.Parallel()

		svc := newService(nil)

		_, err := svc.FetchInsights(context.Background(), "https://unreachable.example.com")

		require.Error(t, err)
		assert.Equal(t, brandsight.ENOTFOUND, brandsight.ErrorCode(err))
	})

	t.Run("normalizes trailing slash before fetching", func(t *testing.T) {
		t.Parallel()

		svc := newService(map[string]string{
			"https://brandx.com": homepageHTML,
		})

		insights, err := svc.FetchInsights(context.Background(), "https://brandx.com/")

		require.NoError(t, err)
		assert.Equal(t, "BrandX", insights.BrandName)
	})

	t.Run("assembles homepage extractions", func(t *testing.T) {
		t.Parallel()

		svc := newService(map[string]string{
			"https://brandx.com": homepageHTML,
		})
		svc.Catalog = &mock.CatalogFetcher{
			FetchCatalogFn: func(ctx context.Context, baseURL string) ([]brandsight.Product, error) {
				assert.Equal(t, "https://brandx.com", baseURL)
				return []brandsight.Product{{ID: 1, Title: "Candle", ProductType: "Candles"}}, nil
			},
		}
		svc.Heroes = &mock.HeroLocator{
			HeroProductsFn: func(html, baseURL string) ([]string, error) {
				return []string{"https://brandx.com/products/candle"}, nil
			},
		}
		svc.Social = &mock.SocialExtractor{
			SocialHandlesFn: func(html string) (map[string]string, error) {
				return map[string]string{"instagram": "https://instagram.com/brandx"}, nil
			},
		}
		svc.Contacts = &mock.ContactExtractor{
			ContactDetailsFn: func(html string) (*brandsight.ContactDetails, error) {
				return &brandsight.ContactDetails{Emails: []string{"hi@brandx.com"}}, nil
			},
		}
		svc.Links = &mock.LinkClassifier{
			ClassifyLinksFn: func(html, baseURL string, keywords []string) (map[string]string, error) {
				assert.Equal(t, []string{"privacy", "refund", "return", "contact", "faq", "about", "track"}, keywords)
				return map[string]string{"contact": "https://brandx.com/pages/contact"}, nil
			},
		}

		insights, err := svc.FetchInsights(context.Background(), "https://brandx.com")

		require.NoError(t, err)
		assert.Equal(t, "BrandX", insights.BrandName)
		require.Len(t, insights.ProductCatalog, 1)
		assert.Equal(t, "Candle", insights.ProductCatalog[0].Title)
		assert.Equal(t, []string{"https://brandx.com/products/candle"}, insights.HeroProducts)
		assert.Equal(t, map[string]string{"instagram": "https://instagram.com/brandx"}, insights.SocialHandles)
		assert.Equal(t, []string{"hi@brandx.com"}, insights.ContactDetails.Emails)
		assert.Equal(t, map[string]string{"contact": "https://brandx.com/pages/contact"}, insights.ImportantLinks)
	})

	t.Run("degrades failed extractions to empty fields", func(t *testing.T) {
		t.Parallel()

		svc := newService(map[string]string{
			"https://brandx.com": homepageHTML,
		})
		svc.Heroes = &mock.HeroLocator{
			HeroProductsFn: func(html, baseURL string) ([]string, error) {
				return nil, brandsight.Errorf(brandsight.EINTERNAL, "boom")
			},
		}
		svc.Social = &mock.SocialExtractor{
			SocialHandlesFn: func(html string) (map[string]string, error) {
				return nil, brandsight.Errorf(brandsight.EINTERNAL, "boom")
			},
		}
		svc.Contacts = &mock.ContactExtractor{
			ContactDetailsFn: func(html string) (*brandsight.ContactDetails, error) {
				return nil, brandsight.Errorf(brandsight.EINTERNAL, "boom")
			},
		}

		insights, err := svc.FetchInsights(context.Background(), "https://brandx.com")

		require.NoError(t, err)
		assert.Empty(t, insights.ProductCatalog)
		assert.Empty(t, insights.HeroProducts)
		assert.Empty(t, insights.SocialHandles)
		assert.Empty(t, insights.ContactDetails.Emails)
		assert.Empty(t, insights.Policies)
		assert.Empty(t, insights.FAQs)
		assert.Empty(t, insights.Competitors)
	})

	t.Run("summarizes about page through structurer", func(t *testing.T) {
		t.Parallel()

		svc := newService(map[string]string{
			"https://brandx.com":             homepageHTML,
			"https://brandx.com/pages/about": `<html><body><p>BrandX makes candles in Portland.</p></body></html>`,
		})
		svc.Links = &mock.LinkClassifier{
			ClassifyLinksFn: func(html, baseURL string, keywords []string) (map[string]string, error) {
				return map[string]string{"about": "https://brandx.com/pages/about"}, nil
			},
		}
		svc.Structurer = &mock.Structurer{
			StructureFn: func(ctx context.Context, text, schema string) (map[string]any, error) {
				assert.Contains(t, schema, "summary")
				assert.Contains(t, text, "BrandX makes candles")
				return map[string]any{"summary": "BrandX is a Portland candle maker."}, nil
			},
		}

		insights, err := svc.FetchInsights(context.Background(), "https://brandx.com")

		require.NoError(t, err)
		assert.Equal(t, "BrandX is a Portland candle maker.", insights.BrandContext)
	})

	t.Run("falls back to leading raw text when structurer fails", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("BrandX story. ", 100)
		svc := newService(map[string]string{
			"https://brandx.com":             homepageHTML,
			"https://brandx.com/pages/about": `<html><body><p>` + long + `</p></body></html>`,
		})
		svc.Links = &mock.LinkClassifier{
			ClassifyLinksFn: func(html, baseURL string, keywords []string) (map[string]string, error) {
				return map[string]string{"about": "https://brandx.com/pages/about"}, nil
			},
		}
		svc.Structurer = &mock.Structurer{
			StructureFn: func(ctx context.Context, text, schema string) (map[string]any, error) {
				return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "model down")
			},
		}

		insights, err := svc.FetchInsights(context.Background(), "https://brandx.com")

		require.NoError(t, err)
		assert.NotEmpty(t, insights.BrandContext)
		assert.LessOrEqual(t, len([]rune(insights.BrandContext)), 500)
	})

	t.Run("uses raw text for brand context without structurer", func(t *testing.T) {
		t.Parallel()

		svc := newService(map[string]string{
			"https://brandx.com":             homepageHTML,
			"https://brandx.com/pages/about": `<html><body><p>Founded in 2019.</p></body></html>`,
		})
		svc.Links = &mock.LinkClassifier{
			ClassifyLinksFn: func(html, baseURL string, keywords []string) (map[string]string, error) {
				return map[string]string{"about": "https://brandx.com/pages/about"}, nil
			},
		}

		insights, err := svc.FetchInsights(context.Background(), "https://brandx.com")

		require.NoError(t, err)
		assert.Contains(t, insights.BrandContext, "Founded in 2019.")
	})

	t.Run("structures FAQ page and skips malformed entries", func(t *testing.T) {
		t.Parallel()

		svc := newService(map[string]string{
			"https://brandx.com":           homepageHTML,
			"https://brandx.com/pages/faq": `<html><body><p>Q and A text.</p></body></html>`,
		})
		svc.Links = &mock.LinkClassifier{
			ClassifyLinksFn: func(html, baseURL string, keywords []string) (map[string]string, error) {
				return map[string]string{"faq": "https://brandx.com/pages/faq"}, nil
			},
		}
		svc.Structurer = &mock.Structurer{
			StructureFn: func(ctx context.Context, text, schema string) (map[string]any, error) {
				assert.Contains(t, schema, "faqs")
				return map[string]any{"faqs": []any{
					map[string]any{"question": "Do you ship?", "answer": "Yes, worldwide."},
					"not an object",
					map[string]any{"answer": "orphan answer"},
				}}, nil
			},
		}

		insights, err := svc.FetchInsights(context.Background(), "https://brandx.com")

		require.NoError(t, err)
		require.Len(t, insights.FAQs, 1)
		assert.Equal(t, "Do you ship?", insights.FAQs[0].Question)
		assert.Equal(t, "Yes, worldwide.", insights.FAQs[0].Answer)
	})

	t.Run("leaves FAQs empty without structurer", func(t *testing.T) {
		t.Parallel()

		svc := newService(map[string]string{
			"https://brandx.com":           homepageHTML,
			"https://brandx.com/pages/faq": `<html><body><p>Q and A text.</p></body></html>`,
		})
		svc.Links = &mock.LinkClassifier{
			ClassifyLinksFn: func(html, baseURL string, keywords []string) (map[string]string, error) {
				return map[string]string{"faq": "https://brandx.com/pages/faq"}, nil
			},
		}

		insights, err := svc.FetchInsights(context.Background(), "https://brandx.com")

		require.NoError(t, err)
		assert.Empty(t, insights.FAQs)
	})

	t.Run("stores policies as markdown", func(t *testing.T) {
		t.Parallel()

		svc := newService(map[string]string{
			"https://brandx.com":                  homepageHTML,
			"https://brandx.com/policies/privacy": `<html><body><article><h1>Privacy</h1></article></body></html>`,
		})
		svc.Links = &mock.LinkClassifier{
			ClassifyLinksFn: func(html, baseURL string, keywords []string) (map[string]string, error) {
				return map[string]string{"privacy": "https://brandx.com/policies/privacy"}, nil
			},
		}
		svc.Texts = &mock.TextExtractor{
			ExtractFn: func(html string) (*brandsight.ExtractResult, error) {
				return &brandsight.ExtractResult{
					ContentHTML: "<h1>Privacy</h1>",
					ContentText: "Privacy",
				}, nil
			},
		}
		svc.Converter = &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "# Privacy", nil
			},
		}

		insights, err := svc.FetchInsights(context.Background(), "https://brandx.com")

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"privacy_policy": "# Privacy"}, insights.Policies)
	})

	t.Run("falls back to page text when extraction fails", func(t *testing.T) {
		t.Parallel()

		svc := newService(map[string]string{
			"https://brandx.com":                 homepageHTML,
			"https://brandx.com/policies/refund": `<html><body><p>Refunds within 30 days.</p></body></html>`,
		})
		svc.Links = &mock.LinkClassifier{
			ClassifyLinksFn: func(html, baseURL string, keywords []string) (map[string]string, error) {
				return map[string]string{"refund": "https://brandx.com/policies/refund"}, nil
			},
		}

		insights, err := svc.FetchInsights(context.Background(), "https://brandx.com")

		require.NoError(t, err)
		assert.Contains(t, insights.Policies["refund_policy"], "Refunds within 30 days.")
	})

	t.Run("skips unreachable linked pages", func(t *testing.T) {
		t.Parallel()

		svc := newService(map[string]string{
			"https://brandx.com": homepageHTML,
		})
		svc.Links = &mock.LinkClassifier{
			ClassifyLinksFn: func(html, baseURL string, keywords []string) (map[string]string, error) {
				return map[string]string{
					"about":   "https://brandx.com/pages/about",
					"faq":     "https://brandx.com/pages/faq",
					"privacy": "https://brandx.com/policies/privacy",
				}, nil
			},
		}

		insights, err := svc.FetchInsights(context.Background(), "https://brandx.com")

		require.NoError(t, err)
		assert.Empty(t, insights.BrandContext)
		assert.Empty(t, insights.FAQs)
		assert.Empty(t, insights.Policies)
	})

	t.Run("passes product types from leading catalog entries to competitor discovery", func(t *testing.T) {
		t.Parallel()

		catalog := make([]brandsight.Product, 0, 12)
		for i := 0; i < 12; i++ {
			pt := "Candles"
			if i%2 == 1 {
				pt = ""
			}
			catalog = append(catalog, brandsight.Product{ID: int64(i), ProductType: pt})
		}

		svc := newService(map[string]string{
			"https://brandx.com": homepageHTML,
		})
		svc.Catalog = &mock.CatalogFetcher{
			FetchCatalogFn: func(ctx context.Context, baseURL string) ([]brandsight.Product, error) {
				return catalog, nil
			},
		}
		svc.Competitors = &mock.CompetitorFinder{
			FindCompetitorsFn: func(ctx context.Context, brandName string, productTypes []string) ([]string, error) {
				assert.Equal(t, "BrandX", brandName)
				// Only the first 10 entries contribute, empties dropped.
				assert.Equal(t, []string{"Candles", "Candles", "Candles", "Candles", "Candles"}, productTypes)
				return []string{"rivalcandles.com"}, nil
			},
		}

		insights, err := svc.FetchInsights(context.Background(), "https://brandx.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"rivalcandles.com"}, insights.Competitors)
	})

	t.Run("degrades competitor discovery failure to empty list", func(t *testing.T) {
		t.Parallel()

		svc := newService(map[string]string{
			"https://brandx.com": homepageHTML,
		})
		svc.Competitors = &mock.CompetitorFinder{
			FindCompetitorsFn: func(ctx context.Context, brandName string, productTypes []string) ([]string, error) {
				return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "search provider down")
			},
		}

		insights, err := svc.FetchInsights(context.Background(), "https://brandx.com")

		require.NoError(t, err)
		assert.Empty(t, insights.Competitors)
	})
}
