// Package brandsight extracts structured brand insight data from e-commerce
// storefronts. It scrapes a store's public pages for product links, policies,
// FAQs, contacts and social handles, structures free text with an AI model,
// and discovers competitor brands via web search.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, tavily/).
package brandsight
