package main

import (
	"fmt"

	"brandsight"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := brandsight.InsightFilter{Limit: c.Limit}
	if c.WebsiteURL != "" {
		filter.WebsiteURL = &c.WebsiteURL
	}
	if c.Brand != "" {
		filter.BrandName = &c.Brand
	}

	insights, err := deps.Insights.FindInsights(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", brandsight.ErrorMessage(err))
		return err
	}

	if len(insights) == 0 {
		fmt.Fprintln(deps.Stdout, "No insights found. Use 'brandsight fetch' to create one.")
		return nil
	}

	for _, in := range insights {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			in.ID, in.FetchedAt.Format("2006-01-02 15:04"), in.BrandName, in.WebsiteURL)
	}

	return nil
}
