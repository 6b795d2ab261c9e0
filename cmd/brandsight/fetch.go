package main

import (
	"encoding/json"
	"fmt"

	"brandsight"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	insights, err := deps.Service.FetchInsights(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", brandsight.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(insights, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode insights: %w", err)
	}
	fmt.Fprintln(deps.Stdout, string(out))

	if c.NoSave {
		return nil
	}

	snapshot := &brandsight.Insight{
		WebsiteURL: brandsight.NormalizeBaseURL(c.URL),
		BrandName:  insights.BrandName,
		Record:     insights,
	}
	if err := deps.Insights.CreateInsight(deps.Ctx, snapshot); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", brandsight.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stderr, "Saved snapshot %s\n", snapshot.ID)
	return nil
}
