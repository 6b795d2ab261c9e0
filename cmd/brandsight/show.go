package main

import (
	"encoding/json"
	"fmt"

	"brandsight"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	insight, err := deps.Insights.FindInsightByID(deps.Ctx, c.ID)
	if err != nil {
		if brandsight.ErrorCode(err) == brandsight.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: insight %q not found. Use 'brandsight list' to see stored snapshots.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", brandsight.ErrorMessage(err))
		}
		return err
	}

	out, err := json.MarshalIndent(insight, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode insight: %w", err)
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
