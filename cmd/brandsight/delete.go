package main

import (
	"fmt"

	"brandsight"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return brandsight.Errorf(brandsight.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Insights.DeleteInsight(deps.Ctx, c.ID); err != nil {
		if brandsight.ErrorCode(err) == brandsight.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: insight %q not found. Use 'brandsight list' to see stored snapshots.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", brandsight.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted insight %q\n", c.ID)
	return nil
}
