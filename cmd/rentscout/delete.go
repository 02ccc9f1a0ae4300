package main

import (
	"fmt"

	"github.com/fwojciec/rentscout"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return rentscout.Errorf(rentscout.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Listings.DeleteListing(deps.Ctx, c.ID); err != nil {
		if rentscout.ErrorCode(err) == rentscout.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: listing %q not found. Use 'rentscout list' to see saved listings.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", rentscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted listing %s\n", c.ID)
	return nil
}
