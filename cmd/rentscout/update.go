package main

import (
	"fmt"

	"github.com/fwojciec/rentscout"
)

// Run executes the update command.
func (c *UpdateCmd) Run(deps *Dependencies) error {
	var upd rentscout.ListingUpdate
	switch c.Status {
	case "applied":
		v := true
		upd.HasApplied = &v
	case "pending":
		v := false
		upd.HasApplied = &v
	}
	upd.Notes = c.Notes

	if upd.HasApplied == nil && upd.Notes == nil {
		fmt.Fprintf(deps.Stderr, "error: nothing to update. Use --status or --notes\n")
		return rentscout.Errorf(rentscout.EINVALID, "nothing to update")
	}

	listing, err := deps.Listings.UpdateListing(deps.Ctx, c.ID, upd)
	if err != nil {
		if rentscout.ErrorCode(err) == rentscout.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: listing %q not found. Use 'rentscout list' to see saved listings.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", rentscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated listing %s (%s)\n", listing.ID, status(listing))
	return nil
}
