package main

import (
	"fmt"

	"github.com/fwojciec/rentscout"
	"github.com/fwojciec/rentscout/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	listings, err := deps.Listings.FindListings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rentscout.ErrorMessage(err))
		return err
	}

	w := fs.NewWriter(c.Dir)
	for _, l := range listings {
		if err := w.WriteListing(deps.Ctx, l); err != nil {
			fmt.Fprintf(deps.Stderr, "error: exporting %s: %s\n", l.ID, rentscout.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d listings to %s\n", len(listings), c.Dir)
	return nil
}
