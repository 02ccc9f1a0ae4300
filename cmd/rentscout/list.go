package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/rentscout"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	listings, err := deps.Listings.FindListings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rentscout.ErrorMessage(err))
		return err
	}

	if len(listings) == 0 {
		fmt.Fprintln(deps.Stdout, "No listings found. Use 'rentscout scrape --save' to add one.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	for _, l := range listings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID, orDash(l.Price), rooms(l), status(l), orDash(l.Address), l.URL)
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func rooms(l *rentscout.Listing) string {
	if l.Bedrooms == "" && l.Bathrooms == "" {
		return "-"
	}
	return fmt.Sprintf("%sbr/%sba", orDash(l.Bedrooms), orDash(l.Bathrooms))
}

func status(l *rentscout.Listing) string {
	if l.HasApplied {
		return "applied"
	}
	return "pending"
}
