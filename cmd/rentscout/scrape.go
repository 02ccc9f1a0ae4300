package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/rentscout"
	"golang.org/x/sync/errgroup"
)

// scrapeOutput is the JSON line printed for each scraped URL.
type scrapeOutput struct {
	URL      string                      `json:"url"`
	Success  bool                        `json:"success"`
	Data     *rentscout.ExtractionResult `json:"data,omitempty"`
	Fallback *bool                       `json:"fallback,omitempty"`
	ID       string                      `json:"id,omitempty"`
	Error    string                      `json:"error,omitempty"`
}

// Run executes the scrape command. URLs are scraped concurrently and
// printed in argument order, one JSON object per line.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: at least one URL required\n")
		return rentscout.Errorf(rentscout.EINVALID, "at least one URL required")
	}

	outputs := make([]scrapeOutput, len(c.URLs))
	errs := make([]error, len(c.URLs))

	var g errgroup.Group
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}
	for i, u := range c.URLs {
		g.Go(func() error {
			outputs[i], errs[i] = c.scrapeOne(deps, u)
			return nil
		})
	}
	_ = g.Wait()

	enc := json.NewEncoder(deps.Stdout)
	for _, out := range outputs {
		if err := enc.Encode(out); err != nil {
			return err
		}
	}

	var failed int
	var first error
	for _, err := range errs {
		if err != nil {
			failed++
			if first == nil {
				first = err
			}
		}
	}
	if failed > 0 {
		fmt.Fprintf(deps.Stderr, "error: %d of %d listings failed\n", failed, len(c.URLs))
		return first
	}
	return nil
}

func (c *ScrapeCmd) scrapeOne(deps *Dependencies, address string) (scrapeOutput, error) {
	out := scrapeOutput{URL: address}

	result, err := deps.Scraper.ScrapeAndExtract(deps.Ctx, address)
	if err != nil {
		out.Error = rentscout.ErrorMessage(err)
		return out, err
	}
	out.Success = true
	out.Data = result
	out.Fallback = &result.Degraded

	if c.Save {
		listing := rentscout.NewListing(address, result)
		if err := deps.Listings.CreateListing(deps.Ctx, listing); err != nil {
			out.Success = false
			out.Error = rentscout.ErrorMessage(err)
			return out, err
		}
		out.ID = listing.ID
	}
	return out, nil
}
