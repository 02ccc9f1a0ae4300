package main

import (
	"fmt"

	"github.com/fwojciec/rentscout"
	rshttp "github.com/fwojciec/rentscout/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	opts := []rshttp.ServerOption{
		rshttp.WithMaxConcurrent(c.MaxConcurrent),
		rshttp.WithRateLimit(c.Rate, c.Burst),
	}
	if deps.Logger != nil {
		opts = append(opts, rshttp.WithLogger(deps.Logger))
	}
	srv := rshttp.NewServer(deps.Scraper, deps.Listings, opts...)

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)
	if err := srv.ListenAndServe(deps.Ctx, c.Addr); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rentscout.ErrorMessage(err))
		return err
	}
	return nil
}
