package main

import (
	"fmt"

	"github.com/avoronin/trendscout"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	orch := newOrchestrator(deps)

	added, err := orch.Ingest(deps.Ctx, c.URLs, trendscout.IngestOptions{
		CrawlAdjacent: c.CrawlAdjacent,
		MaxLinks:      c.MaxLinks,
		Tags:          c.Tags,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Ingested %d new documents.\n", added)
	return nil
}
