package main

import (
	"fmt"

	"github.com/avoronin/trendscout"
)

// demoSeeds are Russian startup and retail news sources.
var demoSeeds = []string{
	"https://habr.com/ru/hub/startups/",
	"https://rb.ru/tag/startapy/",
	"https://rb.ru/tag/horeca/",
	"https://www.retail.ru/",
	"https://restoran.ru/news/",
}

const demoQuestion = "Sphere: coffee shop; city: Moscow; details: subscriptions and business lunches for office parks"

// Run executes the demo command: ingest the seed list, then answer a
// sample query over the fresh corpus.
func (c *DemoCmd) Run(deps *Dependencies) error {
	orch := newOrchestrator(deps)

	added, err := orch.Ingest(deps.Ctx, demoSeeds, trendscout.IngestOptions{
		CrawlAdjacent: true,
		MaxLinks:      12,
		Tags:          []string{"startup", "trend"},
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendscout.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Ingested %d new documents.\n", added)

	answer, err := orch.Answer(deps.Ctx, demoQuestion)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendscout.ErrorMessage(err))
		return err
	}
	return printAnswer(deps, answer)
}
