package main

import (
	"context"
	"io"
	stdslog "log/slog"

	"github.com/avoronin/trendscout"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *stdslog.Logger
	Corpus    trendscout.CorpusService
	Generator trendscout.Generator
	Ingestor  trendscout.Ingestor
	Config    trendscout.Config
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	RelaxedEvidence bool `help:"Count evidence items instead of distinct domains (testing only)"`

	Ingest IngestCmd `cmd:"" help:"Fetch seed URLs into the corpus"`
	Ask    AskCmd    `cmd:"" help:"Answer a business question from the corpus"`
	Demo   DemoCmd   `cmd:"" help:"Ingest the demo seed list and run a sample query"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	URLs          []string `arg:"" help:"Seed URLs to ingest"`
	CrawlAdjacent bool     `default:"true" negatable:"" help:"Also collect same-host links from each seed"`
	MaxLinks      int      `default:"12" help:"Adjacent links collected per seed"`
	LangHint      string   `default:"ru" help:"Language assumed when detection is inconclusive"`
	Tags          []string `short:"t" help:"Tags stamped onto ingested documents (repeatable)"`
	Concurrency   int      `short:"c" default:"3" help:"Concurrent fetch limit"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Free-text business question"`
	Engine   string `default:"openrouter" enum:"openrouter,gemini" help:"Generation backend"`
}

// DemoCmd is the "demo" subcommand.
type DemoCmd struct {
	Engine string `default:"openrouter" enum:"openrouter,gemini" help:"Generation backend"`
}
