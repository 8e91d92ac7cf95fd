// Package slog provides logging decorators for the trendscout interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/avoronin/trendscout"
)

// Ensure LoggingGenerator implements trendscout.Generator.
var _ trendscout.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with call logging.
type LoggingGenerator struct {
	next   trendscout.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next trendscout.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Generate(ctx context.Context, msgs []trendscout.Message, p trendscout.GenParams) (completion string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generation",
			"messages", len(msgs),
			"max_tokens", p.MaxTokens,
			"completion_len", len(completion),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, msgs, p)
}
