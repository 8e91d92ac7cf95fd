package mock

import (
	"context"

	"github.com/avoronin/trendscout"
)

var _ trendscout.Generator = (*Generator)(nil)

// Generator is a mock implementation of trendscout.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, msgs []trendscout.Message, p trendscout.GenParams) (string, error)
}

func (g *Generator) Generate(ctx context.Context, msgs []trendscout.Message, p trendscout.GenParams) (string, error) {
	return g.GenerateFn(ctx, msgs, p)
}
