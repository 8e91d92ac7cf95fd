package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/avoronin/trendscout"
	"github.com/google/uuid"
)

// Orchestrator wires the pipeline end to end: intake, pre-validation,
// retrieval/synthesis, repair. It also fronts ingestion so the CLI layer
// has exactly two boundary calls.
type Orchestrator struct {
	Intake      *Intake
	Synthesizer *Synthesizer
	Repairer    *Repairer
	Ingestor    trendscout.Ingestor

	Config trendscout.Config
	Logger *slog.Logger
}

// Ingest loads the seed URLs into the corpus.
func (o *Orchestrator) Ingest(ctx context.Context, seeds []string, opts trendscout.IngestOptions) (int, error) {
	runID := uuid.NewString()
	o.logger().Info("ingest run started", "run_id", runID, "seeds", len(seeds))

	added, err := o.Ingestor.Ingest(ctx, seeds, opts)
	if err != nil {
		return added, err
	}
	o.logger().Info("ingest run finished", "run_id", runID, "added", added)
	return added, nil
}

// Answer processes one free-text query under the configured wall-clock
// budget. If the budget expires before the pipeline finishes, the
// documented timeout fallback is returned instead of the generation
// result. Only a corpus failure is returned as an error.
func (o *Orchestrator) Answer(ctx context.Context, text string) (trendscout.Answer, error) {
	budget := o.Config.QueryBudget
	if budget <= 0 {
		budget = trendscout.DefaultConfig().QueryBudget
	}
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	runID := uuid.NewString()
	start := time.Now()

	type outcome struct {
		answer trendscout.Answer
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		answer, err := o.answer(ctx, runID, text)
		done <- outcome{answer, err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			// A failure caused by the expiring budget is a timeout, not
			// a storage error.
			if ctx.Err() != nil {
				o.logger().Warn("query budget exhausted", "run_id", runID, "budget", budget)
				return trendscout.TimeoutFallback(), nil
			}
			return trendscout.Answer{}, out.err
		}
		o.logger().Info("query finished", "run_id", runID, "elapsed", time.Since(start))
		return out.answer, nil
	case <-ctx.Done():
		o.logger().Warn("query budget exhausted", "run_id", runID, "budget", budget)
		return trendscout.TimeoutFallback(), nil
	}
}

func (o *Orchestrator) answer(ctx context.Context, runID, text string) (trendscout.Answer, error) {
	q := o.Intake.Run(ctx, text)
	o.logger().Info("query normalized",
		"run_id", runID,
		"domain", q.Domain,
		"location", q.Location,
	)

	res, err := o.Synthesizer.Synthesize(ctx, q)
	if err != nil {
		return trendscout.Answer{}, err
	}
	if res.Refused {
		return trendscout.Refusal(), nil
	}
	return o.Repairer.Repair(res.Raw, q, res.Snippets), nil
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
