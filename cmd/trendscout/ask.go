package main

import (
	"encoding/json"
	"fmt"

	"github.com/avoronin/trendscout"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	orch := newOrchestrator(deps)

	answer, err := orch.Answer(deps.Ctx, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendscout.ErrorMessage(err))
		return err
	}

	return printAnswer(deps, answer)
}

// printAnswer writes the answer as indented JSON.
func printAnswer(deps *Dependencies, answer trendscout.Answer) error {
	data, err := json.MarshalIndent(answer, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}
