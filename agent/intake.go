package agent

import (
	"context"
	"log/slog"
	"strings"

	"github.com/avoronin/trendscout"
)

// intakePrompt asks the model to structure free text into a query object.
const intakePrompt = `Return JSON {"domain":"...","location":"...","details":"..."} ` +
	"with no text around it. Default location is %LOCATION%."

// intakeDomainLimit bounds the fallback domain guess taken verbatim from
// the user's text.
const intakeDomainLimit = 40

// Intake turns free text into a normalized Query. The generator structures
// the text; if it fails or returns garbage, the raw text itself becomes the
// domain guess.
type Intake struct {
	Generator trendscout.Generator
	Location  string
	Logger    *slog.Logger
}

// Run extracts a Query from raw free text and applies the pre-validation
// defaults. It never fails: any generator or parse problem falls back to a
// query built from the text itself.
func (in *Intake) Run(ctx context.Context, raw string) trendscout.Query {
	location := in.Location
	if location == "" {
		location = trendscout.DefaultLocation
	}

	msgs := []trendscout.Message{
		{Role: trendscout.RoleSystem, Content: strings.ReplaceAll(intakePrompt, "%LOCATION%", location)},
		{Role: trendscout.RoleUser, Content: raw},
	}

	var q trendscout.Query
	completion, err := in.Generator.Generate(ctx, msgs, trendscout.GenFriendly)
	if err == nil {
		obj := parseObject(completion)
		if obj != nil {
			q = trendscout.Query{
				Domain:   asString(obj["domain"]),
				Location: asString(obj["location"]),
				Details:  asString(obj["details"]),
			}
		}
	} else if in.Logger != nil {
		in.Logger.Warn("intake generation failed", "error", err)
	}

	if q.Domain == "" {
		q.Domain = fallbackDomain(raw)
	}
	if q.Location == "" {
		q.Location = location
	}
	return q.Normalize()
}

// fallbackDomain guesses a domain from the raw text: trimmed and capped.
func fallbackDomain(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if runes := []rune(trimmed); len(runes) > intakeDomainLimit {
		return string(runes[:intakeDomainLimit])
	}
	return trimmed
}
