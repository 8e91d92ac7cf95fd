package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/avoronin/trendscout"
)

// systemPrompt fixes the output contract for the synthesis call. The model
// gets no latitude on shape; anything it still gets wrong is handled by the
// repair stage, never by re-asking.
const systemPrompt = "Return ONLY JSON with exactly these keys: idea, local_niches, " +
	"90_day_plan, risks, unit_economics_notes, sources, evidence. " +
	"Local niches must target %s. No text around the JSON."

// SynthesisResult is the raw outcome of one synthesis attempt, pre-repair.
type SynthesisResult struct {
	// Raw is the generator's completion. Empty when Refused is true or the
	// generator failed; the repair stage turns an empty Raw into the local
	// fallback answer.
	Raw string

	// Snippets are the evidence items that backed the attempt.
	Snippets []Snippet

	// Refused is set when the evidence gate blocked generation.
	Refused bool

	// Domains are the distinct source hosts among the snippets.
	Domains []string
}

// Synthesizer retrieves evidence for a query, applies the evidence policy
// and, when the gate passes, invokes the generator exactly once.
type Synthesizer struct {
	Corpus    trendscout.CorpusService
	Generator trendscout.Generator
	Policy    trendscout.EvidencePolicy
	Config    trendscout.Config
	Logger    *slog.Logger
}

// Synthesize runs retrieval, the evidence gate and at most one generation
// call. Only a corpus failure is returned as an error; a generator failure
// degrades to an empty Raw for the repair stage to fill in.
func (s *Synthesizer) Synthesize(ctx context.Context, q trendscout.Query) (*SynthesisResult, error) {
	keywords := ExpandKeywords(q.Domain)

	docs, err := s.Corpus.RecentDocuments(ctx, keywords, s.Config.EvidenceWindowDays)
	if err != nil {
		return nil, err
	}
	// The gate must judge exactly the evidence the prompt will carry, so
	// cap before gating: a second domain beyond the cap cannot vouch for
	// an answer it never backs.
	if len(docs) > s.Config.MaxSnippets {
		docs = docs[:s.Config.MaxSnippets]
	}
	snippets := buildSnippets(docs, s.Config.MaxSnippets, s.Config.SnippetMaxChars)

	ok, domains := s.Policy.Sufficient(docs)
	s.logger().Info("evidence gate",
		"domain", q.Domain,
		"items", len(snippets),
		"unique_domains", domains,
		"sufficient", ok,
	)
	if !ok {
		return &SynthesisResult{Snippets: snippets, Refused: true, Domains: domains}, nil
	}

	raw, err := s.generate(ctx, q, snippets)
	if err != nil {
		s.logger().Warn("generation failed, degrading to local fallback", "error", err)
		raw = ""
	}
	return &SynthesisResult{Raw: raw, Snippets: snippets, Domains: domains}, nil
}

// generate makes the single synthesis call: a system instruction fixing the
// schema and locale, and a user payload carrying the query plus evidence.
func (s *Synthesizer) generate(ctx context.Context, q trendscout.Query, snippets []Snippet) (string, error) {
	payload, err := json.Marshal(struct {
		UserQuery trendscout.Query `json:"user_query"`
		Snippets  []Snippet        `json:"snippets"`
	}{UserQuery: q, Snippets: snippets})
	if err != nil {
		return "", trendscout.Errorf(trendscout.EINTERNAL, "marshal synthesis payload: %v", err)
	}

	msgs := []trendscout.Message{
		{Role: trendscout.RoleSystem, Content: fmt.Sprintf(systemPrompt, s.Config.Location)},
		{Role: trendscout.RoleUser, Content: string(payload)},
	}
	return s.Generator.Generate(ctx, msgs, trendscout.GenStrict)
}

func (s *Synthesizer) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
