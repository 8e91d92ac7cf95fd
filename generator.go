package trendscout

import "context"

// Message roles understood by generators.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one role-tagged entry of a generation request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenParams are the sampling parameters for a single generation call.
type GenParams struct {
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// Generation presets. Strict is used for synthesis where the output must be
// machine-parseable; Friendly for intake where tone matters more than shape.
var (
	GenDefault  = GenParams{MaxTokens: 1100, Temperature: 0.2, TopP: 0.9}
	GenStrict   = GenParams{MaxTokens: 900, Temperature: 0.1, TopP: 0.9}
	GenFriendly = GenParams{MaxTokens: 900, Temperature: 0.6, TopP: 0.95}
)

// StubCompletion is the fixed text a Generator returns when the external
// capability is unavailable (e.g., no credential configured). Callers treat
// it as just another raw text for the repair stage to normalize.
const StubCompletion = `{"stub": true}`

// Generator produces a single free-form text completion for a list of
// role-tagged messages. Implementations must not retry; failure handling
// belongs to the caller's repair stage.
type Generator interface {
	Generate(ctx context.Context, msgs []Message, p GenParams) (string, error)
}
