// Package llm provides the uniform client for remote chat-completion
// providers: system/user role separation, token accounting, a typed error
// taxonomy, and transport-level retries.
package llm

import "context"

// Message roles. The system message carries only trusted prompt parts; all
// untrusted content travels in the user message.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes a single completion call.
type Request struct {
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int

	// TimeoutSecs overrides the client's default request timeout when >0
	// (per-model override from the registry).
	TimeoutSecs int
}

// Response is a completed call with usage accounting.
type Response struct {
	Text         string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMS    int64

	// Estimated is true when the provider reported no usage and the token
	// counts come from the word-count heuristic.
	Estimated bool
}

// Client is the completion interface the pipeline executor depends on.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}
