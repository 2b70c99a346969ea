package parser

import "context"

type CompletionParams struct {
	Temperature float32
	MaxTokens   int
}

// Client is the narrow surface the pipeline needs from an LLM backend.
type Client interface {
	Complete(ctx context.Context, system, user string, params CompletionParams) (string, error)
}
