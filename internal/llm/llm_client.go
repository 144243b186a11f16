package llm

import "context"

type CompletionClient interface {
	Ping(ctx context.Context) error
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
