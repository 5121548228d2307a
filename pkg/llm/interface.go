// Package llm defines the interface used to generate chat completions from a
// language model provider.
package llm

import "context"

// Client is the abstraction over the language model used by the chat
// endpoint. Implementations must be safe for concurrent use.
//
//go:generate mockgen -package mockllm -source=interface.go -destination=mock/mockllm.go *
type Client interface {
	// Complete sends the prompt to the model and returns the generated text.
	Complete(ctx context.Context, prompt string) (string, error)
}
