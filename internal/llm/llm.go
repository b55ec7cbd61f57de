package llm

import (
	"context"
	"errors"
	"fmt"
)

// Summarizer turns legal-document text into a short summary. Implementations
// are stateless; identical input may still yield different text since the
// underlying model is not byte-deterministic.
type Summarizer interface {
	Summarize(ctx context.Context, documentText string) (string, error)
}

// ErrGeneration wraps any upstream failure during summary generation. The
// document's summary stays unset when it is returned.
var ErrGeneration = errors.New("summary generation failed")

// Placeholder is used when no provider is configured.
type Placeholder struct{}

// Summarize always fails; it exists so dev environments without an API key
// still boot.
func (Placeholder) Summarize(ctx context.Context, documentText string) (string, error) {
	_ = ctx
	_ = documentText
	return "", fmt.Errorf("%w: no LLM provider configured", ErrGeneration)
}
