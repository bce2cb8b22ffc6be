// Package ai talks to the analyzer backend's question-answering
// endpoint. A request without a question asks for a summary; with a
// question it asks for a targeted answer.
package ai

import "context"

// Provider abstracts the AI endpoint so services can be tested against
// a fake.
type Provider interface {
	// Answer sends page text and an optional question. An empty
	// question requests a summary of the text.
	Answer(ctx context.Context, text, question string) (string, error)
}
