// Package llm provides interfaces for language model providers.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the provider answers without any text.
var ErrEmptyResponse = errors.New("llm: empty response")

// Request is a single-turn generation request.
type Request struct {
	// System is the instruction block steering the model
	System string

	// Prompt is the user turn
	Prompt string
}

// Provider is an interface for LLM providers
type Provider interface {
	// Generate performs exactly one generation call
	Generate(ctx context.Context, req Request) (string, error)

	// IsConfigured returns true if the provider is properly configured
	IsConfigured() bool
}
