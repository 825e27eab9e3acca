// Package analyzer turns journal text into metrics, insights and suggestions
// by asking a chat-completion model, and aggregates batches of such
// analyses.
package analyzer

import (
	"context"
	"errors"
)

var (
	// ErrMissingCredential is returned when no provider credential is configured.
	ErrMissingCredential = errors.New("OpenAI API key not found")
	// ErrProvider wraps failures of the completion call itself.
	ErrProvider = errors.New("analysis failed")
	// ErrNoResults is returned when no entry of a batch could be analyzed.
	ErrNoResults = errors.New("no valid analysis results obtained")
)

// Provider completes a system/user prompt pair and returns the raw text the
// model produced.
type Provider interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, system, user string) (string, error)

// Complete calls f.
func (f ProviderFunc) Complete(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}
