// Package llm talks to the completion service used for grading and session
// summaries.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Provider sends one system/user prompt pair and returns the raw text of the
// completion. Callers must not assume the text is valid JSON.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
	ModelID() string
}

type Request struct {
	System string
	User   string

	// JSON asks the provider for its JSON-object output mode.
	JSON bool

	MaxTokens   int
	Temperature float64
}

// ErrNotConfigured is returned by a Disabled provider.
var ErrNotConfigured = errors.New("completion service not configured")

// ErrProviderUnavailable indicates the provider is down, unreachable or
// rejected the request.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the completion did not match what the caller
// asked for.
type ErrInvalidResponse struct {
	Content string
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// Disabled stands in when no API key is configured.
type Disabled struct {
	Reason string
}

func (Disabled) Complete(context.Context, Request) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) ModelID() string { return "disabled" }

// Available reports whether p can serve requests.
func Available(p Provider) bool {
	if p == nil {
		return false
	}
	_, disabled := p.(Disabled)
	return !disabled
}
