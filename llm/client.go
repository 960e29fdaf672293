// Package llm implements the generative provider boundary: prompt templates,
// provider clients, and strict parsing of the structured JSON replies. A
// missing or malformed reply always surfaces as an error; nothing is
// fabricated on the provider's behalf.
package llm

import (
	"context"
	"errors"
)

// Client is a single-turn completion client for one provider.
type Client interface {
	// Complete sends one prompt and returns the raw model text.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name for logging and metrics.
	Name() string

	// Model returns the model identifier in use.
	Model() string
}

// ErrEmptyResponse is returned when the provider replies without any content.
var ErrEmptyResponse = errors.New("empty response from provider")
