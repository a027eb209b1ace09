package llm

import (
	"context"
)

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// TextProvider defines the contract for any text-generation backend.
// Implementations must return an error rather than blocking past their
// configured timeout; callers treat every error as a signal to fall back.
type TextProvider interface {
	// Generate sends a single prompt to the model and returns the raw reply.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
