package llm

import (
	"context"
	"errors"
)

// ErrUnsupportedAttachment is returned by providers that cannot read a given
// attachment media type.
var ErrUnsupportedAttachment = errors.New("llm: attachment media type not supported by provider")

// Attachment is a document sent alongside a message (payslip scan or PDF).
type Attachment struct {
	MediaType string // "application/pdf", "image/jpeg", "image/png", ...
	Data      []byte
}

// IsPDF reports whether the attachment is a PDF document.
func (a Attachment) IsPDF() bool {
	return a.MediaType == "application/pdf"
}

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role        string // "user", "assistant"
	Content     string
	Attachments []Attachment
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
	System      string
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

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithSystem sets the system prompt.
func WithSystem(prompt string) Option {
	return func(o *Options) {
		o.System = prompt
	}
}

// Apply folds opts over defaults.
func Apply(defaults Options, opts ...Option) Options {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
