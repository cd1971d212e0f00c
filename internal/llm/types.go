// Package llm provides the generative-text backends used for feedback
// synthesis and translation. Each backend is a thin request/response client:
// one system instruction, one user message, one text payload back. No
// retries, no streaming.
package llm

import (
	"context"
	"time"
)

// ServiceConfig carries the per-call settings shared by every backend.
type ServiceConfig struct {
	APIKey    string        `mapstructure:"api_key" json:"api_key"`
	Model     string        `mapstructure:"model" json:"model"`
	BaseURL   string        `mapstructure:"base_url" json:"base_url"`
	MaxTokens int           `mapstructure:"max_tokens" json:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout" json:"timeout"`
}

// CompleteRequest is a single generation request. System may be empty (the
// translation calls put everything into the user prompt, matching how the
// tool has always prompted).
type CompleteRequest struct {
	System string `json:"system"`
	Prompt string `json:"prompt"`
}

// Result is the outcome of one generation call. Error mirrors the returned
// error for persistence alongside the text.
type Result struct {
	ServiceName string            `json:"service_name"`
	Text        string            `json:"text"`
	Model       string            `json:"model"`
	Metadata    map[string]string `json:"metadata"`
	Latency     time.Duration     `json:"latency"`
	Error       string            `json:"error,omitempty"`
}

// Completer is a generative text service.
type Completer interface {
	Name() string
	Complete(ctx context.Context, cfg ServiceConfig, req CompleteRequest) (*Result, error)
	IsAvailable(ctx context.Context) error
}
