// Package translator converts a finished English review into a supported
// target language while guaranteeing the canonical section headers survive.
//
// Two backends exist: the LLM backend instructs the model not to translate
// the headers; the Google Cloud Translate backend cannot be instructed, so
// it hides the headers behind placeholders instead. Both pipe their output
// through the header normalizer; translation is never trusted to preserve
// headers unaided.
package translator

import (
	"context"
	"time"

	"github.com/valpere/sareview/internal"
)

// Request is one translation call.
type Request struct {
	Text string `json:"text"`
	// TargetLanguage must be one of the supported review languages;
	// dispatchers short-circuit unsupported values before a Service is
	// ever invoked.
	TargetLanguage internal.Language `json:"target_language"`
	// GlossaryTerms are extra source→target terminology mappings merged
	// into the instruction payload (LLM backend only).
	GlossaryTerms map[string]string `json:"glossary_terms,omitempty"`
}

// Result is the outcome of one translation call.
type Result struct {
	ServiceName    string        `json:"service_name"`
	TranslatedText string        `json:"translated_text"`
	Latency        time.Duration `json:"latency"`
	Error          string        `json:"error,omitempty"`
}

// Service translates review text.
type Service interface {
	Name() string
	Translate(ctx context.Context, req Request) (*Result, error)
}
