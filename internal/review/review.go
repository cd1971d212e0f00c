// Package review wires the pieces of one review cycle together: validate
// the form input, synthesize polished feedback from raw notes, and dispatch
// translation requests.
package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/valpere/sareview/internal"
	"github.com/valpere/sareview/internal/llm"
	"github.com/valpere/sareview/internal/prompt"
	"github.com/valpere/sareview/internal/translator"
)

// Service runs generation and translation cycles against a configured
// generative backend. Each call is blocking and replaces nothing on failure;
// callers keep their prior draft.
type Service struct {
	completer  llm.Completer
	cfg        llm.ServiceConfig
	translator translator.Service
}

// New builds a review service. When trans is nil, translation goes through
// the same generative backend as synthesis.
func New(completer llm.Completer, cfg llm.ServiceConfig, trans translator.Service) *Service {
	if trans == nil {
		trans = translator.NewLLMService(completer, cfg)
	}
	return &Service{completer: completer, cfg: cfg, translator: trans}
}

// Synthesize turns raw assessment notes into a polished feedback draft.
// Required fields are checked before any external call: a missing student
// name or empty notes fails locally with a field-specific error.
func (s *Service) Synthesize(ctx context.Context, meta internal.AssessmentMeta, rawNotes string) (string, error) {
	if strings.TrimSpace(meta.StudentName) == "" {
		return "", internal.NewValidationError("student_name", "please enter the student's name")
	}
	if strings.TrimSpace(rawNotes) == "" {
		return "", internal.NewValidationError("raw_notes", "please enter your raw notes")
	}

	res, err := s.completer.Complete(ctx, s.cfg, llm.CompleteRequest{
		System: prompt.System(),
		Prompt: prompt.Synthesis(meta, rawNotes),
	})
	if err != nil {
		return "", fmt.Errorf("feedback generation failed: %w", err)
	}
	return res.Text, nil
}

// Translate converts a finished draft into the target language. Any
// unrecognized language is an explicit no-op: the input comes back unchanged
// and no external call is made.
func (s *Service) Translate(ctx context.Context, text string, lang internal.Language, glossary map[string]string) (string, error) {
	if !lang.Supported() {
		return text, nil
	}

	res, err := s.translator.Translate(ctx, translator.Request{
		Text:           text,
		TargetLanguage: lang,
		GlossaryTerms:  glossary,
	})
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	return res.TranslatedText, nil
}
