package translator

import (
	"context"
	"fmt"
	"time"

	"github.com/valpere/sareview/internal/header"
	"github.com/valpere/sareview/internal/llm"
	"github.com/valpere/sareview/internal/prompt"
)

// LLMService translates through a generative backend. The instruction
// payload pins the canonical headers and carries the per-language
// terminology and style rules; the result is normalized anyway.
type LLMService struct {
	completer llm.Completer
	cfg       llm.ServiceConfig
}

// NewLLMService wraps a generative backend as a translation service.
func NewLLMService(completer llm.Completer, cfg llm.ServiceConfig) *LLMService {
	return &LLMService{completer: completer, cfg: cfg}
}

func (s *LLMService) Name() string {
	return fmt.Sprintf("llm/%s", s.completer.Name())
}

// Translate sends one request with the language instruction prepended to the
// source text, then re-normalizes the headers in the response.
func (s *LLMService) Translate(ctx context.Context, req Request) (*Result, error) {
	result := &Result{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	instruction := prompt.Translation(req.TargetLanguage, req.GlossaryTerms)
	if instruction == "" {
		result.Error = fmt.Sprintf("unsupported target language: %s", req.TargetLanguage)
		return result, fmt.Errorf("unsupported target language: %s", req.TargetLanguage)
	}

	// The translation prompt has always gone out as a single user message,
	// instruction and source text together.
	res, err := s.completer.Complete(ctx, s.cfg, llm.CompleteRequest{
		Prompt: fmt.Sprintf("%s\n\n%s", instruction, req.Text),
	})
	if err != nil {
		result.Error = fmt.Sprintf("translation call failed: %v", err)
		return result, err
	}

	result.TranslatedText = header.Normalize(res.Text)
	return result, nil
}
