package review

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/valpere/sareview/internal"
	"github.com/valpere/sareview/internal/llm"
)

type fakeCompleter struct {
	calls    int
	lastReq  llm.CompleteRequest
	response string
	err      error
}

func (f *fakeCompleter) Name() string { return "fake" }

func (f *fakeCompleter) Complete(ctx context.Context, cfg llm.ServiceConfig, req llm.CompleteRequest) (*llm.Result, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return &llm.Result{ServiceName: "fake", Error: f.err.Error()}, f.err
	}
	return &llm.Result{ServiceName: "fake", Text: f.response}, nil
}

func (f *fakeCompleter) IsAvailable(ctx context.Context) error { return nil }

func TestSynthesize_ValidatesBeforeCalling(t *testing.T) {
	tests := []struct {
		name    string
		meta    internal.AssessmentMeta
		notes   string
		field   string
	}{
		{
			name:  "missing student name",
			meta:  internal.AssessmentMeta{},
			notes: "some notes",
			field: "student_name",
		},
		{
			name:  "whitespace student name",
			meta:  internal.AssessmentMeta{StudentName: "   "},
			notes: "some notes",
			field: "student_name",
		},
		{
			name:  "missing notes",
			meta:  internal.AssessmentMeta{StudentName: "Amanda"},
			notes: "",
			field: "raw_notes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCompleter{response: "feedback"}
			svc := New(fake, llm.ServiceConfig{}, nil)

			_, err := svc.Synthesize(context.Background(), tt.meta, tt.notes)

			var verr *internal.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, verr.Field)
			}
			if fake.calls != 0 {
				t.Errorf("expected zero external calls, got %d", fake.calls)
			}
		})
	}
}

func TestSynthesize_SendsSystemAndContext(t *testing.T) {
	fake := &fakeCompleter{response: "**What you did well**\n- Nice."}
	svc := New(fake, llm.ServiceConfig{}, nil)

	meta := internal.AssessmentMeta{StudentName: "Amanda Dwyer", ClientName: "Natalie", DogName: "Teddy"}
	out, err := svc.Synthesize(context.Background(), meta, "Nice work reassuring the client.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "**What you did well**\n- Nice." {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(fake.lastReq.System, "SA Pro Trainer certification") {
		t.Error("system prompt missing")
	}
	if !strings.Contains(fake.lastReq.Prompt, "Student being assessed: Amanda Dwyer") {
		t.Error("context block missing from prompt")
	}
	if !strings.Contains(fake.lastReq.Prompt, "Nice work reassuring the client.") {
		t.Error("raw notes missing from prompt")
	}
}

func TestSynthesize_ServiceErrorPropagates(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("API returned status 500")}
	svc := New(fake, llm.ServiceConfig{}, nil)

	_, err := svc.Synthesize(context.Background(), internal.AssessmentMeta{StudentName: "A"}, "notes")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "feedback generation failed") {
		t.Errorf("expected wrapped service error, got %v", err)
	}
}

func TestTranslate_UnsupportedLanguageNoOp(t *testing.T) {
	fake := &fakeCompleter{response: "should never appear"}
	svc := New(fake, llm.ServiceConfig{}, nil)

	text := "**What you did well**\n- Unchanged."
	out, err := svc.Translate(context.Background(), text, internal.Language("German"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != text {
		t.Errorf("expected input unchanged, got %q", out)
	}
	if fake.calls != 0 {
		t.Errorf("expected zero external calls, got %d", fake.calls)
	}
}

func TestTranslate_SupportedLanguageNormalized(t *testing.T) {
	fake := &fakeCompleter{response: "**Points forts**\n- Bien."}
	svc := New(fake, llm.ServiceConfig{}, nil)

	out, err := svc.Translate(context.Background(), "**What you did well**\n- Good.", internal.LanguageFrench, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "**What you did well**") {
		t.Errorf("expected normalized header, got %q", out)
	}
	if fake.calls != 1 {
		t.Errorf("expected one external call, got %d", fake.calls)
	}
}
