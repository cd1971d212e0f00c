package prompt

import (
	"strings"
	"testing"

	"github.com/valpere/sareview/internal"
	"github.com/valpere/sareview/internal/header"
)

func TestSystemCarriesStructureAndBlocklist(t *testing.T) {
	sys := System()

	for _, want := range []string{
		header.CanonicalWellDone,
		header.CanonicalImprove,
		header.CanonicalOverall,
		"Door is a Bore",
		"push-drop",
	} {
		if !strings.Contains(sys, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}

	for _, banned := range []string{"leverage", "synergy", "delve", "Moving forward"} {
		if !strings.Contains(sys, banned) {
			t.Errorf("blocklist missing %q", banned)
		}
	}
}

func TestContextIncludesOnlySuppliedNames(t *testing.T) {
	tests := []struct {
		name    string
		meta    internal.AssessmentMeta
		want    []string
		notWant []string
	}{
		{
			name: "all names",
			meta: internal.AssessmentMeta{StudentName: "Amanda", ClientName: "Natalie", DogName: "Teddy"},
			want: []string{"Student being assessed: Amanda", "Client in the video: Natalie", "Dog's name: Teddy"},
		},
		{
			name:    "student only",
			meta:    internal.AssessmentMeta{StudentName: "Amanda"},
			want:    []string{"Student being assessed: Amanda"},
			notWant: []string{"Client in the video", "Dog's name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Context(tt.meta)
			for _, w := range tt.want {
				if !strings.Contains(ctx, w) {
					t.Errorf("context missing %q: %q", w, ctx)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(ctx, nw) {
					t.Errorf("context should not contain %q: %q", nw, ctx)
				}
			}
		})
	}
}

func TestTranslationPinsHeaders(t *testing.T) {
	for _, lang := range []internal.Language{internal.LanguageFrench, internal.LanguageDutch} {
		instr := Translation(lang, nil)
		if instr == "" {
			t.Fatalf("expected instruction for %s", lang)
		}
		for _, h := range []string{header.CanonicalWellDone, header.CanonicalImprove, header.CanonicalOverall} {
			if !strings.Contains(instr, h) {
				t.Errorf("%s instruction missing pinned header %q", lang, h)
			}
		}
		if !strings.Contains(instr, "DO NOT TRANSLATE THESE SECTION HEADERS") {
			t.Errorf("%s instruction missing header pin", lang)
		}
	}
}

func TestTranslationUnsupportedLanguageEmpty(t *testing.T) {
	if got := Translation(internal.Language("German"), nil); got != "" {
		t.Errorf("expected empty instruction for unsupported language, got %q", got)
	}
}

func TestTranslationGlossaryInjection(t *testing.T) {
	instr := Translation(internal.LanguageFrench, map[string]string{"threshold": "seuil"})
	if !strings.Contains(instr, "threshold = seuil") {
		t.Errorf("glossary term not injected: %q", instr)
	}
	// Fixed dictionary always present.
	if !strings.Contains(instr, "anxiété de séparation") {
		t.Errorf("fixed dictionary missing: %q", instr)
	}
}
