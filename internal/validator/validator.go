// Package validator checks that a translated review actually came back in
// the requested language. The generative service occasionally returns the
// English source untouched, or a mix; a detection mismatch is surfaced as a
// warning, never a hard failure.
package validator

import (
	"fmt"
	"strings"

	lingua "github.com/pemistahl/lingua-go"

	"github.com/valpere/sareview/internal"
)

// minValidationLength is the minimum rune count required to attempt language
// detection. Shorter texts produce unreliable results and are accepted
// without validation.
const minValidationLength = 20

// Validator detects the language of translated review text. The underlying
// detector is expensive to build; reuse the instance.
type Validator struct {
	det lingua.LanguageDetector
}

// New creates a Validator restricted to the languages a review can be in.
func New() *Validator {
	det := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.French, lingua.Dutch).
		Build()
	return &Validator{det: det}
}

// expected maps a review target language to its lingua code.
func expected(lang internal.Language) (lingua.Language, bool) {
	switch lang {
	case internal.LanguageFrench:
		return lingua.French, true
	case internal.LanguageDutch:
		return lingua.Dutch, true
	}
	return lingua.Unknown, false
}

// IsValid returns true when translatedText appears to be written in lang.
//
// Short texts and texts whose language cannot be determined pass without
// error. The canonical section headers stay English by design, so detection
// runs on the text with those lines removed.
func (v *Validator) IsValid(translatedText string, lang internal.Language) (bool, error) {
	want, ok := expected(lang)
	if !ok {
		return true, nil
	}

	text := strings.TrimSpace(stripHeaderLines(translatedText))
	if text == "" {
		return false, fmt.Errorf("translation is empty")
	}
	if len([]rune(text)) < minValidationLength {
		return true, nil
	}

	detected, ok := v.det.DetectLanguageOf(text)
	if !ok {
		// Ambiguous language, cannot validate. Pass through.
		return true, nil
	}

	if detected != want {
		return false, fmt.Errorf("expected %s but detected %s", want, detected)
	}
	return true, nil
}

// stripHeaderLines drops bold-marked lines so the pinned English headers do
// not skew detection toward English.
func stripHeaderLines(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
