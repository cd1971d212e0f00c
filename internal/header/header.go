// Package header keeps the three canonical section headers of a review
// document stable regardless of output language.
//
// The generative service is told not to translate the headers, but it
// sometimes does anyway. Rather than trust the model, Normalize runs a
// deterministic pass over the text and rewrites any recognized translated
// variant back to the exact English string the document parser depends on.
package header

import (
	"regexp"
	"strings"
)

// ID identifies one of the three required review sections, in document order.
type ID int

const (
	WellDone ID = iota
	Improve
	Overall
)

// Canonical section header strings, bold-marked as they appear in the
// generated text. The document parser matches on these exact strings.
const (
	CanonicalWellDone = "**What you did well**"
	CanonicalImprove  = "**What you could do differently next time**"
	CanonicalOverall  = "**Overall**"
)

// ids fixes the order in which headers are normalized.
var ids = []ID{WellDone, Improve, Overall}

// Canonical returns the canonical header string for id.
func Canonical(id ID) string {
	switch id {
	case WellDone:
		return CanonicalWellDone
	case Improve:
		return CanonicalImprove
	case Overall:
		return CanonicalOverall
	}
	return ""
}

// Label returns the plain heading text (without bold markers) rendered into
// the final document for id.
func Label(id ID) string {
	return strings.Trim(Canonical(id), "*")
}

// Normalize rewrites translated header variants in text back to their
// canonical English form.
//
// For each header, in fixed order: if the canonical string already occurs
// verbatim the header is skipped (never double-substituted). Otherwise each
// registered pattern is tried in order and the first match anywhere in the
// text is replaced (first occurrence only) with the canonical string. A
// header with no matching pattern is left untouched; downstream parsing may
// then miss that section, which is an accepted degraded mode.
//
// Normalize is pure and idempotent.
func Normalize(text string) string {
	for _, id := range ids {
		canonical := Canonical(id)
		if strings.Contains(text, canonical) {
			continue
		}
		for _, re := range Patterns(id) {
			if loc := re.FindStringIndex(text); loc != nil {
				text = text[:loc[0]] + canonical + text[loc[1]:]
				break
			}
		}
	}
	return text
}

// compile builds a case-insensitive pattern. Panics at init on a bad
// expression, the same way regexp.MustCompile does.
func compile(expr string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + expr)
}
