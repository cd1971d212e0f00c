// Package placeholder protects content that must survive machine
// translation byte-for-byte, the three canonical section headers and the
// training terminology the certification program uses verbatim, by
// replacing it with numbered markers ([PH0], [PH1], ...) before the text is
// sent to a backend that cannot follow written instructions. After
// translation, Restore substitutes the markers back.
package placeholder

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/valpere/sareview/internal/header"
)

var (
	// canonical header lines, longest strings first so Improve is not
	// clipped by a shorter partial match
	protectedHeaders = []string{
		header.CanonicalImprove,
		header.CanonicalWellDone,
		header.CanonicalOverall,
	}

	// training terminology kept as-is in every target language
	protectedTerms = []string{
		"Door is a Bore",
		"door is a bore",
		"push-drop",
		"hyper-attachment",
		"FOMO",
	}

	// placeholder reference in translated text
	rePlaceholder = regexp.MustCompile(`\[PH(\d+)\]`)
)

// Protect replaces the canonical headers and preserved terminology with
// numbered placeholders [PH0], [PH1], … in the order they appear in the
// protection list. It returns the modified text and the slice of captured
// originals so Restore can put them back.
func Protect(text string) (string, []string) {
	var markers []string

	protect := func(s, literal string) string {
		for strings.Contains(s, literal) {
			id := fmt.Sprintf("[PH%d]", len(markers))
			markers = append(markers, literal)
			s = strings.Replace(s, literal, id, 1)
		}
		return s
	}

	// Headers first: they contain spaces and capitals that term matching
	// must not see.
	for _, h := range protectedHeaders {
		text = protect(text, h)
	}
	for _, term := range protectedTerms {
		text = protect(text, term)
	}

	return text, markers
}

// Restore substitutes [PHn] markers in text back with the originals captured
// by Protect. Unrecognised indices leave the placeholder as-is.
func Restore(text string, markers []string) string {
	return rePlaceholder.ReplaceAllStringFunc(text, func(match string) string {
		sub := rePlaceholder.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}
		idx := 0
		fmt.Sscanf(sub[1], "%d", &idx)
		if idx < 0 || idx >= len(markers) {
			return match
		}
		return markers[idx]
	})
}

// Validate checks whether all markers that were created by Protect are still
// present in the translated text. It returns the list of missing indices.
func Validate(text string, markers []string) []int {
	var missing []int
	for i := range markers {
		if !strings.Contains(text, fmt.Sprintf("[PH%d]", i)) {
			missing = append(missing, i)
		}
	}
	return missing
}
