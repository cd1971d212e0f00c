// Package feedback parses the raw text returned by the generative service
// into typed blocks ready for document rendering.
//
// The input is untrusted model output: markdown-ish prose with bold-marked
// section headers and bullet lists. The parser is a small line-by-line state
// machine that never fails; unrecognized lines are silently skipped.
package feedback

import (
	"strings"

	"github.com/valpere/sareview/internal/header"
)

// Kind classifies a parsed block.
type Kind int

const (
	// KindHeading is a canonical section heading.
	KindHeading Kind = iota
	// KindBullet is one bulleted item, marker and bold markup stripped.
	KindBullet
	// KindBody is a plain body paragraph.
	KindBody
	// KindSpacer is an empty paragraph emitted before a new section.
	KindSpacer
)

// Section tracks which logical document section the parser is inside.
type Section int

const (
	SectionNone Section = iota
	SectionWell
	SectionImprove
	SectionOverall
)

// Block is one typed unit of the parsed feedback document.
type Block struct {
	Kind    Kind
	Section Section
	Text    string
}

// bulletMarkers are the list prefixes the generator is known to emit.
var bulletMarkers = []string{"- ", "• ", "* "}

// Parse walks text line by line and returns the ordered block sequence.
//
// Header lines transition the section state and emit the canonical English
// heading regardless of how the header was written in the source. The
// Improve and Overall headings are preceded by a spacer block. An Overall
// header line carrying inline content after a colon also emits that content
// as a body paragraph. Bullet lines are emitted in any section.
//
// Known limitation: non-bulleted prose under the first two sections is
// dropped. The generator is instructed to bullet everything there, so such
// lines are treated as noise rather than content.
func Parse(text string) []Block {
	var blocks []Block
	section := SectionNone

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case isWellDoneLine(line):
			section = SectionWell
			blocks = append(blocks, Block{Kind: KindHeading, Section: section, Text: header.Label(header.WellDone)})

		case isImproveLine(line):
			section = SectionImprove
			blocks = append(blocks,
				Block{Kind: KindSpacer, Section: section},
				Block{Kind: KindHeading, Section: section, Text: header.Label(header.Improve)})

		case isOverallLine(line):
			section = SectionOverall
			blocks = append(blocks,
				Block{Kind: KindSpacer, Section: section},
				Block{Kind: KindHeading, Section: section, Text: header.Label(header.Overall)})
			if idx := strings.Index(line, ":"); idx >= 0 {
				// Strip bold before trimming: "**Overall:** text" leaves the
				// closing marks (and their padding) on the content side.
				if content := strings.TrimSpace(stripBold(line[idx+1:])); content != "" {
					blocks = append(blocks, Block{Kind: KindBody, Section: section, Text: content})
				}
			}

		case bulletMarker(line) != "":
			content := strings.TrimSpace(strings.TrimPrefix(line, bulletMarker(line)))
			blocks = append(blocks, Block{Kind: KindBullet, Section: section, Text: stripBold(content)})

		case section == SectionOverall && !strings.HasPrefix(line, "#"):
			blocks = append(blocks, Block{Kind: KindBody, Section: section, Text: stripBold(line)})
		}
	}

	return blocks
}

func isWellDoneLine(line string) bool {
	return strings.Contains(line, "What you did well")
}

func isImproveLine(line string) bool {
	return strings.Contains(line, "What you could do differently")
}

func isOverallLine(line string) bool {
	return strings.Contains(line, header.CanonicalOverall) || strings.HasPrefix(line, "Overall")
}

func bulletMarker(line string) string {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return m
		}
	}
	return ""
}

func stripBold(s string) string {
	return strings.ReplaceAll(s, "**", "")
}
