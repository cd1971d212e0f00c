package feedback

import (
	"reflect"
	"testing"
)

func TestParseBulletStripping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "dash marker with bold markup",
			input:    "- **Nice work** on timing",
			expected: "Nice work on timing",
		},
		{
			name:     "unicode bullet marker",
			input:    "• Calm handling throughout",
			expected: "Calm handling throughout",
		},
		{
			name:     "asterisk marker",
			input:    "* Good use of the form",
			expected: "Good use of the form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Parse(tt.input)
			if len(blocks) != 1 {
				t.Fatalf("expected 1 block, got %d", len(blocks))
			}
			if blocks[0].Kind != KindBullet {
				t.Errorf("expected KindBullet, got %v", blocks[0].Kind)
			}
			if blocks[0].Text != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, blocks[0].Text)
			}
		})
	}
}

func TestParseOverallInlineContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "colon after bold marks", input: "**Overall**: Great session overall!"},
		{name: "colon inside bold marks", input: "**Overall:** Great session overall!"},
	}

	want := []Block{
		{Kind: KindSpacer, Section: SectionOverall},
		{Kind: KindHeading, Section: SectionOverall, Text: "Overall"},
		{Kind: KindBody, Section: SectionOverall, Text: "Great session overall!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Parse(tt.input)
			if !reflect.DeepEqual(blocks, want) {
				t.Errorf("got %+v, want %+v", blocks, want)
			}
		})
	}
}

func TestParseOverallBareColon(t *testing.T) {
	// Colon with nothing after it emits no body paragraph.
	blocks := Parse("**Overall**:")
	if len(blocks) != 2 {
		t.Fatalf("expected spacer+heading only, got %+v", blocks)
	}
}

func TestParseOverallPrefixWithoutBold(t *testing.T) {
	blocks := Parse("Overall\nSolid session.")

	want := []Block{
		{Kind: KindSpacer, Section: SectionOverall},
		{Kind: KindHeading, Section: SectionOverall, Text: "Overall"},
		{Kind: KindBody, Section: SectionOverall, Text: "Solid session."},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("got %+v, want %+v", blocks, want)
	}
}

func TestParseDropsProseOutsideOverall(t *testing.T) {
	input := "Stray intro sentence.\n" +
		"**What you did well**\n" +
		"An explanatory line the model added.\n" +
		"- A real bullet\n"

	blocks := Parse(input)

	want := []Block{
		{Kind: KindHeading, Section: SectionWell, Text: "What you did well"},
		{Kind: KindBullet, Section: SectionWell, Text: "A real bullet"},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("got %+v, want %+v", blocks, want)
	}
}

func TestParseSkipsHashLinesInOverall(t *testing.T) {
	blocks := Parse("**Overall**\n# not a paragraph\nReal summary.")

	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %+v", blocks)
	}
	if blocks[2].Text != "Real summary." {
		t.Errorf("expected hash line skipped, got %+v", blocks)
	}
}

func TestParseBlankLinesSkipped(t *testing.T) {
	blocks := Parse("\n\n**What you did well**\n\n- a\n\n")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %+v", blocks)
	}
}

func TestParseEndToEndScenario(t *testing.T) {
	input := "**What you did well**\n" +
		"- Nice work reassuring the client at the start.\n" +
		"**What you could do differently next time**\n" +
		"- Try to slow down the ending.\n" +
		"**Overall**\n" +
		"Solid session with room to tighten pacing.\n"

	blocks := Parse(input)

	want := []Block{
		{Kind: KindHeading, Section: SectionWell, Text: "What you did well"},
		{Kind: KindBullet, Section: SectionWell, Text: "Nice work reassuring the client at the start."},
		{Kind: KindSpacer, Section: SectionImprove},
		{Kind: KindHeading, Section: SectionImprove, Text: "What you could do differently next time"},
		{Kind: KindBullet, Section: SectionImprove, Text: "Try to slow down the ending."},
		{Kind: KindSpacer, Section: SectionOverall},
		{Kind: KindHeading, Section: SectionOverall, Text: "Overall"},
		{Kind: KindBody, Section: SectionOverall, Text: "Solid session with room to tighten pacing."},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("got %+v, want %+v", blocks, want)
	}
}
