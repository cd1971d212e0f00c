package postprocess

import "testing"

func TestRemoveThinkingBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no thinking blocks",
			input:    "Nice work with the client today.",
			expected: "Nice work with the client today.",
		},
		{
			name:     "simple thinking block",
			input:    "Some text<thinking>Let me structure this</thinking>More text",
			expected: "Some textMore text",
		},
		{
			name:     "reasoning block",
			input:    "Start<reasoning>Weighing the notes</reasoning>End",
			expected: "StartEnd",
		},
		{
			name:     "truncated thinking block (no closing)",
			input:    "<thinking>Drafting in progress",
			expected: "",
		},
		{
			name:     "truncated thinking in middle",
			input:    "Before<thinking>Incomplete",
			expected: "Before",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := removeThinkingBlocks(tt.input)
			if result != tt.expected {
				t.Errorf("removeThinkingBlocks(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRemoveInstructionEchoes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no echo",
			input:    "**What you did well**\n- Good pacing.",
			expected: "**What you did well**\n- Good pacing.",
		},
		{
			name:     "here's the feedback echo",
			input:    "Here's the polished feedback: **What you did well**",
			expected: "**What you did well**",
		},
		{
			name:     "here is your review echo",
			input:    "Here is your review: Content",
			expected: "Content",
		},
		{
			name:     "the translated feedback echo",
			input:    "The translated feedback: Contenu",
			expected: "Contenu",
		},
		{
			name:     "certainly echo",
			input:    "Certainly, here is the feedback: Text",
			expected: "Text",
		},
		{
			name:     "colon required to strip",
			input:    "The feedback was generally positive.",
			expected: "The feedback was generally positive.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := removeInstructionEchoes(tt.input)
			if result != tt.expected {
				t.Errorf("removeInstructionEchoes(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRemoveQuoteWrapping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "double quotes",
			input:    `"Nice session overall."`,
			expected: "Nice session overall.",
		},
		{
			name:     "guillemets",
			input:    "«Bonne séance.»",
			expected: "Bonne séance.",
		},
		{
			name:     "unmatched quotes untouched",
			input:    `"Partial quote`,
			expected: `"Partial quote`,
		},
		{
			name:     "internal quotes untouched",
			input:    `She said "sit" and he did.`,
			expected: `She said "sit" and he did.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := removeQuoteWrapping(tt.input)
			if result != tt.expected {
				t.Errorf("removeQuoteWrapping(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestClean(t *testing.T) {
	input := "<thinking>plan the sections</thinking>Here's the polished feedback: **What you did well**\n- Good start."
	expected := "**What you did well**\n- Good start."

	if got := Clean(input); got != expected {
		t.Errorf("Clean(%q) = %q, want %q", input, got, expected)
	}
}
