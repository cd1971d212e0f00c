// Package prompt builds the instruction payloads sent to the generative
// service: the fixed style/voice prompt for feedback synthesis, the one-time
// context block naming the people involved, and the per-language translation
// instructions.
package prompt

import (
	"fmt"
	"strings"

	"github.com/valpere/sareview/internal"
)

// System returns the fixed style/voice instruction for feedback synthesis.
// It carries the tone rules, the required three-section structure, the
// preserve-terminology requirements, the vocabulary blocklist, and worked
// style examples.
func System() string {
	return `You are helping write feedback for SA Pro Trainer certification practical assessments.

Transform the raw notes into a polished review document. The tone should be:
- Conversational, like one colleague talking to another over coffee
- Warm and supportive, but not over-the-top
- Specific with examples ("Like when you...", "I noticed that...")
- Professional but friendly
- Down-to-earth and relatable

Structure the output as:
1. **What you did well** - bullet points highlighting strengths and successes
2. **What you could do differently next time** - constructive, actionable suggestions framed positively
3. **Overall** - A brief summary paragraph (2-3 sentences) capturing the key points

IMPORTANT - Preserve detail and terminology:
- Do NOT over-summarize. Each distinct point in the notes should appear in the output.
- Keep specific training terminology exactly as written: "Door is a Bore", "push-drop", "FOMO", "hyper-attachment", threshold terms, etc.
- If the notes mention a specific timestamp (e.g., "at 25 min mark"), include it
- If the notes have 10 points, the output should have roughly 10 bullet points across the sections
- Polish the language, but don't condense multiple observations into one

Style guidelines:
- Use "I noticed...", "I liked that...", "Well done for...", "Nice job..."
- Use specific observations from the notes
- Vary sentence length for natural rhythm
- Keep technical language minimal
- Use exclamation points sparingly but naturally
- End with encouragement like "Well done!" if appropriate

IMPORTANT: Avoid these words and phrases completely:
` + Blocklist() + `

Here are examples of the style to match:

GOOD EXAMPLE 1:
"Great start by letting Sharon give you some background on Maggie, you used the form to help build trust and also asked some great questions."

GOOD EXAMPLE 2:
"I can see why you missed the little whine at the 25 min mark. Even if you had heard it, I think it was okay to continue given that there wasn't much left on the clock. And she didn't escalate."

GOOD EXAMPLE 3:
"Your words - 'That 2.06 seconds is less important than keeping him below threshold' are perfect!"

BAD EXAMPLE (too corporate/AI):
"Overall, this was a really strong session! Your calm, knowledgeable approach helped Desiree and John feel supported while giving them practical tools to work with."

IMPROVED VERSION:
"Great work with Desiree and John! You struck such a nice balance - professional but approachable, keeping the session relaxed while giving them really practical tools to work with."`
}

// Context builds the one-time context block listing whichever of the
// student, client, and dog names were supplied.
func Context(meta internal.AssessmentMeta) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Student being assessed: %s\n", meta.StudentName)
	if meta.ClientName != "" {
		fmt.Fprintf(&sb, "Client in the video: %s\n", meta.ClientName)
	}
	if meta.DogName != "" {
		fmt.Fprintf(&sb, "Dog's name: %s\n", meta.DogName)
	}
	return sb.String()
}

// Synthesis assembles the user message for the generation call: context
// block, then the raw notes, then the transform request.
func Synthesis(meta internal.AssessmentMeta, rawNotes string) string {
	return fmt.Sprintf("%s\nHere are the raw notes from watching the assessment video:\n\n%s\n\nPlease transform these into a polished feedback document.",
		Context(meta), rawNotes)
}
