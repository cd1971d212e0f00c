package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/valpere/sareview/internal"
	"github.com/valpere/sareview/internal/header"
)

// headerPin is the shared instruction block pinning the three canonical
// section headers against translation.
var headerPin = fmt.Sprintf(`CRITICAL - DO NOT TRANSLATE THESE SECTION HEADERS. Keep them EXACTLY as-is in English:
- %s
- %s
- %s
Only translate the content underneath each header, not the headers themselves.`,
	header.CanonicalWellDone, header.CanonicalImprove, header.CanonicalOverall)

// FrenchGlossary is the fixed terminology seeded into the glossary store for
// English→French reviews.
var FrenchGlossary = map[string]string{
	"Behavior consultant": "consultant(e) en comportement canin",
	"Separation anxiety":  "anxiété de séparation",
	"Dog trainer":         "Consultant(e) en comportement canin",
	"Dog training":        "Éducation canine",
}

// Translation builds the instruction payload for translating a finished
// review into lang. Extra terminology from the glossary store is appended to
// the fixed dictionary block. An unsupported language yields ""; callers
// treat that as a no-op, not an error.
func Translation(lang internal.Language, glossary map[string]string) string {
	switch lang {
	case internal.LanguageFrench:
		return frenchInstruction(glossary)
	case internal.LanguageDutch:
		return dutchInstruction(glossary)
	default:
		return ""
	}
}

func frenchInstruction(glossary map[string]string) string {
	var sb strings.Builder
	sb.WriteString("You are translating a dog training assessment feedback document from English to French.\n\n")
	sb.WriteString(headerPin)
	sb.WriteString("\n\nFRENCH DICTIONARY - Use these specific terms:\n")
	writeTerms(&sb, FrenchGlossary)
	writeTerms(&sb, glossary)
	sb.WriteString(`
TRANSLATION RULES:
1. Do NOT literally translate idioms - use the French equivalent instead
2. Keep these English expressions as-is: "door is a bore", "FOMO", "hyper-attachement", "push-drop"
3. Use modern, natural French - avoid antiquated expressions
4. Maintain the warm, conversational, colleague-to-colleague tone
5. Keep the educational context of dog training
6. Preserve the exact structure (bullet points, sections) of the original

Translate the following feedback to French:`)
	return sb.String()
}

func dutchInstruction(glossary map[string]string) string {
	var sb strings.Builder
	sb.WriteString("You are translating a dog training assessment feedback document from English to Dutch.\n\n")
	sb.WriteString(headerPin)
	if len(glossary) > 0 {
		sb.WriteString("\n\nDUTCH DICTIONARY - Use these specific terms:\n")
		writeTerms(&sb, glossary)
	}
	sb.WriteString(`
DUTCH TRANSLATION RULES:
1. Keep these English expressions as-is: "door is a bore", "FOMO", "push-drop"
2. Use "je/jij" (informal) not "u" (formal) - keep it warm and collegial
3. Avoid literal translations of English idioms - use natural Dutch equivalents
4. Watch word order in subordinate clauses (verb goes to end)
5. Use natural Dutch compound words where appropriate
6. Avoid anglicisms where good Dutch alternatives exist (e.g., use "terugkoppeling" not "feedback" if it fits naturally)
7. Keep the warm, conversational, colleague-to-colleague tone
8. Use modern Dutch - avoid stiff or formal phrasing
9. "Separation anxiety" = "verlatingsangst" or "scheidingsangst"
10. Be careful with false friends (e.g., "eventually" is not "eventueel")
11. Preserve the exact structure (bullet points, sections) of the original

Translate the following feedback to Dutch:`)
	return sb.String()
}

// writeTerms emits a sorted "- src = tgt" line per glossary entry so the
// instruction text is stable across runs.
func writeTerms(sb *strings.Builder, terms map[string]string) {
	keys := make([]string, 0, len(terms))
	for k := range terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(sb, "- %s = %s\n", k, terms[k])
	}
}
