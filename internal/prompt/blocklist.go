package prompt

import "strings"

// wordsToAvoid is the vocabulary blocklist embedded verbatim in the style
// prompt. The reviewers maintain this list; additions go at the end of the
// relevant line.
var wordsToAvoid = []string{
	"resonate", "captivating", "immersive", "inspiring", "passionate", "meaningful", "impactful", "heartfelt",
	"authentic", "genuine", "magical", "transcendent", "amazing", "enlightening", "extraordinary", "phenomenal",
	"profound", "disrupt", "blockchain", "AI-powered", "machine learning", "neural", "algorithm", "interface",
	"user-centric", "actionable", "data-driven", "cloud-native", "agile", "state-of-the-art", "innovative",
	"groundbreaking", "game-changing", "disruptive", "paradigm shifting", "bandwidth", "deliverables",
	"value proposition", "stakeholders", "alignment", "strategic", "mission-critical", "core competency",
	"visibility", "incentivize", "ownership", "value-add", "leverage", "utilize", "synergy", "blueprint", "boost",
	"transform", "transformative", "bespoke", "curated", "premium", "exclusive", "elite", "lifestyle", "mindshare",
	"trending", "viral", "organic", "artisanal", "handcrafted", "iconic", "indispensable", "unique", "unprecedented",
	"flourish", "skyrocket", "methodology", "framework", "paradigm", "conceptualize", "contextualize", "synthesize",
	"operationalize", "fundamentally", "inherently", "ultimately", "essentially", "delve", "discover", "explore",
	"craft", "deep dive", "dive in", "disruption", "unicorn", "moonshot", "growth hacking", "bleeding edge", "pivot",
	"MVP", "scale", "ideate", "iteration", "lean", "empower", "unleash", "unlock", "Moving forward", "That being said",
	"In terms of", "With that in mind", "To be honest", "The fact of the matter is", "At this point in time",
	"When all is said and done", "The reality is", "In my experience", "instinct", "gut", "shedding", "evoke",
	"enthusiast", "aim", "literally",
}

// Blocklist returns the forbidden vocabulary as a single comma-separated
// string, ready to embed in the system prompt.
func Blocklist() string {
	return strings.Join(wordsToAvoid, ", ")
}
