package header

import "regexp"

// Tag names the language a pattern targets. Registering patterns for a new
// language requires no change to Normalize.
type Tag string

const (
	TagFrench Tag = "fr"
	TagDutch  Tag = "nl"
)

// pattern pairs a compiled expression with the language it targets.
type pattern struct {
	tag Tag
	re  *regexp.Regexp
}

// registry holds the ordered pattern list per header. The order alternates
// French and Dutch, most common variants first; it is the try order, so it
// decides which variant wins on text matching several patterns. Patterns
// must tolerate inflectional and regional variants: formal vs. informal
// pronouns (vous/tu, u/je), alternate compound spellings, accent-free
// typing.
var registry = map[ID][]pattern{
	WellDone: {
		{TagFrench, compile(`\*\*Ce que (?:vous avez|tu as) bien fait\*\*`)},
		{TagDutch, compile(`\*\*Wat (?:je|u) goed (?:hebt |heeft )?gedaan\*\*`)},
		{TagFrench, compile(`\*\*(?:Points? forts?|Points? positifs?)\*\*`)},
		{TagDutch, compile(`\*\*Wat ging er goed\*\*`)},
	},
	Improve: {
		{TagFrench, compile(`\*\*Ce que (?:vous pourriez|tu pourrais) faire diff[ée]remment.+?\*\*`)},
		{TagDutch, compile(`\*\*Wat (?:je|u) de volgende keer anders (?:zou(?:dt)? )?kunnen doen\*\*`)},
		{TagFrench, compile(`\*\*(?:Points? [àa] am[ée]liorer|Axes? d.am[ée]lioration).*?\*\*`)},
		{TagDutch, compile(`\*\*Wat (?:je|u) anders (?:zou(?:dt)? )?kunnen doen\*\*`)},
	},
	Overall: {
		{TagFrench, compile(`\*\*(?:En r[ée]sum[ée]|Conclusion|Bilan|Dans l.ensemble|Globalement)\*\*`)},
		{TagDutch, compile(`\*\*(?:Algeheel|Over het geheel|Samenvatting|Algemeen|Totaal)\*\*`)},
	},
}

// Patterns returns the ordered pattern list for a header.
func Patterns(id ID) []*regexp.Regexp {
	var out []*regexp.Regexp
	for _, p := range registry[id] {
		out = append(out, p.re)
	}
	return out
}

// Register appends patterns for a header in the given language. Appended
// patterns are tried after the built-in ones. Intended for extending
// coverage to a new supported language at startup.
func Register(id ID, tag Tag, exprs ...string) {
	for _, expr := range exprs {
		registry[id] = append(registry[id], pattern{tag, compile(expr)})
	}
}
