// Package markdown renders the markdown-ish draft text for the web UI
// preview pane and produces plain-text excerpts for history listings.
package markdown

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// ToHTML renders draft text (bold headers, bullet lists, prose) as HTML for
// the preview pane.
func ToHTML(md []byte) string {
	opts := html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank,
	}
	renderer := html.NewRenderer(opts)
	ext := parser.CommonExtensions | parser.Attributes
	p := parser.NewWithExtensions(ext)
	doc := p.Parse(md)
	return string(markdown.Render(doc, renderer))
}

// Excerpt returns the first maxRunes runes of the draft as plain text, for
// compact history listings.
func Excerpt(md string, maxRunes int) string {
	plain := strings.TrimSpace(StripHTMLTags(ToHTML([]byte(md))))
	runes := []rune(plain)
	if maxRunes <= 0 || len(runes) <= maxRunes {
		return plain
	}
	return strings.TrimSpace(string(runes[:maxRunes])) + "…"
}

// StripHTMLTags removes anything between angle brackets.
func StripHTMLTags(htmlContent string) string {
	var result bytes.Buffer
	inTag := false

	for _, ch := range htmlContent {
		switch ch {
		case '<':
			inTag = true
		case '>':
			inTag = false
		default:
			if !inTag {
				result.WriteRune(ch)
			}
		}
	}

	return result.String()
}
