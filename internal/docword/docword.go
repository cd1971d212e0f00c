// Package docword renders a parsed review into a Word document matching the
// SA Pro visual identity: two colors, one font, fixed masthead and title.
package docword

import (
	"bytes"
	"fmt"
	"strings"

	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"

	"github.com/valpere/sareview/internal"
	"github.com/valpere/sareview/internal/feedback"
)

// Style constants for the SA Pro document identity.
const (
	fontName     = "Lato"
	mastheadText = "SA PRO TRAINER ASSESSMENT"
	titleText    = "CLIENT PRACTICAL REVIEW"

	titleSize    = 18 * measurement.Point
	headingSize  = 11 * measurement.Point
	bodySize     = 11 * measurement.Point
	mastheadSize = 10 * measurement.Point
)

// accent is used for the masthead, title, headings, and metadata labels;
// body for all content text. No other colors appear in the document.
var (
	accent = color.RGB(0xE7, 0x4E, 0x4E)
	body   = color.RGB(0x77, 0x56, 0xA7)
)

// Filename returns the download name for a review document:
// Client_Practical_<student, spaces as underscores>.docx.
func Filename(studentName string) string {
	return fmt.Sprintf("Client_Practical_%s.docx", strings.ReplaceAll(studentName, " ", "_"))
}

// Assemble builds the review document for meta and feedbackText and returns
// the serialized bytes. Empty metadata values still produce their labeled
// line; lines the feedback parser does not recognize are omitted.
func Assemble(meta internal.AssessmentMeta, feedbackText string) ([]byte, error) {
	doc := document.New()

	centered := func(text string, size measurement.Distance) {
		para := doc.AddParagraph()
		para.Properties().SetAlignment(wml.ST_JcCenter)
		run := para.AddRun()
		run.AddText(text)
		run.Properties().SetBold(true)
		run.Properties().SetFontFamily(fontName)
		run.Properties().SetSize(size)
		run.Properties().SetColor(accent)
	}

	centered(mastheadText, mastheadSize)
	centered(titleText, titleSize)
	doc.AddParagraph()

	for _, field := range []struct {
		label string
		value string
	}{
		{"Name: ", meta.StudentName},
		{"Date: ", meta.ReviewDate},
		{"Reviewer: ", meta.ReviewerName},
		{"Status: ", string(meta.Status)},
	} {
		para := doc.AddParagraph()
		label := para.AddRun()
		label.AddText(field.label)
		label.Properties().SetBold(true)
		label.Properties().SetFontFamily(fontName)
		label.Properties().SetSize(headingSize)
		label.Properties().SetColor(accent)
		value := para.AddRun()
		value.AddText(field.value)
		value.Properties().SetFontFamily(fontName)
		value.Properties().SetSize(bodySize)
		value.Properties().SetColor(body)
	}

	doc.AddParagraph()

	for _, block := range feedback.Parse(feedbackText) {
		switch block.Kind {
		case feedback.KindSpacer:
			doc.AddParagraph()

		case feedback.KindHeading:
			para := doc.AddParagraph()
			run := para.AddRun()
			run.AddText(block.Text)
			run.Properties().SetBold(true)
			run.Properties().SetFontFamily(fontName)
			run.Properties().SetSize(headingSize)
			run.Properties().SetColor(accent)

		case feedback.KindBullet:
			para := doc.AddParagraph()
			para.SetStyle("ListBullet")
			run := para.AddRun()
			run.AddText(block.Text)
			run.Properties().SetFontFamily(fontName)
			run.Properties().SetSize(bodySize)
			run.Properties().SetColor(body)

		case feedback.KindBody:
			para := doc.AddParagraph()
			run := para.AddRun()
			run.AddText(block.Text)
			run.Properties().SetFontFamily(fontName)
			run.Properties().SetSize(bodySize)
			run.Properties().SetColor(body)
		}
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return buf.Bytes(), nil
}
