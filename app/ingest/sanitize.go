package ingest

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxContentRunes bounds stored article content.
const MaxContentRunes = 1500

// StripHTML removes markup and entities from feed content, collapsing
// whitespace. Malformed HTML degrades to whitespace-collapsed raw text, never
// an error.
func StripHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapseWhitespace(html)
	}
	doc.Find("script, style").Remove()
	return collapseWhitespace(doc.Text())
}

// CleanContent strips and truncates feed content, falling back to the title
// when nothing survives.
func CleanContent(raw, title string) string {
	cleaned := Truncate(StripHTML(raw), MaxContentRunes)
	if cleaned == "" {
		return strings.TrimSpace(title)
	}
	return cleaned
}

func Truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return strings.TrimSpace(string(runes[:maxRunes]))
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
