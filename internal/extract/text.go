package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanText collapses runs of whitespace and NBSPs into single spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// blockText renders a selection as paragraph-ish text: each text line
// cleaned, blank lines collapsed. goquery's .Text() glues everything
// together, which destroys list items; splitting on newlines first
// keeps the structure readable in the output file.
func blockText(sel *goquery.Selection) string {
	raw := sel.Text()
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = CleanText(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// firstText returns the cleaned text of the first selector that
// matches and has content.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if t := CleanText(doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

// metaContent reads a <meta> tag's content attribute.
func metaContent(doc *goquery.Document, selector string) string {
	v, _ := doc.Find(selector).First().Attr("content")
	return CleanText(v)
}
