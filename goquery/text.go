// Package goquery flattens placemark description markup into plain text.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kmlstat"
)

// Ensure TextConverter implements kmlstat.Converter at compile time.
var _ kmlstat.Converter = (*TextConverter)(nil)

// TextConverter renders description HTML as a single line of plain text
// suitable for terminal tables.
type TextConverter struct{}

// NewTextConverter creates a new TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Convert strips markup and collapses whitespace.
func (c *TextConverter) Convert(markup string) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", kmlstat.Errorf(kmlstat.EINVALID, "failed to parse description: %v", err)
	}

	doc.Find("script, style").Remove()

	// Line breaks and block boundaries separate words that would otherwise
	// run together once tags are gone.
	doc.Find("br").ReplaceWithHtml(" ")
	doc.Find("p, div, li, tr, td, th, h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml(" ")
	})

	return strings.Join(strings.Fields(doc.Text()), " "), nil
}
