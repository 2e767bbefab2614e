// Package htmltomarkdown converts placemark description markup to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/kmlstat"
)

// Ensure Converter implements kmlstat.Converter at compile time.
var _ kmlstat.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert description HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms description markup into Markdown. Most placemarks have
// no description, so blank input yields an empty string rather than an error.
func (c *Converter) Convert(markup string) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(markup)
	if err != nil {
		return "", kmlstat.Errorf(kmlstat.EINVALID, "failed to convert description: %v", err)
	}

	return strings.TrimSpace(result), nil
}
