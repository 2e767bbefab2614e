package etree

import (
	"context"

	"github.com/fwojciec/kmlstat"
)

// Ensure Extractor implements kmlstat.ExtractionService.
var _ kmlstat.ExtractionService = (*Extractor)(nil)

// Extractor runs the extraction pipeline: etree parsing followed by the
// placemark walk.
type Extractor struct {
	// Parser turns document text into a tree. Defaults to the etree Parser.
	Parser kmlstat.DocumentParser
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{Parser: NewParser()}
}

// Extract parses content and returns the extracted elements and counts.
func (x *Extractor) Extract(ctx context.Context, content string) (*kmlstat.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := x.Parser.Parse(content)
	if err != nil {
		return nil, err
	}

	return kmlstat.Walk(root), nil
}
