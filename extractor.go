package kmlstat

import "context"

// ExtractionService runs the extraction pipeline over document text.
type ExtractionService interface {
	// Extract parses content and returns the extracted elements and counts.
	// Returns EMALFORMED if the content is not well-formed markup; all other
	// anomalies are tolerated and reflected in the result.
	Extract(ctx context.Context, content string) (*Result, error)
}
