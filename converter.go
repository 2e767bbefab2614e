package kmlstat

// Converter converts description markup for display.
//
// KML descriptions routinely embed HTML. Implementations turn it into a
// representation suited to the output medium (plain text, Markdown).
type Converter interface {
	// Convert transforms description markup.
	// Empty input yields empty output without error.
	Convert(markup string) (string, error)
}
