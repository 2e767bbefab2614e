package mock

import "github.com/fwojciec/kmlstat"

var _ kmlstat.Converter = (*Converter)(nil)

// Converter is a mock implementation of kmlstat.Converter.
type Converter struct {
	ConvertFn func(markup string) (string, error)
}

func (c *Converter) Convert(markup string) (string, error) {
	return c.ConvertFn(markup)
}
