package mock

import (
	"context"

	"github.com/fwojciec/kmlstat"
)

var _ kmlstat.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of kmlstat.ExtractionService.
type ExtractionService struct {
	ExtractFn func(ctx context.Context, content string) (*kmlstat.Result, error)
}

func (s *ExtractionService) Extract(ctx context.Context, content string) (*kmlstat.Result, error) {
	return s.ExtractFn(ctx, content)
}

var _ kmlstat.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of kmlstat.DocumentParser.
type DocumentParser struct {
	ParseFn func(content string) (kmlstat.Node, error)
}

func (p *DocumentParser) Parse(content string) (kmlstat.Node, error) {
	return p.ParseFn(content)
}
