package mock

import (
	"context"

	"github.com/fwojciec/kmlstat"
)

var _ kmlstat.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of kmlstat.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *kmlstat.Document, content string) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*kmlstat.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter kmlstat.DocumentFilter) ([]*kmlstat.Document, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *kmlstat.Document, content string) error {
	return s.CreateDocumentFn(ctx, doc, content)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*kmlstat.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter kmlstat.DocumentFilter) ([]*kmlstat.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}
