package kmlstat

import (
	"context"
	"time"
)

// Document represents a stored extraction of a KML document.
type Document struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentHash string    `json:"contentHash"`
	Result      *Result   `json:"result"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	if d.Result == nil {
		return Errorf(EINVALID, "document result required")
	}
	return nil
}

// DocumentService represents a service for managing stored extractions.
type DocumentService interface {
	// CreateDocument stores a new document. content is the raw document
	// text and is used to detect duplicates.
	// Returns ECONFLICT if a document with the same content already exists.
	CreateDocument(ctx context.Context, doc *Document, content string) error

	// FindDocumentByID retrieves a document by ID, including its result.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, newest first.
	// Results are included.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document and its elements.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
