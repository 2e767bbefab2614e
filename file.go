package kmlstat

import (
	"context"
	"io"
)

// DocumentReader loads document text by path or URL.
type DocumentReader interface {
	// ReadDocument returns the content of the document at path.
	// Returns EINVALID for unsupported file types and ENOTFOUND if the
	// document does not exist.
	ReadDocument(ctx context.Context, path string) (string, error)
}

// FileWriter writes generated output by path.
type FileWriter interface {
	// WriteFile writes the output of fn to path. If fn fails, no file
	// is left at path.
	WriteFile(path string, fn func(io.Writer) error) error
}
