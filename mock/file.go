package mock

import (
	"context"
	"io"

	"github.com/fwojciec/kmlstat"
)

var _ kmlstat.DocumentReader = (*DocumentReader)(nil)

// DocumentReader is a mock implementation of kmlstat.DocumentReader.
type DocumentReader struct {
	ReadDocumentFn func(ctx context.Context, path string) (string, error)
}

func (r *DocumentReader) ReadDocument(ctx context.Context, path string) (string, error) {
	return r.ReadDocumentFn(ctx, path)
}

var _ kmlstat.FileWriter = (*FileWriter)(nil)

// FileWriter is a mock implementation of kmlstat.FileWriter.
type FileWriter struct {
	WriteFileFn func(path string, fn func(io.Writer) error) error
}

func (w *FileWriter) WriteFile(path string, fn func(io.Writer) error) error {
	return w.WriteFileFn(path, fn)
}
