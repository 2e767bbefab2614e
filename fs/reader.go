// Package fs reads KML documents from disk and writes rendered output.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/kmlstat"
)

// Extension is the only accepted document extension, matched case-insensitively.
const Extension = ".kml"

// Ensure Reader implements kmlstat.DocumentReader at compile time.
var _ kmlstat.DocumentReader = (*Reader)(nil)

// Reader loads document text from the local filesystem.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadDocument returns the content of the document at path.
func (r *Reader) ReadDocument(_ context.Context, path string) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), Extension) {
		return "", kmlstat.Errorf(kmlstat.EINVALID, "%s: only %s files are supported", path, Extension)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", kmlstat.Errorf(kmlstat.ENOTFOUND, "%s: file not found", path)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// OutputPath returns path with its extension replaced by ext.
// Example: tracks/ride.kml, .html → tracks/ride.html
func OutputPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
