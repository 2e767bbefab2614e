package fs

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/kmlstat"
)

// Ensure Writer implements kmlstat.FileWriter at compile time.
var _ kmlstat.FileWriter = (*Writer)(nil)

// Writer writes rendered output with atomic replace semantics.
// Content goes to path.tmp first and is renamed into place once complete,
// so a failed render never leaves a truncated file behind.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile creates parent directories and writes the output of fn to path.
func (w *Writer) WriteFile(path string, fn func(io.Writer) error) error {
	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
