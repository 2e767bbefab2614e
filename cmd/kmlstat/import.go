package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/kmlstat"
	"github.com/fwojciec/kmlstat/batch"
)

// progressPathWidth caps the path shown on the progress line.
const progressPathWidth = 40

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	runner := &batch.Runner{
		Reader:      deps.Reader,
		Extractor:   deps.Extractor,
		Concurrency: c.Concurrency,
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressCompleted, batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "\r  [%d/%d] %s", event.Completed, event.Total,
				batch.TruncatePath(event.Path, progressPathWidth))
		case batch.ProgressFinished:
			if event.Total > 0 {
				fmt.Fprintln(deps.Stderr)
			}
		}
	}

	outcomes, err := runner.ExtractAll(deps.Ctx, c.Files, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kmlstat.ErrorMessage(err))
		return err
	}

	// Store sequentially; SQLite has a single writer.
	var failed int
	var firstErr error
	for _, o := range outcomes {
		err := o.Err
		if err == nil {
			doc := &kmlstat.Document{Name: filepath.Base(baseName(o.Path)), Result: o.Result}
			if err = deps.Documents.CreateDocument(deps.Ctx, doc, o.Content); err == nil {
				fmt.Fprintf(deps.Stdout, "Imported %s as %s (%d elements, %s)\n",
					o.Path, doc.ID, doc.Result.Total(), batch.FormatBytes(len(o.Content)))
				continue
			}
		}

		failed++
		if firstErr == nil {
			firstErr = err
		}
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", o.Path, kmlstat.ErrorMessage(err))
	}

	if failed > 1 {
		return kmlstat.Errorf(kmlstat.ErrorCode(firstErr), "%d of %d files failed", failed, len(outcomes))
	}
	return firstErr
}
