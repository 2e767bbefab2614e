package main

import (
	"fmt"

	"github.com/fwojciec/kmlstat"
)

// Run executes the details command.
func (c *DetailsCmd) Run(deps *Dependencies) error {
	result, err := extractFile(deps, c.File)
	if err != nil {
		return err
	}

	return writeDetails(deps.Stdout, kmlstat.Detail(result))
}

// extractFile reads and extracts a single file, reporting failures on stderr.
func extractFile(deps *Dependencies, path string) (*kmlstat.Result, error) {
	content, err := deps.Reader.ReadDocument(deps.Ctx, path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kmlstat.ErrorMessage(err))
		return nil, err
	}

	result, err := deps.Extractor.Extract(deps.Ctx, content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", path, kmlstat.ErrorMessage(err))
		return nil, err
	}

	return result, nil
}
