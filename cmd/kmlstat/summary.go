package main

import (
	"fmt"

	"github.com/fwojciec/kmlstat"
	"github.com/fwojciec/kmlstat/batch"
)

// Run executes the summary command.
func (c *SummaryCmd) Run(deps *Dependencies) error {
	runner := &batch.Runner{
		Reader:      deps.Reader,
		Extractor:   deps.Extractor,
		Concurrency: c.Concurrency,
	}

	outcomes, err := runner.ExtractAll(deps.Ctx, c.Files, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kmlstat.ErrorMessage(err))
		return err
	}

	var firstErr error
	for i, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", o.Path, kmlstat.ErrorMessage(o.Err))
			if firstErr == nil {
				firstErr = o.Err
			}
			continue
		}

		if len(outcomes) > 1 {
			if i > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			fmt.Fprintf(deps.Stdout, "%s\n", o.Path)
		}
		if err := writeSummary(deps.Stdout, kmlstat.Summarize(o.Result)); err != nil {
			return err
		}
	}

	if failed := batch.Failed(outcomes); failed > 1 {
		return kmlstat.Errorf(kmlstat.ErrorCode(firstErr), "%d of %d files failed", failed, len(outcomes))
	}
	return firstErr
}
