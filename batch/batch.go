// Package batch extracts many documents concurrently.
// It coordinates reading and extraction while keeping results in input order.
package batch

import (
	"context"

	"github.com/fwojciec/kmlstat"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of files processed at once when
// Runner.Concurrency is unset.
const DefaultConcurrency = 4

// Runner reads and extracts documents.
type Runner struct {
	Reader      kmlstat.DocumentReader
	Extractor   kmlstat.ExtractionService
	Concurrency int
}

// Outcome holds the result of processing a single file.
// Exactly one of Result and Err is set.
type Outcome struct {
	Path    string
	Content string
	Result  *kmlstat.Result
	Err     error
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// ExtractAll processes every path and returns one outcome per path in input
// order. A failing file does not stop the others; its error is recorded in
// its outcome. The returned error is non-nil only if ctx is canceled.
// The progress callback, if provided, is invoked from the calling goroutine.
func (r *Runner) ExtractAll(ctx context.Context, paths []string, progress ProgressFunc) ([]Outcome, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(paths)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	type indexed struct {
		position int
		outcome  Outcome
	}
	resultCh := make(chan indexed, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, path := range paths {
			g.Go(func() error {
				resultCh <- indexed{position: i, outcome: r.process(gctx, path)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	outcomes := make([]Outcome, total)
	var completed int
	for res := range resultCh {
		completed++
		outcomes[res.position] = res.outcome

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Path:      res.outcome.Path,
		}
		if res.outcome.Err != nil {
			event.Type = ProgressFailed
			event.Error = res.outcome.Err
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return outcomes, nil
}

// process reads and extracts a single file.
func (r *Runner) process(ctx context.Context, path string) Outcome {
	outcome := Outcome{Path: path}

	content, err := r.Reader.ReadDocument(ctx, path)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	result, err := r.Extractor.Extract(ctx, content)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.Content = content
	outcome.Result = result
	return outcome
}

// Failed returns the number of outcomes with an error.
func Failed(outcomes []Outcome) int {
	var n int
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
