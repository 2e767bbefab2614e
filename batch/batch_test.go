package batch_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/kmlstat"
	"github.com/fwojciec/kmlstat/batch"
	"github.com/fwojciec/kmlstat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoReader returns the path itself as content.
func echoReader() *mock.DocumentReader {
	return &mock.DocumentReader{
		ReadDocumentFn: func(_ context.Context, path string) (string, error) {
			return path, nil
		},
	}
}

// namingExtractor returns a single point named after the content.
func namingExtractor() *mock.ExtractionService {
	return &mock.ExtractionService{
		ExtractFn: func(ctx context.Context, content string) (*kmlstat.Result, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if content == "bad.kml" {
				return nil, kmlstat.Errorf(kmlstat.EMALFORMED, kmlstat.MalformedDocumentMessage)
			}
			return &kmlstat.Result{
				Elements: []kmlstat.Element{{Kind: kmlstat.KindPoint, Name: content}},
				Counts:   map[kmlstat.Kind]int{kmlstat.KindPoint: 1},
			}, nil
		},
	}
}

func TestRunner_ExtractAll(t *testing.T) {
	t.Parallel()

	t.Run("returns outcomes in input order", func(t *testing.T) {
		t.Parallel()

		paths := []string{"a.kml", "b.kml", "c.kml", "d.kml", "e.kml", "f.kml"}
		r := &batch.Runner{Reader: echoReader(), Extractor: namingExtractor(), Concurrency: 3}

		outcomes, err := r.ExtractAll(context.Background(), paths, nil)

		require.NoError(t, err)
		require.Len(t, outcomes, len(paths))
		for i, o := range outcomes {
			assert.Equal(t, paths[i], o.Path)
			assert.Equal(t, paths[i], o.Content)
			require.NoError(t, o.Err)
			assert.Equal(t, paths[i], o.Result.Elements[0].Name)
		}
	})

	t.Run("keeps going when a file fails", func(t *testing.T) {
		t.Parallel()

		r := &batch.Runner{Reader: echoReader(), Extractor: namingExtractor()}

		outcomes, err := r.ExtractAll(context.Background(), []string{"a.kml", "bad.kml", "c.kml"}, nil)

		require.NoError(t, err)
		require.Len(t, outcomes, 3)
		assert.NotNil(t, outcomes[0].Result)
		assert.Nil(t, outcomes[1].Result)
		assert.Equal(t, kmlstat.EMALFORMED, kmlstat.ErrorCode(outcomes[1].Err))
		assert.NotNil(t, outcomes[2].Result)
		assert.Equal(t, 1, batch.Failed(outcomes))
	})

	t.Run("records read errors", func(t *testing.T) {
		t.Parallel()

		r := &batch.Runner{
			Reader: &mock.DocumentReader{
				ReadDocumentFn: func(_ context.Context, path string) (string, error) {
					return "", kmlstat.Errorf(kmlstat.EINVALID, "%s: only .kml files are supported", path)
				},
			},
			Extractor: &mock.ExtractionService{},
		}

		outcomes, err := r.ExtractAll(context.Background(), []string{"notes.txt"}, nil)

		require.NoError(t, err)
		require.Len(t, outcomes, 1)
		assert.Equal(t, kmlstat.EINVALID, kmlstat.ErrorCode(outcomes[0].Err))
		assert.Empty(t, outcomes[0].Content)
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var running, peak atomic.Int64
		r := &batch.Runner{
			Reader: echoReader(),
			Extractor: &mock.ExtractionService{
				ExtractFn: func(_ context.Context, _ string) (*kmlstat.Result, error) {
					n := running.Add(1)
					for {
						p := peak.Load()
						if n <= p || peak.CompareAndSwap(p, n) {
							break
						}
					}
					time.Sleep(5 * time.Millisecond)
					running.Add(-1)
					return &kmlstat.Result{}, nil
				},
			},
			Concurrency: 2,
		}

		paths := make([]string, 10)
		for i := range paths {
			paths[i] = "f.kml"
		}

		_, err := r.ExtractAll(context.Background(), paths, nil)

		require.NoError(t, err)
		assert.LessOrEqual(t, peak.Load(), int64(2))
	})

	t.Run("reports progress", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var events []batch.ProgressEvent
		r := &batch.Runner{Reader: echoReader(), Extractor: namingExtractor()}

		_, err := r.ExtractAll(context.Background(), []string{"a.kml", "bad.kml"}, func(e batch.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, e)
		})

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, batch.ProgressStarted, events[0].Type)
		assert.Equal(t, 2, events[0].Total)
		assert.Equal(t, batch.ProgressFinished, events[3].Type)

		var completed, failed int
		for _, e := range events[1:3] {
			switch e.Type {
			case batch.ProgressCompleted:
				completed++
			case batch.ProgressFailed:
				failed++
				assert.Equal(t, "bad.kml", e.Path)
				assert.Error(t, e.Error)
			}
		}
		assert.Equal(t, 1, completed)
		assert.Equal(t, 1, failed)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := &batch.Runner{Reader: echoReader(), Extractor: namingExtractor()}

		outcomes, err := r.ExtractAll(ctx, []string{"a.kml"}, nil)

		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, outcomes)
	})

	t.Run("handles empty input", func(t *testing.T) {
		t.Parallel()

		r := &batch.Runner{Reader: echoReader(), Extractor: namingExtractor()}

		outcomes, err := r.ExtractAll(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Empty(t, outcomes)
	})
}

func TestProgressType_Constants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, batch.ProgressStarted, batch.ProgressType(0))
	assert.Equal(t, batch.ProgressCompleted, batch.ProgressType(1))
	assert.Equal(t, batch.ProgressFailed, batch.ProgressType(2))
	assert.Equal(t, batch.ProgressFinished, batch.ProgressType(3))
}

func TestTruncatePath(t *testing.T) {
	t.Parallel()

	t.Run("returns path unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a.kml", batch.TruncatePath("a.kml", 50))
	})

	t.Run("truncates with ellipsis when longer than max", func(t *testing.T) {
		t.Parallel()
		result := batch.TruncatePath("/home/user/tracks/2024/summer/ride.kml", 20)
		assert.Equal(t, "...4/summer/ride.kml", result)
		assert.Len(t, result, 20)
	})

	t.Run("handles tiny limits", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "ab", batch.TruncatePath("abcdef", 2))
		assert.Empty(t, batch.TruncatePath("abcdef", 0))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", batch.FormatBytes(512))
	assert.Equal(t, "1.5 KB", batch.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", batch.FormatBytes(2*1024*1024))
}
