package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/kmlstat"
	"github.com/fwojciec/kmlstat/mock"
	kmlslog "github.com/fwojciec/kmlstat/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDocumentService(t *testing.T) {
	t.Parallel()

	t.Run("logs create with generated ID", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentService{
			CreateDocumentFn: func(_ context.Context, doc *kmlstat.Document, _ string) error {
				doc.ID = "doc-1"
				return nil
			},
		}

		svc := kmlslog.NewLoggingDocumentService(inner, logger)
		err := svc.CreateDocument(context.Background(), &kmlstat.Document{Name: "route.kml"}, "<kml/>")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "store create")
		assert.Contains(t, output, "name=route.kml")
		assert.Contains(t, output, "id=doc-1")
	})

	t.Run("logs list count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ kmlstat.DocumentFilter) ([]*kmlstat.Document, error) {
				return []*kmlstat.Document{{}, {}}, nil
			},
		}

		svc := kmlslog.NewLoggingDocumentService(inner, logger)
		docs, err := svc.FindDocuments(context.Background(), kmlstat.DocumentFilter{})

		require.NoError(t, err)
		assert.Len(t, docs, 2)
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("logs find and delete errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentService{
			FindDocumentByIDFn: func(_ context.Context, _ string) (*kmlstat.Document, error) {
				return nil, errors.New("database locked")
			},
			DeleteDocumentFn: func(_ context.Context, _ string) error {
				return nil
			},
		}

		svc := kmlslog.NewLoggingDocumentService(inner, logger)
		_, findErr := svc.FindDocumentByID(context.Background(), "abc")
		deleteErr := svc.DeleteDocument(context.Background(), "abc")

		require.Error(t, findErr)
		require.NoError(t, deleteErr)
		output := buf.String()
		assert.Contains(t, output, "store find")
		assert.Contains(t, output, "err=\"database locked\"")
		assert.Contains(t, output, "store delete")
		assert.Contains(t, output, "id=abc")
	})
}
