// Package slog provides log/slog decorators for kmlstat services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kmlstat"
)

// Ensure LoggingExtractionService implements kmlstat.ExtractionService.
var _ kmlstat.ExtractionService = (*LoggingExtractionService)(nil)

// LoggingExtractionService wraps an ExtractionService with debug logging.
type LoggingExtractionService struct {
	next   kmlstat.ExtractionService
	logger *slog.Logger
}

// NewLoggingExtractionService creates a new LoggingExtractionService.
func NewLoggingExtractionService(next kmlstat.ExtractionService, logger *slog.Logger) *LoggingExtractionService {
	return &LoggingExtractionService{next: next, logger: logger}
}

// Extract delegates to the wrapped service and logs the operation.
func (s *LoggingExtractionService) Extract(ctx context.Context, content string) (result *kmlstat.Result, err error) {
	defer func(begin time.Time) {
		elements := 0
		if result != nil {
			elements = result.Total()
		}
		s.logger.Info("extract",
			"bytes", len(content),
			"elements", elements,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Extract(ctx, content)
}
