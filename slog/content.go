// Package slog provides logging decorators for ghdocs services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ghdocs"
)

// Ensure LoggingContentService implements ghdocs.ContentService.
var _ ghdocs.ContentService = (*LoggingContentService)(nil)

// LoggingContentService wraps a ContentService with debug logging of every
// remote call. Rate limit failures are logged at warn level.
type LoggingContentService struct {
	next   ghdocs.ContentService
	logger *slog.Logger
}

// NewLoggingContentService creates a new LoggingContentService.
func NewLoggingContentService(next ghdocs.ContentService, logger *slog.Logger) *LoggingContentService {
	return &LoggingContentService{next: next, logger: logger}
}

// ListDirectory delegates to the wrapped service and logs the operation.
func (s *LoggingContentService) ListDirectory(ctx context.Context, repo ghdocs.Repository, path string) (entries []*ghdocs.DirectoryEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Log(ctx, levelFor(err), "list directory",
			"request_id", requestID(ctx),
			"repo", repo.FullName(),
			"path", path,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListDirectory(ctx, repo, path)
}

// ReadFile delegates to the wrapped service and logs the operation.
func (s *LoggingContentService) ReadFile(ctx context.Context, repo ghdocs.Repository, path string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Log(ctx, levelFor(err), "read file",
			"request_id", requestID(ctx),
			"repo", repo.FullName(),
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadFile(ctx, repo, path)
}

func levelFor(err error) slog.Level {
	if ghdocs.ErrorCode(err) == ghdocs.ERATELIMIT {
		return slog.LevelWarn
	}
	return slog.LevelDebug
}
