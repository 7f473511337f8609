package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ghdocs"
)

// Ensure LoggingBrowser implements ghdocs.Browser.
var _ ghdocs.Browser = (*LoggingBrowser)(nil)

// LoggingBrowser wraps a Browser with logging of browse requests. Each
// request gets an ID that nested decorators include in their records.
type LoggingBrowser struct {
	next   ghdocs.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next ghdocs.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// Browse delegates to the wrapped browser and logs the request.
func (b *LoggingBrowser) Browse(ctx context.Context, identifier, relativePath string) (result *ghdocs.BrowseResult, err error) {
	ctx, id := withRequestID(ctx)
	defer func(begin time.Time) {
		var kind ghdocs.ResultKind
		var path string
		if result != nil {
			kind, path = result.Kind, result.Path
		}
		b.logger.Info("browse",
			"request_id", id,
			"identifier", identifier,
			"relative_path", relativePath,
			"kind", string(kind),
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Browse(ctx, identifier, relativePath)
}

// AddRepositoryMapping delegates to the wrapped browser.
func (b *LoggingBrowser) AddRepositoryMapping(name, url, docsPath string) {
	b.next.AddRepositoryMapping(name, url, docsPath)
}

// RepositoryMappings delegates to the wrapped browser.
func (b *LoggingBrowser) RepositoryMappings() []ghdocs.MappingEntry {
	return b.next.RepositoryMappings()
}
