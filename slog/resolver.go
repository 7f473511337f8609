package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ghdocs"
)

// Ensure LoggingResolver implements ghdocs.Resolver.
var _ ghdocs.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with logging of resolutions and new
// mappings.
type LoggingResolver struct {
	next   ghdocs.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next ghdocs.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, identifier string) (res *ghdocs.Resolution, err error) {
	ctx, id := withRequestID(ctx)
	defer func(begin time.Time) {
		var key, docsPath string
		var detected bool
		if res != nil {
			key, docsPath, detected = res.Key, res.DocsPath, res.Detected
		}
		r.logger.Info("docs path resolution",
			"request_id", id,
			"identifier", identifier,
			"key", key,
			"docs_path", docsPath,
			"detected", detected,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(ctx, identifier)
}

// AddMapping delegates to the wrapped resolver and logs the new mapping.
func (r *LoggingResolver) AddMapping(name, url, docsPath string) {
	r.next.AddMapping(name, url, docsPath)
	r.logger.Info("repository mapping added",
		"name", name,
		"url", url,
		"docs_path", docsPath,
	)
}

// Mappings delegates to the wrapped resolver.
func (r *LoggingResolver) Mappings() []ghdocs.MappingEntry {
	return r.next.Mappings()
}
