package mock

import (
	"context"

	"github.com/fwojciec/ghdocs"
)

var _ ghdocs.Browser = (*Browser)(nil)

// Browser is a mock implementation of ghdocs.Browser.
type Browser struct {
	BrowseFn               func(ctx context.Context, identifier, relativePath string) (*ghdocs.BrowseResult, error)
	AddRepositoryMappingFn func(name, url, docsPath string)
	RepositoryMappingsFn   func() []ghdocs.MappingEntry
}

func (b *Browser) Browse(ctx context.Context, identifier, relativePath string) (*ghdocs.BrowseResult, error) {
	return b.BrowseFn(ctx, identifier, relativePath)
}

func (b *Browser) AddRepositoryMapping(name, url, docsPath string) {
	b.AddRepositoryMappingFn(name, url, docsPath)
}

func (b *Browser) RepositoryMappings() []ghdocs.MappingEntry {
	return b.RepositoryMappingsFn()
}
