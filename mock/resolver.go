package mock

import (
	"context"

	"github.com/fwojciec/ghdocs"
)

var _ ghdocs.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of ghdocs.Resolver.
type Resolver struct {
	ResolveFn    func(ctx context.Context, identifier string) (*ghdocs.Resolution, error)
	AddMappingFn func(name, url, docsPath string)
	MappingsFn   func() []ghdocs.MappingEntry
}

func (r *Resolver) Resolve(ctx context.Context, identifier string) (*ghdocs.Resolution, error) {
	return r.ResolveFn(ctx, identifier)
}

func (r *Resolver) AddMapping(name, url, docsPath string) {
	r.AddMappingFn(name, url, docsPath)
}

func (r *Resolver) Mappings() []ghdocs.MappingEntry {
	return r.MappingsFn()
}
