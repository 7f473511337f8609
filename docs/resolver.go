// Package docs resolves repositories to their documentation root and
// browses the files below it.
package docs

import (
	"context"

	"github.com/fwojciec/ghdocs"
)

var _ ghdocs.Resolver = (*Resolver)(nil)

// Resolver maps repository identifiers to documentation roots, detecting
// and remembering the root of repositories it has not seen before.
//
// Mapped entries are authoritative: a stored docs path is returned even if
// the repository has since moved its documentation.
type Resolver struct {
	contents       ghdocs.ContentService
	mappings       *ghdocs.MappingTable
	candidatePaths []string
	indicatorFiles []string
}

// NewResolver creates a Resolver seeded from cfg.
// If cfg is nil, ghdocs.DefaultConfig() is used.
func NewResolver(contents ghdocs.ContentService, cfg *ghdocs.Config) *Resolver {
	if cfg == nil {
		cfg = ghdocs.DefaultConfig()
	}
	return &Resolver{
		contents:       contents,
		mappings:       ghdocs.NewMappingTable(cfg.Repositories),
		candidatePaths: append([]string(nil), cfg.CandidatePaths...),
		indicatorFiles: append([]string(nil), cfg.IndicatorFiles...),
	}
}

// Resolve returns the documentation root for identifier.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (*ghdocs.Resolution, error) {
	key := ghdocs.NormalizeIdentifier(identifier)

	if m, ok := r.mappings.Get(key); ok {
		return &ghdocs.Resolution{
			Key:        key,
			Repository: mappedRepository(m, identifier),
			DocsPath:   m.DocsPath,
		}, nil
	}

	repo, err := ghdocs.ParseRepository(identifier)
	if err != nil {
		return nil, err
	}

	path, ok, err := Detect(ctx, r.contents, repo, r.candidatePaths, r.indicatorFiles)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ghdocs.Errorf(ghdocs.ENOTFOUND, "could not detect documentation path for repository: %s", identifier)
	}

	r.mappings.Set(key, ghdocs.Mapping{URL: repo.URL(), DocsPath: path})

	return &ghdocs.Resolution{
		Key:        key,
		Repository: repo,
		DocsPath:   path,
		Detected:   true,
	}, nil
}

// AddMapping registers or overwrites the mapping for name. The name is
// normalized, so URLs and "owner/repo" forms share a key.
func (r *Resolver) AddMapping(name, url, docsPath string) {
	r.mappings.Set(ghdocs.NormalizeIdentifier(name), ghdocs.Mapping{URL: url, DocsPath: docsPath})
}

// Mappings returns a snapshot of all mappings in insertion order.
func (r *Resolver) Mappings() []ghdocs.MappingEntry {
	return r.mappings.Entries()
}

// mappedRepository derives the repository of a mapped entry from the
// identifier, falling back to the stored URL for bare names like
// "datajoint-python".
func mappedRepository(m ghdocs.Mapping, identifier string) ghdocs.Repository {
	if repo, err := ghdocs.ParseRepository(identifier); err == nil {
		return repo
	}
	if repo, err := ghdocs.ParseRepository(m.URL); err == nil {
		return repo
	}
	return ghdocs.Repository{}
}
