package docs

import (
	"context"

	"github.com/fwojciec/ghdocs"
)

var _ ghdocs.Browser = (*Browser)(nil)

// Browser lists directories and reads files relative to a repository's
// documentation root.
type Browser struct {
	resolver ghdocs.Resolver
	contents ghdocs.ContentService
}

// NewBrowser creates a Browser.
func NewBrowser(resolver ghdocs.Resolver, contents ghdocs.ContentService) *Browser {
	return &Browser{resolver: resolver, contents: contents}
}

// Browse returns a directory listing if the target path is a directory,
// otherwise the file's content. The file read is only attempted after the
// directory listing fails.
func (b *Browser) Browse(ctx context.Context, identifier, relativePath string) (*ghdocs.BrowseResult, error) {
	res, err := b.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if res.Repository.IsZero() {
		return nil, ghdocs.Errorf(ghdocs.EINVALID, "cannot determine owner/repo for %s", identifier)
	}

	repo := res.Repository
	info := ghdocs.RepositoryInfo{
		Name:     repo.FullName(),
		URL:      repo.URL(),
		DocsPath: res.DocsPath,
	}

	fullPath := res.DocsPath
	if relativePath != "" {
		fullPath = res.DocsPath + "/" + relativePath
	}

	entries, err := b.contents.ListDirectory(ctx, repo, fullPath)
	if err == nil {
		return &ghdocs.BrowseResult{
			Kind:       ghdocs.ResultDirectory,
			Path:       fullPath,
			Items:      entries,
			Repository: info,
		}, nil
	}

	content, err := b.contents.ReadFile(ctx, repo, fullPath)
	if err != nil {
		return nil, ghdocs.WrapError(ghdocs.EINACCESSIBLE, err, "could not access path '%s' in repository %s", fullPath, repo.FullName())
	}

	return &ghdocs.BrowseResult{
		Kind:       ghdocs.ResultFile,
		Path:       fullPath,
		Content:    content,
		Repository: info,
	}, nil
}

// AddRepositoryMapping registers or overwrites the mapping for name.
func (b *Browser) AddRepositoryMapping(name, url, docsPath string) {
	b.resolver.AddMapping(name, url, docsPath)
}

// RepositoryMappings returns a snapshot of all mappings.
func (b *Browser) RepositoryMappings() []ghdocs.MappingEntry {
	return b.resolver.Mappings()
}
