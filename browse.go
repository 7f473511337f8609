package ghdocs

import "context"

// Resolution is the outcome of resolving a repository identifier.
type Resolution struct {
	// Key is the normalized identifier used in the mapping table.
	Key string

	// Repository is the repository the docs live in. It is zero when a
	// mapped entry's URL and the identifier are both unparsable.
	Repository Repository

	// DocsPath is the documentation root relative to the repository root.
	DocsPath string

	// Detected is true when DocsPath was discovered by probing rather than
	// read from an existing mapping.
	Detected bool
}

// Resolver finds the documentation root of repositories.
type Resolver interface {
	// Resolve returns the documentation root for identifier. Existing
	// mappings win without any remote calls; otherwise the docs folder is
	// detected and remembered.
	// Returns EINVALID if the identifier is neither a GitHub URL nor
	// "owner/repo", and ENOTFOUND if no docs folder could be detected.
	Resolve(ctx context.Context, identifier string) (*Resolution, error)

	// AddMapping registers or overwrites the mapping for name.
	AddMapping(name, url, docsPath string)

	// Mappings returns a snapshot of all mappings in insertion order.
	Mappings() []MappingEntry
}

// ResultKind distinguishes directory listings from file contents.
type ResultKind string

// Browse result kinds.
const (
	ResultDirectory ResultKind = "directory"
	ResultFile      ResultKind = "file"
)

// RepositoryInfo describes the repository a BrowseResult came from.
type RepositoryInfo struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	DocsPath string `json:"docsPath"`
}

// BrowseResult is either a directory listing (Items) or file content
// (Content), depending on Kind.
type BrowseResult struct {
	Kind       ResultKind        `json:"type"`
	Path       string            `json:"path"`
	Items      []*DirectoryEntry `json:"items,omitempty"`
	Content    string            `json:"content,omitempty"`
	Repository RepositoryInfo    `json:"repository"`
}

// Browser answers "list this directory" and "read this file" requests
// relative to a repository's documentation root.
type Browser interface {
	// Browse returns the directory listing or file content at relativePath
	// below the docs root of identifier. An empty relativePath targets the
	// docs root itself.
	// Returns EINACCESSIBLE if the path is neither a directory nor a file.
	Browse(ctx context.Context, identifier, relativePath string) (*BrowseResult, error)

	// AddRepositoryMapping registers or overwrites the mapping for name.
	AddRepositoryMapping(name, url, docsPath string)

	// RepositoryMappings returns a snapshot of all mappings.
	RepositoryMappings() []MappingEntry
}
