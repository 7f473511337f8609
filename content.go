package ghdocs

import "context"

// EntryKind is the type of a directory entry as reported by the remote API.
type EntryKind string

// Entry kinds. Remote APIs may report others (e.g. symlink, submodule).
const (
	EntryFile EntryKind = "file"
	EntryDir  EntryKind = "dir"
)

// DirectoryEntry is a single item of a remote directory listing.
type DirectoryEntry struct {
	Name string    `json:"name"`
	Path string    `json:"path"`
	Kind EntryKind `json:"type"`
	URL  string    `json:"url"`
}

// IsDir reports whether the entry is a directory.
func (e *DirectoryEntry) IsDir() bool {
	return e.Kind == EntryDir
}

// ContentService reads repository contents from a remote hosting API.
// Implementations surface rate limiting as ERATELIMIT and do not retry.
type ContentService interface {
	// ListDirectory returns the entries of the directory at path, in the
	// order reported by the remote. Returns ENOTFOUND if path does not
	// exist or is not a directory.
	ListDirectory(ctx context.Context, repo Repository, path string) ([]*DirectoryEntry, error)

	// ReadFile returns the decoded text content of the file at path.
	// Returns ENOTFOUND if path does not exist or is not a file.
	ReadFile(ctx context.Context, repo Repository, path string) (string, error)
}
