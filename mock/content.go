package mock

import (
	"context"

	"github.com/fwojciec/ghdocs"
)

var _ ghdocs.ContentService = (*ContentService)(nil)

// ContentService is a mock implementation of ghdocs.ContentService.
type ContentService struct {
	ListDirectoryFn func(ctx context.Context, repo ghdocs.Repository, path string) ([]*ghdocs.DirectoryEntry, error)
	ReadFileFn      func(ctx context.Context, repo ghdocs.Repository, path string) (string, error)
}

func (s *ContentService) ListDirectory(ctx context.Context, repo ghdocs.Repository, path string) ([]*ghdocs.DirectoryEntry, error) {
	return s.ListDirectoryFn(ctx, repo, path)
}

func (s *ContentService) ReadFile(ctx context.Context, repo ghdocs.Repository, path string) (string, error) {
	return s.ReadFileFn(ctx, repo, path)
}
