package docs_test

import (
	"context"
	"sync"

	"github.com/fwojciec/ghdocs"
	"github.com/fwojciec/ghdocs/mock"
)

// remote is an in-memory repository exposed through mock.ContentService.
// It records every call as "list:<path>" or "read:<path>".
type remote struct {
	dirs  map[string][]*ghdocs.DirectoryEntry
	files map[string]string

	mu    sync.Mutex
	calls []string
}

func newRemote() *remote {
	return &remote{
		dirs:  make(map[string][]*ghdocs.DirectoryEntry),
		files: make(map[string]string),
	}
}

func (r *remote) dir(path string, entries ...*ghdocs.DirectoryEntry) *remote {
	r.dirs[path] = entries
	return r
}

func (r *remote) file(path, content string) *remote {
	r.files[path] = content
	return r
}

func (r *remote) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *remote) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *remote) service() *mock.ContentService {
	return &mock.ContentService{
		ListDirectoryFn: func(_ context.Context, _ ghdocs.Repository, path string) ([]*ghdocs.DirectoryEntry, error) {
			r.record("list:" + path)
			entries, ok := r.dirs[path]
			if !ok {
				return nil, ghdocs.Errorf(ghdocs.ENOTFOUND, "directory %s not found", path)
			}
			return entries, nil
		},
		ReadFileFn: func(_ context.Context, _ ghdocs.Repository, path string) (string, error) {
			r.record("read:" + path)
			content, ok := r.files[path]
			if !ok {
				return "", ghdocs.Errorf(ghdocs.ENOTFOUND, "file %s not found", path)
			}
			return content, nil
		},
	}
}

// unreachable returns a content service that counts every call made to it
// and always fails.
func unreachable(count *int) *mock.ContentService {
	return &mock.ContentService{
		ListDirectoryFn: func(context.Context, ghdocs.Repository, string) ([]*ghdocs.DirectoryEntry, error) {
			*count++
			return nil, ghdocs.Errorf(ghdocs.EINTERNAL, "unexpected call")
		},
		ReadFileFn: func(context.Context, ghdocs.Repository, string) (string, error) {
			*count++
			return "", ghdocs.Errorf(ghdocs.EINTERNAL, "unexpected call")
		},
	}
}
