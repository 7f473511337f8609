// Package github implements ghdocs.ContentService on top of the GitHub
// repository contents API.
package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/ghdocs"
	gh "github.com/google/go-github/v66/github"
	"golang.org/x/time/rate"
)

// Ensure ContentService implements ghdocs.ContentService at compile time.
var _ ghdocs.ContentService = (*ContentService)(nil)

// ContentService reads directories and files through the GitHub API.
// Rate limit responses are reported as ghdocs.ERATELIMIT and never retried.
type ContentService struct {
	client  *gh.Client
	limiter *rate.Limiter

	token      string
	baseURL    string
	httpClient *http.Client
	rps        float64
}

// Option configures a ContentService.
type Option func(*ContentService)

// WithToken authenticates requests with a personal access token.
// An empty token leaves the client unauthenticated.
func WithToken(token string) Option {
	return func(s *ContentService) {
		s.token = token
	}
}

// WithBaseURL points the client at a different API root, such as a GitHub
// Enterprise server ("https://ghe.example.com/api/v3") or a test server.
func WithBaseURL(baseURL string) Option {
	return func(s *ContentService) {
		s.baseURL = baseURL
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *ContentService) {
		s.httpClient = client
	}
}

// WithRateLimit paces outgoing requests to at most rps per second.
// Zero or negative values disable pacing, which is the default.
func WithRateLimit(rps float64) Option {
	return func(s *ContentService) {
		s.rps = rps
	}
}

// NewContentService creates a new GitHub-backed ContentService.
func NewContentService(opts ...Option) (*ContentService, error) {
	s := &ContentService{}
	for _, opt := range opts {
		opt(s)
	}

	client := gh.NewClient(s.httpClient)
	if s.token != "" {
		client = client.WithAuthToken(s.token)
	}
	if s.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(s.baseURL, "/") + "/")
		if err != nil {
			return nil, ghdocs.WrapError(ghdocs.EINVALID, err, "invalid GitHub API URL %q", s.baseURL)
		}
		client.BaseURL = u
	}
	s.client = client

	if s.rps > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(s.rps), 1)
	}

	return s, nil
}

// ListDirectory returns the entries of the directory at path.
func (s *ContentService) ListDirectory(ctx context.Context, repo ghdocs.Repository, path string) ([]*ghdocs.DirectoryEntry, error) {
	file, dir, err := s.getContents(ctx, repo, path)
	if err != nil {
		return nil, err
	}
	if dir == nil && file != nil {
		return nil, ghdocs.Errorf(ghdocs.ENOTFOUND, "%s in %s is not a directory", path, repo.FullName())
	}

	entries := make([]*ghdocs.DirectoryEntry, 0, len(dir))
	for _, item := range dir {
		entries = append(entries, &ghdocs.DirectoryEntry{
			Name: item.GetName(),
			Path: item.GetPath(),
			Kind: ghdocs.EntryKind(item.GetType()),
			URL:  item.GetHTMLURL(),
		})
	}
	return entries, nil
}

// ReadFile returns the decoded content of the file at path.
func (s *ContentService) ReadFile(ctx context.Context, repo ghdocs.Repository, path string) (string, error) {
	file, _, err := s.getContents(ctx, repo, path)
	if err != nil {
		return "", err
	}
	if file == nil {
		return "", ghdocs.Errorf(ghdocs.ENOTFOUND, "%s in %s is not a file", path, repo.FullName())
	}

	content, err := file.GetContent()
	if err != nil {
		return "", ghdocs.WrapError(ghdocs.EINTERNAL, err, "unexpected response format from GitHub API for file: %s", path)
	}
	return content, nil
}

func (s *ContentService) getContents(ctx context.Context, repo ghdocs.Repository, path string) (*gh.RepositoryContent, []*gh.RepositoryContent, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, nil, err
		}
	}

	file, dir, _, err := s.client.Repositories.GetContents(ctx, repo.Owner, repo.Name, path, nil)
	if err != nil {
		return nil, nil, translateError(err, repo, path)
	}
	return file, dir, nil
}

// translateError maps go-github errors onto application error codes.
func translateError(err error, repo ghdocs.Repository, path string) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return ghdocs.WrapError(ghdocs.ERATELIMIT, err,
			"GitHub API rate limit exceeded. Reset in %d seconds", secondsUntil(rateErr.Rate.Reset.Time))
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		var wait time.Duration
		if abuseErr.RetryAfter != nil {
			wait = *abuseErr.RetryAfter
		}
		return ghdocs.WrapError(ghdocs.ERATELIMIT, err,
			"GitHub API secondary rate limit exceeded. Retry in %d seconds", int((wait+time.Second-1)/time.Second))
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.StatusCode == http.StatusNotFound {
		return ghdocs.WrapError(ghdocs.ENOTFOUND, err, "%s not found in %s", path, repo.FullName())
	}

	return ghdocs.WrapError(ghdocs.EINTERNAL, err, "error fetching contents for %s/%s", repo.FullName(), path)
}

// secondsUntil returns the whole seconds until t, rounded up and never negative.
func secondsUntil(t time.Time) int {
	d := time.Until(t)
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
