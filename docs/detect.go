package docs

import (
	"context"

	"github.com/fwojciec/ghdocs"
)

// Detect searches repo for its documentation folder.
//
// Candidate paths are tried in order. A candidate that can be listed and
// contains one of the indicator files wins immediately. If no candidate has
// an indicator, the first listable candidate wins. Remote failures only
// disqualify the path or indicator being probed; the scan is sequential so
// list position decides ties.
//
// Returns false if no candidate could be listed. The only error returned is
// the context's, when it is done before the scan completes.
func Detect(ctx context.Context, contents ghdocs.ContentService, repo ghdocs.Repository, candidatePaths, indicatorFiles []string) (string, bool, error) {
	for _, path := range candidatePaths {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		if _, err := contents.ListDirectory(ctx, repo, path); err != nil {
			continue
		}

		for _, file := range indicatorFiles {
			if err := ctx.Err(); err != nil {
				return "", false, err
			}
			if _, err := contents.ReadFile(ctx, repo, path+"/"+file); err == nil {
				return path, true, nil
			}
		}
	}

	for _, path := range candidatePaths {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		if _, err := contents.ListDirectory(ctx, repo, path); err == nil {
			return path, true, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	return "", false, nil
}
