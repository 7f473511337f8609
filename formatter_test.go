package ghdocs_test

import (
	"testing"

	"github.com/fwojciec/ghdocs"
	"github.com/stretchr/testify/assert"
)

func TestFormatBrowseResult(t *testing.T) {
	t.Parallel()

	repo := ghdocs.RepositoryInfo{
		Name:     "acme/widgets",
		URL:      "https://github.com/acme/widgets",
		DocsPath: "docs",
	}

	t.Run("formats directory listing with markers", func(t *testing.T) {
		t.Parallel()

		result := &ghdocs.BrowseResult{
			Kind: ghdocs.ResultDirectory,
			Path: "docs",
			Items: []*ghdocs.DirectoryEntry{
				{Name: "guide", Path: "docs/guide", Kind: ghdocs.EntryDir, URL: "https://github.com/acme/widgets/tree/main/docs/guide"},
				{Name: "index.md", Path: "docs/index.md", Kind: ghdocs.EntryFile, URL: "https://github.com/acme/widgets/blob/main/docs/index.md"},
			},
			Repository: repo,
		}

		expected := "### Directory: docs\n\n" +
			"📁 guide - https://github.com/acme/widgets/tree/main/docs/guide\n" +
			"📄 index.md - https://github.com/acme/widgets/blob/main/docs/index.md\n\n" +
			"Repository: acme/widgets (https://github.com/acme/widgets)"
		assert.Equal(t, expected, ghdocs.FormatBrowseResult(result))
	})

	t.Run("reports empty directory", func(t *testing.T) {
		t.Parallel()

		result := &ghdocs.BrowseResult{Kind: ghdocs.ResultDirectory, Path: "docs", Repository: repo}

		assert.Contains(t, ghdocs.FormatBrowseResult(result), "\n\nEmpty directory\n\n")
	})

	t.Run("wraps file content in fenced block", func(t *testing.T) {
		t.Parallel()

		result := &ghdocs.BrowseResult{
			Kind:       ghdocs.ResultFile,
			Path:       "docs/guide.md",
			Content:    "# Guide",
			Repository: repo,
		}

		expected := "### File: docs/guide.md\n\n" +
			"Repository: acme/widgets (https://github.com/acme/widgets)\n\n" +
			"```\n# Guide\n```"
		assert.Equal(t, expected, ghdocs.FormatBrowseResult(result))
	})
}

func TestFormatMappingAdded(t *testing.T) {
	t.Parallel()

	got := ghdocs.FormatMappingAdded("widgets", "https://github.com/acme/widgets", "docs")

	assert.Equal(t, "✅ Successfully added repository mapping:\n- Name: widgets\n- URL: https://github.com/acme/widgets\n- Docs Path: docs", got)
}

func TestFormatMappings(t *testing.T) {
	t.Parallel()

	t.Run("lists mappings in order", func(t *testing.T) {
		t.Parallel()

		got := ghdocs.FormatMappings([]ghdocs.MappingEntry{
			{Name: "datajoint-python", Mapping: ghdocs.Mapping{URL: "https://github.com/datajoint/datajoint-python", DocsPath: "docs/src"}},
			{Name: "acme/widgets", Mapping: ghdocs.Mapping{URL: "https://github.com/acme/widgets", DocsPath: "docs"}},
		})

		expected := "### Repository mappings\n\n" +
			"- datajoint-python: https://github.com/datajoint/datajoint-python (docs: docs/src)\n" +
			"- acme/widgets: https://github.com/acme/widgets (docs: docs)"
		assert.Equal(t, expected, got)
	})

	t.Run("reports empty table", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "No repository mappings", ghdocs.FormatMappings(nil))
	})
}
