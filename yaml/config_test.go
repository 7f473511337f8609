package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/ghdocs"
	"github.com/fwojciec/ghdocs/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("empty document yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse(nil)

		require.NoError(t, err)
		assert.Equal(t, ghdocs.DefaultConfig(), cfg)
	})

	t.Run("appends repositories in file order with normalized keys", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse([]byte(`
repositories:
  https://github.com/acme/widgets:
    url: https://github.com/acme/widgets
    docsPath: site/content
  zeta:
    url: https://github.com/acme/zeta
    docsPath: docs
  alpha:
    url: https://github.com/acme/alpha
    docsPath: documentation
`))

		require.NoError(t, err)
		names := make([]string, 0, len(cfg.Repositories))
		for _, r := range cfg.Repositories {
			names = append(names, r.Name)
		}
		assert.Equal(t, []string{"datajoint-python", "acme/widgets", "zeta", "alpha"}, names)
		assert.Equal(t, ghdocs.Mapping{URL: "https://github.com/acme/widgets", DocsPath: "site/content"}, cfg.Repositories[1].Mapping)
		assert.Equal(t, ghdocs.DefaultCandidatePaths(), cfg.CandidatePaths)
		assert.Equal(t, ghdocs.DefaultIndicatorFiles(), cfg.IndicatorFiles)
	})

	t.Run("lists replace defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse([]byte(`
candidatePaths: [manual, docs]
indicatorFiles:
  - book.toml
`))

		require.NoError(t, err)
		assert.Equal(t, []string{"manual", "docs"}, cfg.CandidatePaths)
		assert.Equal(t, []string{"book.toml"}, cfg.IndicatorFiles)
		assert.Equal(t, ghdocs.DefaultMappings(), cfg.Repositories)
	})

	t.Run("null repositories are ignored", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse([]byte("repositories:\n"))

		require.NoError(t, err)
		assert.Equal(t, ghdocs.DefaultMappings(), cfg.Repositories)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			input   string
			message string
		}{
			{"malformed", "repositories: [", "invalid YAML"},
			{"repositories as list", "repositories:\n  - a\n", "repositories must be a mapping"},
			{"missing url", "repositories:\n  a:\n    docsPath: docs\n", `repository "a": url is required`},
			{"missing docsPath", "repositories:\n  a:\n    url: https://github.com/x/a\n", `repository "a": docsPath is required`},
			{"empty candidate list", "candidatePaths: []\n", "candidatePaths must not be empty"},
			{"blank indicator", "indicatorFiles: [a, '']\n", "indicatorFiles[1] is empty"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				_, err := yaml.Parse([]byte(tt.input))

				require.Error(t, err)
				assert.Equal(t, ghdocs.EINVALID, ghdocs.ErrorCode(err))
				assert.Contains(t, err.Error(), tt.message)
			})
		}
	})

	t.Run("defaults are not shared between calls", func(t *testing.T) {
		t.Parallel()

		first, err := yaml.Parse([]byte("candidatePaths: [only]\n"))
		require.NoError(t, err)
		first.Repositories[0].DocsPath = "changed"

		second, err := yaml.Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, "docs/src", second.Repositories[0].DocsPath)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads file from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "ghdocs.yaml")
		require.NoError(t, os.WriteFile(path, []byte("candidatePaths: [handbook]\n"), 0o600))

		cfg, err := yaml.Load(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"handbook"}, cfg.CandidatePaths)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
		assert.Equal(t, ghdocs.ENOTFOUND, ghdocs.ErrorCode(err))
	})

	t.Run("invalid content keeps code and names file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("candidatePaths: []\n"), 0o600))

		_, err := yaml.Load(path)

		require.Error(t, err)
		assert.Equal(t, ghdocs.EINVALID, ghdocs.ErrorCode(err))
		assert.Contains(t, err.Error(), path)
	})
}
