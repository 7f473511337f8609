package ghdocs_test

import (
	"testing"

	"github.com/fwojciec/ghdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"https URL", "https://github.com/acme/widgets", "acme/widgets"},
		{"URL with subpath", "https://github.com/acme/widgets/tree/main/docs", "acme/widgets"},
		{"scheme-less URL", "github.com/acme/widgets", "acme/widgets"},
		{"owner/repo", "acme/widgets", "acme/widgets"},
		{"bare name", "datajoint-python", "datajoint-python"},
		{"free text", "not a repo", "not a repo"},
		{"empty", "", ""},
		{"non-github URL", "https://gitlab.com/acme/widgets", "https://gitlab.com/acme/widgets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ghdocs.NormalizeIdentifier(tt.input))
		})
	}
}

func TestNormalizeIdentifier_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"https://github.com/acme/widgets",
		"https://github.com/acme/widgets.git",
		"github.com/github.com/x",
		"github.com/github.com/github.com/x",
		"acme/widgets",
		"a/b/c",
		"datajoint-python",
		"not a repo",
		"",
		"/",
	}

	for _, in := range inputs {
		once := ghdocs.NormalizeIdentifier(in)
		assert.Equal(t, once, ghdocs.NormalizeIdentifier(once), "input %q", in)
	}
}

func TestParseRepository(t *testing.T) {
	t.Parallel()

	t.Run("parses GitHub URL", func(t *testing.T) {
		t.Parallel()

		repo, err := ghdocs.ParseRepository("https://github.com/acme/widgets")

		require.NoError(t, err)
		assert.Equal(t, ghdocs.Repository{Owner: "acme", Name: "widgets"}, repo)
	})

	t.Run("parses owner/repo", func(t *testing.T) {
		t.Parallel()

		repo, err := ghdocs.ParseRepository("acme/widgets")

		require.NoError(t, err)
		assert.Equal(t, "acme/widgets", repo.FullName())
		assert.Equal(t, "https://github.com/acme/widgets", repo.URL())
	})

	t.Run("rejects bare name", func(t *testing.T) {
		t.Parallel()

		_, err := ghdocs.ParseRepository("not a repo")

		require.Error(t, err)
		assert.Equal(t, ghdocs.EINVALID, ghdocs.ErrorCode(err))
		assert.Contains(t, err.Error(), "not a repo")
	})

	t.Run("rejects nested path without host", func(t *testing.T) {
		t.Parallel()

		_, err := ghdocs.ParseRepository("a/b/c")

		assert.Equal(t, ghdocs.EINVALID, ghdocs.ErrorCode(err))
	})
}

func TestRepository_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, ghdocs.Repository{}.IsZero())
	assert.False(t, ghdocs.Repository{Owner: "acme", Name: "widgets"}.IsZero())
}
