package ghdocs

// Config holds the seed data used to build a resolver.
type Config struct {
	// Repositories seed the mapping table, in order.
	Repositories []MappingEntry

	// CandidatePaths are probed in order during docs folder detection.
	CandidatePaths []string

	// IndicatorFiles mark a candidate as a genuine docs root, in priority order.
	IndicatorFiles []string
}

// DefaultConfig returns a fresh copy of the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Repositories:   DefaultMappings(),
		CandidatePaths: DefaultCandidatePaths(),
		IndicatorFiles: DefaultIndicatorFiles(),
	}
}

// DefaultMappings returns the built-in repository mappings.
func DefaultMappings() []MappingEntry {
	return []MappingEntry{
		{
			Name: "datajoint-python",
			Mapping: Mapping{
				URL:      "https://github.com/datajoint/datajoint-python",
				DocsPath: "docs/src",
			},
		},
	}
}

// DefaultCandidatePaths returns the directories commonly used for docs.
func DefaultCandidatePaths() []string {
	return []string{
		"docs",
		"doc",
		"documentation",
		"docs/src",
		"documentation/source",
		"site",
		"website",
	}
}

// DefaultIndicatorFiles returns files whose presence marks a docs root.
func DefaultIndicatorFiles() []string {
	return []string{
		"mkdocs.yml",
		"conf.py",
		"docusaurus.config.js",
		"sphinx.json",
		"README.md",
		"index.md",
		"index.html",
	}
}
