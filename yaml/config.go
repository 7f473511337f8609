// Package yaml loads ghdocs configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/ghdocs"
	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Repositories   yaml.Node `yaml:"repositories"`
	CandidatePaths []string  `yaml:"candidatePaths"`
	IndicatorFiles []string  `yaml:"indicatorFiles"`
}

// Load reads the config file at path and merges it over the defaults.
func Load(path string) (*ghdocs.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ghdocs.Errorf(ghdocs.ENOTFOUND, "config file not found: %s", path)
		}
		return nil, ghdocs.WrapError(ghdocs.EINTERNAL, err, "reading config file %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, ghdocs.WrapError(ghdocs.ErrorCode(err), err, "config file %s", path)
	}
	return cfg, nil
}

// Parse decodes a YAML document and merges it over the defaults.
//
// Repositories are appended to the built-in mappings in file order, keyed by
// their normalized name. Candidate and indicator lists replace the defaults
// when present.
func Parse(data []byte) (*ghdocs.Config, error) {
	cfg := ghdocs.DefaultConfig()

	var fc fileConfig
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, ghdocs.WrapError(ghdocs.EINVALID, err, "invalid YAML")
	}

	repos, err := decodeRepositories(&fc.Repositories)
	if err != nil {
		return nil, err
	}
	cfg.Repositories = append(cfg.Repositories, repos...)

	if fc.CandidatePaths != nil {
		if err := validateList("candidatePaths", fc.CandidatePaths); err != nil {
			return nil, err
		}
		cfg.CandidatePaths = fc.CandidatePaths
	}
	if fc.IndicatorFiles != nil {
		if err := validateList("indicatorFiles", fc.IndicatorFiles); err != nil {
			return nil, err
		}
		cfg.IndicatorFiles = fc.IndicatorFiles
	}

	return cfg, nil
}

func decodeRepositories(node *yaml.Node) ([]ghdocs.MappingEntry, error) {
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, ghdocs.Errorf(ghdocs.EINVALID, "repositories must be a mapping (line %d)", node.Line)
	}

	entries := make([]ghdocs.MappingEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var m ghdocs.Mapping
		if err := value.Decode(&m); err != nil {
			return nil, ghdocs.WrapError(ghdocs.EINVALID, err, "repository %q (line %d)", key.Value, key.Line)
		}
		if key.Value == "" {
			return nil, ghdocs.Errorf(ghdocs.EINVALID, "repository name is empty (line %d)", key.Line)
		}
		if m.URL == "" {
			return nil, ghdocs.Errorf(ghdocs.EINVALID, "repository %q: url is required", key.Value)
		}
		if m.DocsPath == "" {
			return nil, ghdocs.Errorf(ghdocs.EINVALID, "repository %q: docsPath is required", key.Value)
		}

		entries = append(entries, ghdocs.MappingEntry{
			Name:    ghdocs.NormalizeIdentifier(key.Value),
			Mapping: m,
		})
	}
	return entries, nil
}

func validateList(field string, values []string) error {
	if len(values) == 0 {
		return ghdocs.Errorf(ghdocs.EINVALID, "%s must not be empty", field)
	}
	for i, v := range values {
		if v == "" {
			return ghdocs.Errorf(ghdocs.EINVALID, "%s[%d] is empty", field, i)
		}
	}
	return nil
}
