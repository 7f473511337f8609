package ghdocs

import (
	"fmt"
	"strings"
)

// FormatBrowseResult renders a browse result as human-readable text.
// Directory listings show one entry per line with a folder or file marker;
// file results wrap the content in a fenced block.
func FormatBrowseResult(r *BrowseResult) string {
	repo := fmt.Sprintf("Repository: %s (%s)", r.Repository.Name, r.Repository.URL)

	if r.Kind == ResultFile {
		return "### File: " + r.Path + "\n\n" + repo + "\n\n```\n" + r.Content + "\n```"
	}

	listing := "Empty directory"
	if len(r.Items) > 0 {
		lines := make([]string, 0, len(r.Items))
		for _, item := range r.Items {
			marker := "📄"
			if item.IsDir() {
				marker = "📁"
			}
			lines = append(lines, marker+" "+item.Name+" - "+item.URL)
		}
		listing = strings.Join(lines, "\n")
	}

	return "### Directory: " + r.Path + "\n\n" + listing + "\n\n" + repo
}

// FormatMappingAdded renders the confirmation for a newly added mapping.
func FormatMappingAdded(name, url, docsPath string) string {
	return "✅ Successfully added repository mapping:\n" +
		"- Name: " + name + "\n" +
		"- URL: " + url + "\n" +
		"- Docs Path: " + docsPath
}

// FormatMappings renders all mappings, one per line, in the given order.
func FormatMappings(entries []MappingEntry) string {
	if len(entries) == 0 {
		return "No repository mappings"
	}

	lines := make([]string, 0, len(entries)+2)
	lines = append(lines, "### Repository mappings", "")
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("- %s: %s (docs: %s)", e.Name, e.URL, e.DocsPath))
	}
	return strings.Join(lines, "\n")
}
