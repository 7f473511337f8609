package ghdocs

import "regexp"

// GitHubHost is the repository hosting domain recognized in identifiers.
const GitHubHost = "github.com"

var (
	repoURLPattern  = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)`)
	repoNamePattern = regexp.MustCompile(`^([^/]+)/([^/]+)$`)
)

// Repository identifies a GitHub repository.
type Repository struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// FullName returns the repository in "owner/name" form.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// URL returns the browsable web URL of the repository.
func (r Repository) URL() string {
	return "https://" + GitHubHost + "/" + r.FullName()
}

// IsZero reports whether the repository is unset.
func (r Repository) IsZero() bool {
	return r.Owner == "" && r.Name == ""
}

// NormalizeIdentifier canonicalizes a repository reference into the key
// used by MappingTable. URLs containing github.com/owner/repo become
// "owner/repo"; anything else, including bare names, is returned unchanged.
func NormalizeIdentifier(identifier string) string {
	if m := repoURLPattern.FindStringSubmatch(identifier); m != nil {
		return m[1] + "/" + m[2]
	}
	return identifier
}

// ParseRepository extracts the owner and name from a GitHub URL or an
// "owner/repo" string. Returns EINVALID for any other shape.
func ParseRepository(identifier string) (Repository, error) {
	if m := repoURLPattern.FindStringSubmatch(identifier); m != nil {
		return Repository{Owner: m[1], Name: m[2]}, nil
	}
	if m := repoNamePattern.FindStringSubmatch(identifier); m != nil {
		return Repository{Owner: m[1], Name: m[2]}, nil
	}
	return Repository{}, Errorf(EINVALID, "invalid GitHub repository URL or name: %s", identifier)
}
