package repo

import (
	"regexp"
	"strings"

	"github.com/argoproj-labs/matrix-build-notifications/pkg/build"
)

var (
	sshRepoPattern = regexp.MustCompile(`^(?:ssh://)?[\w\-.]+@[\w\-.]+(?::\d+)?[:/](?P<owner>.*)/(?P<repo_name>.*?)(?:\.git)?$`)
	ownerIndex     = sshRepoPattern.SubexpIndex("owner")
	repoNameIndex  = sshRepoPattern.SubexpIndex("repo_name")
)

// Repository identifies a repository on the source control host. Empty fields are unresolved.
type Repository struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// Resolve returns the owner and name of the repository. Overrides win per field and the
// URL is only parsed for the fields that are not overridden.
func Resolve(overrides build.Overrides, repositoryURL string) Repository {
	var res Repository
	if overrides.Owner != nil {
		res.Owner = *overrides.Owner
	}
	if overrides.RepoName != nil {
		res.Name = *overrides.RepoName
	}
	if overrides.Owner != nil && overrides.RepoName != nil {
		return res
	}

	owner, name := parseRepoURL(repositoryURL)
	if overrides.Owner == nil {
		res.Owner = owner
	}
	if overrides.RepoName == nil {
		res.Name = name
	}
	return res
}

func parseRepoURL(rawURL string) (string, string) {
	m := sshRepoPattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if m == nil {
		return "", ""
	}
	return m[ownerIndex], m[repoNameIndex]
}
