package repo

import (
	"regexp"
	"strings"

	giturls "github.com/whilp/git-urls"

	"github.com/argoproj-labs/matrix-build-notifications/pkg/build"
	"github.com/argoproj-labs/matrix-build-notifications/pkg/repo"
	"github.com/argoproj-labs/matrix-build-notifications/pkg/util/text"
)

var (
	gitSuffix = regexp.MustCompile(`\.git$`)
)

// parse accepts any remote git-urls understands, unlike the notification resolver
// which only knows ssh remotes.
func parse(rawURL string) repo.Repository {
	if res := repo.Resolve(build.Overrides{}, rawURL); res.Owner != "" || res.Name != "" {
		return res
	}
	parsed, err := giturls.Parse(rawURL)
	if err != nil || parsed.Scheme == "file" || parsed.Host == "" {
		return repo.Repository{}
	}
	path := gitSuffix.ReplaceAllString(parsed.Path, "")
	parts := text.SplitRemoveEmpty(path, "/")
	if len(parts) < 2 {
		return repo.Repository{}
	}
	return repo.Repository{Owner: strings.Join(parts[:len(parts)-1], "/"), Name: parts[len(parts)-1]}
}

func fullNameByRepoURL(rawURL string) string {
	res := parse(rawURL)
	if res.Owner == "" && res.Name == "" {
		return ""
	}
	return res.FullName()
}

func ownerByRepoURL(rawURL string) string {
	return parse(rawURL).Owner
}

func nameByRepoURL(rawURL string) string {
	return parse(rawURL).Name
}

func repoURLToHTTPS(rawURL string) string {
	parsed, err := giturls.Parse(rawURL)
	if err != nil {
		panic(err)
	}
	parsed.Scheme = "https"
	parsed.User = nil
	return parsed.String()
}

func NewExprs() map[string]interface{} {
	return map[string]interface{}{
		"RepoURLToHTTPS": repoURLToHTTPS,
		"FullName":       fullNameByRepoURL,
		"Owner":          ownerByRepoURL,
		"Name":           nameByRepoURL,
	}
}
