package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/argoproj-labs/matrix-build-notifications/pkg/build"
)

func strPtr(val string) *string {
	return &val
}

func TestResolve_SSH(t *testing.T) {
	for in, expected := range map[string]Repository{
		"ssh://git@host:22/acme/widgets.git":        {Owner: "acme", Name: "widgets"},
		"ssh://git@host/acme/widgets":               {Owner: "acme", Name: "widgets"},
		"git@github.com:argoproj/argo-cd.git":       {Owner: "argoproj", Name: "argo-cd"},
		"git@gitlab.example.com:group/sub/repo.git": {Owner: "group/sub", Name: "repo"},
		"  git@github.com:acme/widgets.git\n":       {Owner: "acme", Name: "widgets"},
	} {
		assert.Equal(t, expected, Resolve(build.Overrides{}, in), in)
	}
}

func TestResolve_NotMatching(t *testing.T) {
	for _, in := range []string{
		"",
		"not a repository",
		"https://example.com/widgets",
		"https://github.com/acme/widgets",
		"https://github.com/acme/widgets.git",
		"/srv/git/acme/widgets.git",
	} {
		assert.Equal(t, Repository{}, Resolve(build.Overrides{}, in), in)
	}
}

func TestResolve_Overrides(t *testing.T) {
	res := Resolve(build.Overrides{Owner: strPtr("override")}, "ssh://git@host:22/acme/widgets.git")
	assert.Equal(t, Repository{Owner: "override", Name: "widgets"}, res)

	res = Resolve(build.Overrides{RepoName: strPtr("gadgets")}, "ssh://git@host:22/acme/widgets.git")
	assert.Equal(t, Repository{Owner: "acme", Name: "gadgets"}, res)

	res = Resolve(build.Overrides{Owner: strPtr("o"), RepoName: strPtr("r")}, "not a repository")
	assert.Equal(t, Repository{Owner: "o", Name: "r"}, res)

	res = Resolve(build.Overrides{Owner: strPtr("o")}, "not a repository")
	assert.Equal(t, Repository{Owner: "o"}, res)
}
