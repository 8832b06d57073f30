package expr

import (
	"github.com/argoproj-labs/matrix-build-notifications/pkg/expr/repo"
)

var helpers = map[string]interface{}{}

func init() {
	register("repo", repo.NewExprs())
}

func register(namespace string, entry map[string]interface{}) {
	helpers[namespace] = entry
}

// Spawn returns the filter environment: the given variables plus the helper namespaces.
func Spawn(vars map[string]interface{}) map[string]interface{} {
	clone := make(map[string]interface{}, len(vars)+len(helpers))
	for namespace, helper := range helpers {
		clone[namespace] = helper
	}
	for k, v := range vars {
		clone[k] = v
	}
	return clone
}
