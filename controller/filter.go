package controller

import (
	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"
	log "github.com/sirupsen/logrus"

	"github.com/argoproj-labs/matrix-build-notifications/pkg/build"
	exprHelpers "github.com/argoproj-labs/matrix-build-notifications/pkg/expr"
)

func compileFilter(code string) (*vm.Program, error) {
	if code == "" {
		return nil, nil
	}
	return expr.Compile(code)
}

func filterVars(event build.Event, state build.State) map[string]interface{} {
	return exprHelpers.Spawn(map[string]interface{}{
		"props":    map[string]interface{}(event.Properties),
		"state":    string(state),
		"complete": event.Complete,
		"result":   event.Result.String(),
		"url":      event.URL,
	})
}

// passesFilter treats evaluation errors and non boolean results as a pass so a broken
// filter never silences notifications.
func passesFilter(prog *vm.Program, vars map[string]interface{}, logEntry *log.Entry) bool {
	if prog == nil {
		return true
	}
	val, err := expr.Run(prog, vars)
	if err != nil {
		logEntry.Warnf("Failed to evaluate filter: %v", err)
		return true
	}
	res, ok := val.(bool)
	if !ok {
		logEntry.Warnf("Filter returned %v instead of a boolean", val)
		return true
	}
	return res
}
