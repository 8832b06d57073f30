package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapState_Completed(t *testing.T) {
	for result, expected := range map[Result]State{
		Success:   StateSuccess,
		Warnings:  StateWarning,
		Failure:   StateFailure,
		Skipped:   StateSuccess,
		Exception: StateError,
		Retry:     StatePending,
		Cancelled: StateError,
	} {
		assert.Equal(t, expected, MapState(true, result, false), result.String())
	}
}

func TestMapState_UnknownResultIsFailure(t *testing.T) {
	assert.Equal(t, StateFailure, MapState(true, Result(42), false))
	assert.Equal(t, StateFailure, MapState(true, Result(-1), true))
}

func TestMapState_NotCompleteIsPending(t *testing.T) {
	for _, result := range append(Results(), Result(42)) {
		assert.Equal(t, StatePending, MapState(false, result, false))
		assert.Equal(t, StatePending, MapState(false, result, true))
	}
}

func TestMapState_WarningAsSuccess(t *testing.T) {
	assert.Equal(t, StateSuccess, MapState(true, Warnings, true))
	assert.Equal(t, StateWarning, MapState(true, Warnings, false))
	assert.Equal(t, StateFailure, MapState(true, Failure, true))
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "warnings", Warnings.String())
	assert.Equal(t, "unknown(9)", Result(9).String())
}

func TestOverridesFromProperties(t *testing.T) {
	overrides := OverridesFromProperties(Properties{
		OwnerProperty:         "acme",
		PullRequestIDProperty: 17,
	})

	if assert.NotNil(t, overrides.Owner) {
		assert.Equal(t, "acme", *overrides.Owner)
	}
	assert.Nil(t, overrides.RepoName)
	assert.True(t, overrides.PullRequest)

	overrides = OverridesFromProperties(Properties{RepositoryNameProperty: "widgets"})
	assert.Nil(t, overrides.Owner)
	if assert.NotNil(t, overrides.RepoName) {
		assert.Equal(t, "widgets", *overrides.RepoName)
	}
	assert.False(t, overrides.PullRequest)
}
