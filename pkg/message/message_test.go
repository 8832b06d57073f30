package message

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/argoproj-labs/matrix-build-notifications/pkg/build"
	"github.com/argoproj-labs/matrix-build-notifications/pkg/repo"
)

func TestColor(t *testing.T) {
	for state, expected := range map[build.State]string{
		build.StateSuccess: "#00d032",
		build.StateWarning: "#ff4500",
		build.StateFailure: "#a71010",
		build.StatePending: "#67d3ff",
		build.StateError:   "#a71010",
		build.StateUnknown: "#bcbcb5",
		"something-else":   "#bcbcb5",
	} {
		assert.Equal(t, expected, Color(state), string(state))
	}
}

func TestFormat(t *testing.T) {
	msg := Format(Input{
		State:       build.StateSuccess,
		Context:     "buildbot/linux",
		Repository:  repo.Repository{Owner: "acme", Name: "widgets"},
		Revision:    "abc123",
		TargetURL:   "https://ci.example.com/#builders/1/builds/2",
		Description: "Build done.",
	})

	assert.Equal(t, "#00d032", msg.Color)
	assert.Equal(t, "buildbot/linux: Build success for widgets/abc123 by acme - https://ci.example.com/#builders/1/builds/2", msg.PlainBody)
	assert.Contains(t, msg.RichBody, `<a href="https://ci.example.com/#builders/1/builds/2">`)
	assert.Contains(t, msg.RichBody, "#00d032")
	assert.Contains(t, msg.RichBody, "<h4>buildbot/linux: success</h4>")
	assert.Contains(t, msg.RichBody, "<p>Build done.</p>")
	assert.Contains(t, msg.RichBody, "widgets/abc123 by acme")
}

func TestFormat_Placeholders(t *testing.T) {
	msg := Format(Input{State: build.StatePending})

	assert.Equal(t, "#67d3ff", msg.Color)
	assert.Contains(t, msg.PlainBody, "No Context: Build pending")
	assert.Contains(t, msg.RichBody, "No Description")
	assert.Contains(t, msg.RichBody, "No Context")
}

func TestFormat_EscapesHTML(t *testing.T) {
	msg := Format(Input{
		State:       build.StateFailure,
		Context:     "<script>",
		Description: "a & b",
	})

	assert.NotContains(t, msg.RichBody, "<script>")
	assert.Contains(t, msg.RichBody, "a &amp; b")
}
