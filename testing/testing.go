package testing

import (
	"github.com/argoproj-labs/matrix-build-notifications/pkg/build"
)

const (
	TestRoom          = "!room:example.org"
	TestBuildURL      = "https://ci.example.com/#builders/1/builds/7"
	TestRepositoryURL = "ssh://git@host:22/acme/widgets.git"
)

func WithResult(result build.Result) func(event *build.Event) {
	return func(event *build.Event) {
		event.Complete = true
		event.Result = result
	}
}

func WithProperty(name string, value interface{}) func(event *build.Event) {
	return func(event *build.Event) {
		event.Properties[name] = value
	}
}

func WithSourceStamp(repositoryURL string, revision string) func(event *build.Event) {
	return func(event *build.Event) {
		event.SourceStamps = append(event.SourceStamps, build.SourceStamp{RepositoryURL: repositoryURL, Revision: &revision})
	}
}

func WithoutRevision(repositoryURL string) func(event *build.Event) {
	return func(event *build.Event) {
		event.SourceStamps = append(event.SourceStamps, build.SourceStamp{RepositoryURL: repositoryURL})
	}
}

// NewEvent returns a started build of the "linux" builder.
func NewEvent(modifiers ...func(event *build.Event)) build.Event {
	event := build.Event{
		Properties: build.Properties{"buildername": "linux"},
		URL:        TestBuildURL,
	}
	for i := range modifiers {
		modifiers[i](&event)
	}
	return event
}
