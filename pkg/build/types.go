package build

import (
	"fmt"
	"strconv"
)

const (
	RepositoryNameProperty = "repository_name"
	OwnerProperty          = "owner"
	PullRequestIDProperty  = "pr_id"
)

// Result is the build result code reported by the orchestrator.
type Result int

const (
	Success Result = iota
	Warnings
	Failure
	Skipped
	Exception
	Retry
	Cancelled
)

var resultNames = map[Result]string{
	Success:   "success",
	Warnings:  "warnings",
	Failure:   "failure",
	Skipped:   "skipped",
	Exception: "exception",
	Retry:     "retry",
	Cancelled: "cancelled",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return "unknown(" + strconv.Itoa(int(r)) + ")"
}

// Results returns every known result code in ascending order.
func Results() []Result {
	return []Result{Success, Warnings, Failure, Skipped, Exception, Retry, Cancelled}
}

// Properties is a read-only snapshot of the build properties.
type Properties map[string]interface{}

func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// GetString returns the property formatted as a string.
func (p Properties) GetString(key string) (string, bool) {
	val, ok := p[key]
	if !ok || val == nil {
		return "", ok
	}
	if s, isString := val.(string); isString {
		return s, true
	}
	return fmt.Sprintf("%v", val), true
}

// Clone returns a shallow copy so callers cannot mutate the orchestrator snapshot.
func (p Properties) Clone() Properties {
	res := make(Properties, len(p))
	for k, v := range p {
		res[k] = v
	}
	return res
}

type SourceStamp struct {
	// Revision is nil when the stamp does not point at a concrete commit.
	Revision      *string `json:"revision"`
	RepositoryURL string  `json:"repository"`
}

// Event is one start or completion callback of a build.
type Event struct {
	Complete     bool          `json:"complete"`
	Result       Result        `json:"results"`
	Properties   Properties    `json:"properties"`
	SourceStamps []SourceStamp `json:"sourcestamps"`
	URL          string        `json:"url"`
}

// Overrides are the explicit values the properties may carry to short-circuit resolution.
type Overrides struct {
	Owner       *string
	RepoName    *string
	PullRequest bool
}

func OverridesFromProperties(props Properties) Overrides {
	var res Overrides
	if owner, ok := props.GetString(OwnerProperty); ok {
		res.Owner = &owner
	}
	if name, ok := props.GetString(RepositoryNameProperty); ok {
		res.RepoName = &name
	}
	res.PullRequest = props.Has(PullRequestIDProperty)
	return res
}
