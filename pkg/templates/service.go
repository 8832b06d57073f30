package templates

import (
	"bytes"
	"fmt"
	texttemplate "text/template"

	"github.com/Masterminds/sprig"

	"github.com/argoproj-labs/matrix-build-notifications/pkg/build"
)

const (
	ContextTemplate            = "context"
	ContextPullRequestTemplate = "contextPullRequest"
	StartDescriptionTemplate   = "startDescription"
	EndDescriptionTemplate     = "endDescription"

	propertiesVarName = "prop"
)

// Renderer renders named templates against the build properties.
type Renderer interface {
	Render(name string, props build.Properties) (string, error)
}

type service struct {
	templates map[string]*texttemplate.Template
}

// NewService compiles the given templates. Properties are exposed as {{.prop.<name>}} and
// referencing a missing property fails the rendering.
func NewService(templates map[string]string) (*service, error) {
	f := sprig.TxtFuncMap()
	delete(f, "env")
	delete(f, "expandenv")

	svc := &service{templates: map[string]*texttemplate.Template{}}
	for name, text := range templates {
		tmpl, err := texttemplate.New(name).Funcs(f).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %v", name, err)
		}
		svc.templates[name] = tmpl
	}
	return svc, nil
}

func (s *service) Render(name string, props build.Properties) (string, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("template '%s' is not supported", name)
	}
	if props == nil {
		props = build.Properties{}
	}
	var data bytes.Buffer
	if err := tmpl.Execute(&data, map[string]interface{}{propertiesVarName: props}); err != nil {
		return "", err
	}
	return data.String(), nil
}

// ResolveContext renders the label of the build, using the pull request template when the
// properties carry a pull request identifier.
func ResolveContext(r Renderer, props build.Properties) (string, error) {
	name := ContextTemplate
	if props.Has(build.PullRequestIDProperty) {
		name = ContextPullRequestTemplate
	}
	return r.Render(name, props)
}
