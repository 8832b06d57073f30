package message

import (
	"bytes"
	"fmt"
	"html"
	htmltemplate "html/template"

	"github.com/argoproj-labs/matrix-build-notifications/pkg/build"
	"github.com/argoproj-labs/matrix-build-notifications/pkg/repo"
	"github.com/argoproj-labs/matrix-build-notifications/pkg/util/text"
)

const (
	DefaultColor = "#bcbcb5"

	noDescription = "No Description"
	noTargetURL   = " "
	noContext     = "No Context"
)

var colors = map[build.State]string{
	build.StateSuccess: "#00d032",
	build.StateWarning: "#ff4500",
	build.StateFailure: "#a71010",
	build.StatePending: "#67d3ff",
	build.StateError:   "#a71010",
}

var richBody = htmltemplate.Must(htmltemplate.New("rich").Parse(
	`<a href="{{.TargetURL}}">` +
		`<blockquote style="border-left: 4px solid {{.Color}}; padding-left: 8px">` +
		`<h4>{{.Context}}: {{.State}}</h4>` +
		`<p>{{.Description}}</p>` +
		`<sub>{{.Repository.Name}}/{{.Revision}} by {{.Repository.Owner}}</sub>` +
		`</blockquote></a>`))

// Color returns the color of the state; states without a color get the default gray.
func Color(state build.State) string {
	if color, ok := colors[state]; ok {
		return color
	}
	return DefaultColor
}

type Input struct {
	State       build.State
	Context     string
	Repository  repo.Repository
	Revision    string
	TargetURL   string
	Description string
}

type Message struct {
	PlainBody string `json:"body"`
	RichBody  string `json:"formattedBody"`
	Color     string `json:"color"`
}

// Format builds the plain and html bodies. Missing optional fields are replaced by placeholders.
func Format(in Input) Message {
	in.Description = text.Coalesce(in.Description, noDescription)
	in.TargetURL = text.Coalesce(in.TargetURL, noTargetURL)
	in.Context = text.Coalesce(in.Context, noContext)

	msg := Message{
		Color: Color(in.State),
		PlainBody: fmt.Sprintf("%s: Build %s for %s/%s by %s - %s",
			in.Context, in.State, in.Repository.Name, in.Revision, in.Repository.Owner, in.TargetURL),
	}

	var data bytes.Buffer
	err := richBody.Execute(&data, struct {
		Input
		Color string
	}{in, msg.Color})
	if err != nil {
		msg.RichBody = html.EscapeString(msg.PlainBody)
	} else {
		msg.RichBody = data.String()
	}
	return msg
}
