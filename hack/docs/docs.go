package main

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/argoproj-labs/matrix-build-notifications/pkg/build"
	"github.com/argoproj-labs/matrix-build-notifications/pkg/message"
	"github.com/argoproj-labs/matrix-build-notifications/shared/settings"
)

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoWrapText(false)
	return table
}

func generate(out io.Writer) {
	fmt.Fprintln(out, "# Build States")
	fmt.Fprintln(out, "## Result Codes")

	results := newTable(out, "CODE", "RESULT", "STATE", "STATE (WARNING AS SUCCESS)", "COLOR")
	for _, r := range build.Results() {
		state := build.MapState(true, r, false)
		results.Append([]string{
			fmt.Sprintf("%d", r), r.String(), string(state),
			string(build.MapState(true, r, true)), fmt.Sprintf("`%s`", message.Color(state)),
		})
	}
	results.Append([]string{"other", "-", string(build.StateFailure), string(build.StateFailure),
		fmt.Sprintf("`%s`", message.Color(build.StateFailure))})
	results.Append([]string{"not complete", "-", string(build.StatePending), string(build.StatePending),
		fmt.Sprintf("`%s`", message.Color(build.StatePending))})
	results.Render()

	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "## Default Templates")
	templates := newTable(out, "SETTING", "DEFAULT")
	templates.Append([]string{"startDescription", fmt.Sprintf("`%s`", settings.DefaultStartDescription)})
	templates.Append([]string{"endDescription", fmt.Sprintf("`%s`", settings.DefaultEndDescription)})
	templates.Append([]string{"context", fmt.Sprintf("`%s`", settings.DefaultContext)})
	templates.Append([]string{"contextPullRequest", fmt.Sprintf("`%s`", settings.DefaultContextPullRequest)})
	templates.Render()
}

func main() {
	generate(os.Stdout)
}
