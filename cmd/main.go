package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/argoproj-labs/matrix-build-notifications/cmd/tools"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var command = cobra.Command{
		Use:   "matrix-build-notifications",
		Short: "Reports build pipeline events to a Matrix room",
		Run: func(c *cobra.Command, args []string) {
			c.HelpFunc()(c, args)
		},
	}
	command.AddCommand(newControllerCommand())
	command.AddCommand(tools.NewToolsCommand())
	return &command
}
