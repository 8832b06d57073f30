package tools

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/argoproj-labs/matrix-build-notifications/controller"
	"github.com/argoproj-labs/matrix-build-notifications/pkg/build"
	"github.com/argoproj-labs/matrix-build-notifications/pkg/services"
)

func newRenderCommand(cmdContext *commandContext) *cobra.Command {
	var command = cobra.Command{
		Use:   "render EVENT",
		Short: "Prints the notifications the controller would send for the given build event",
		Example: `
# Render the notifications of a build saved as JSON
matrix-build-notifications tools render ./build.json --config ./config.yaml --secret ./secrets.yaml
`,
		RunE: func(c *cobra.Command, args []string) error {
			cancel := withDebugLogs()
			defer cancel()
			if len(args) < 1 {
				return fmt.Errorf("expected one argument, got %d", len(args))
			}
			cfg, err := cmdContext.getConfig()
			if err != nil {
				_, _ = fmt.Fprintf(cmdContext.stderr, "failed to parse config: %v\n", err)
				return nil
			}
			f, err := os.Open(args[0])
			if err != nil {
				_, _ = fmt.Fprintf(cmdContext.stderr, "failed to load build event: %v\n", err)
				return nil
			}
			defer f.Close()
			event, err := build.ParseEvent(f)
			if err != nil {
				_, _ = fmt.Fprintf(cmdContext.stderr, "failed to load build event: %v\n", err)
				return nil
			}

			reporter := controller.NewReporter(controller.NewMetricsRegistry())
			if err := reporter.Configure(*cfg, services.NewConsoleService(cmdContext.stdout)); err != nil {
				_, _ = fmt.Fprintf(cmdContext.stderr, "failed to configure reporter: %v\n", err)
				return nil
			}
			reporter.Report(context.Background(), event)
			return nil
		},
	}
	return &command
}
