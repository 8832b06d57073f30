package tools

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/argoproj-labs/matrix-build-notifications/shared/settings"
)

type commandContext struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath string
	secretPath string
}

func (c *commandContext) getConfig() (*settings.Config, error) {
	return settings.Load(c.configPath, c.secretPath)
}

func withDebugLogs() func() {
	level := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	return func() {
		log.SetLevel(level)
	}
}

func NewToolsCommand() *cobra.Command {
	cmdContext := commandContext{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	return newToolsCommand(&cmdContext)
}

func newToolsCommand(cmdContext *commandContext) *cobra.Command {
	var command = cobra.Command{
		Use:   "tools",
		Short: "Set of CLI commands that helps to configure the controller",
		Run: func(c *cobra.Command, args []string) {
			c.HelpFunc()(c, args)
		},
	}

	command.AddCommand(newRenderCommand(cmdContext))

	command.PersistentFlags().StringVar(&cmdContext.configPath, "config", "", "Configuration file path")
	command.PersistentFlags().StringVar(&cmdContext.secretPath, "secret", "", "Secrets file path")
	return &command
}
