package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ghodss/yaml"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/argoproj-labs/matrix-build-notifications/controller"
	"github.com/argoproj-labs/matrix-build-notifications/pkg/services"
	"github.com/argoproj-labs/matrix-build-notifications/server"
	"github.com/argoproj-labs/matrix-build-notifications/shared/settings"
)

const (
	defaultPort = 8080
)

func configureLogging(logLevel string, logFormat string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	switch strings.ToLower(logFormat) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text":
		if os.Getenv("FORCE_LOG_COLORS") == "1" {
			log.SetFormatter(&log.TextFormatter{ForceColors: true})
		}
	default:
		return fmt.Errorf("Unknown log format '%s'", logFormat)
	}
	return nil
}

func newNotificationService(cfg settings.Config, dryRun bool, out io.Writer) (services.NotificationService, error) {
	serviceType := "matrix"
	if dryRun {
		serviceType = "console"
	}
	opts, err := yaml.Marshal(cfg.MatrixOptions())
	if err != nil {
		return nil, err
	}
	return services.NewService(serviceType, opts, out)
}

func newControllerCommand() *cobra.Command {
	var (
		configPath  string
		secretPath  string
		envFilePath string
		port        int
		logLevel    string
		logFormat   string
		dryRun      bool
	)
	var command = cobra.Command{
		Use:   "controller",
		Short: "Starts the build notifications controller",
		RunE: func(c *cobra.Command, args []string) error {
			if err := configureLogging(logLevel, logFormat); err != nil {
				return err
			}
			if err := settings.LoadEnvFile(envFilePath); err != nil {
				return err
			}

			registry := controller.NewMetricsRegistry()
			reporter := controller.NewReporter(registry)

			log.Infof("loading configuration from %s", configPath)
			err := settings.WatchConfig(context.Background(), configPath, secretPath, func(cfg settings.Config) error {
				service, err := newNotificationService(cfg, dryRun, os.Stdout)
				if err != nil {
					return err
				}
				return reporter.Configure(cfg, service)
			})
			if err != nil {
				return err
			}

			return server.NewServer(reporter, registry).Serve(port)
		},
	}
	command.Flags().StringVar(&configPath, "config", "", "Configuration file location. Settings may also come from MATRIX_NOTIFICATIONS_* environment variables")
	command.Flags().StringVar(&secretPath, "secret", "", "Secrets file location. Values referenced as $key in the configuration are read from it")
	command.Flags().StringVar(&envFilePath, "env-file", ".env", "Dotenv file loaded before the configuration")
	command.Flags().IntVar(&port, "port", defaultPort, "Port serving build events and metrics")
	command.Flags().StringVar(&logLevel, "loglevel", "info", "Set the logging level. One of: debug|info|warn|error")
	command.Flags().StringVar(&logFormat, "logformat", "text", "Set the logging format. One of: text|json")
	command.Flags().BoolVar(&dryRun, "dry-run", false, "Print notifications to stdout instead of sending them")
	return &command
}
