package services

import (
	"context"
	"io"

	"github.com/argoproj-labs/matrix-build-notifications/pkg/util/misc"
)

type consoleService struct {
	stdout io.Writer
}

func (c *consoleService) Send(_ context.Context, notification Notification, dest Destination) error {
	return misc.PrintFormatted(map[string]interface{}{
		"destination":  dest,
		"notification": notification,
	}, "yaml", c.stdout)
}

func NewConsoleService(stdout io.Writer) *consoleService {
	return &consoleService{stdout}
}
