package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"
)

// Notification is the rendered message handed to a service.
type Notification struct {
	Message          string `json:"message,omitempty"`
	FormattedMessage string `json:"formattedMessage,omitempty"`
	Color            string `json:"color,omitempty"`
}

// Destination holds notification destination details
type Destination struct {
	Service   string `json:"service"`
	Recipient string `json:"recipient"`
}

//go:generate mockgen -destination=./mocks/mocks.go -package=mocks github.com/argoproj-labs/matrix-build-notifications/pkg/services NotificationService

// NotificationService defines notification service interface
type NotificationService interface {
	Send(ctx context.Context, notification Notification, dest Destination) error
}

// NewService creates a service of the given type. The console service writes to out.
func NewService(serviceType string, optsData []byte, out io.Writer) (NotificationService, error) {
	switch serviceType {
	case "matrix":
		var opts MatrixOptions
		if err := yaml.Unmarshal(optsData, &opts); err != nil {
			return nil, err
		}
		return NewMatrixService(opts), nil
	case "console":
		return NewConsoleService(out), nil
	default:
		return nil, fmt.Errorf("service type '%s' is not supported", serviceType)
	}
}

func (n *Notification) Preview() string {
	preview := ""
	switch {
	case n.Message != "":
		preview = n.Message
	default:
		if data, err := json.Marshal(n); err != nil {
			preview = "failed to generate preview"
		} else {
			preview = string(data)
		}
	}
	preview = strings.Split(preview, "\n")[0]
	if len(preview) > 100 {
		preview = preview[:99] + "..."
	}
	return preview
}
