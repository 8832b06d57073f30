package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewService_Matrix(t *testing.T) {
	svc, err := NewService("matrix", []byte(`
homeserverURL: https://matrix.example.org/
accessToken: token
`), nil)

	if !assert.NoError(t, err) {
		return
	}
	matrix, ok := svc.(*matrixService)
	if assert.True(t, ok) {
		assert.Equal(t, "https://matrix.example.org", matrix.opts.HomeserverURL)
		assert.Equal(t, "token", matrix.opts.AccessToken)
	}
}

func TestNewService_Unsupported(t *testing.T) {
	_, err := NewService("slack", nil, nil)

	assert.EqualError(t, err, "service type 'slack' is not supported")
}

func TestConsoleService(t *testing.T) {
	var out bytes.Buffer
	svc, err := NewService("console", nil, &out)
	if !assert.NoError(t, err) {
		return
	}

	err = svc.Send(context.Background(), Notification{Message: "hello"}, Destination{Service: "console", Recipient: "room"})

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "message: hello")
	assert.Contains(t, out.String(), "recipient: room")
}

func TestPreview(t *testing.T) {
	n := Notification{Message: strings.Repeat("a", 120) + "\nsecond line"}
	assert.Equal(t, strings.Repeat("a", 99)+"...", n.Preview())

	n = Notification{FormattedMessage: "rich"}
	assert.Equal(t, `{"formattedMessage":"rich"}`, n.Preview())
}
