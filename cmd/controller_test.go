package main

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/argoproj-labs/matrix-build-notifications/pkg/services"
	"github.com/argoproj-labs/matrix-build-notifications/shared/settings"
)

func TestConfigureLogging(t *testing.T) {
	level := log.GetLevel()
	formatter := log.StandardLogger().Formatter
	defer func() {
		log.SetLevel(level)
		log.SetFormatter(formatter)
	}()

	assert.NoError(t, configureLogging("debug", "json"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	assert.Error(t, configureLogging("verbose", "text"))
	assert.EqualError(t, configureLogging("info", "xml"), "Unknown log format 'xml'")
}

func TestNewNotificationService(t *testing.T) {
	cfg := settings.Config{HomeserverURL: "https://matrix.example.org", AccessToken: "token"}
	var out bytes.Buffer

	service, err := newNotificationService(cfg, false, &out)
	assert.NoError(t, err)
	assert.NotNil(t, service)

	service, err = newNotificationService(cfg, true, &out)
	assert.NoError(t, err)
	assert.IsType(t, services.NewConsoleService(&out), service)
}

func TestNewCommand(t *testing.T) {
	command := newCommand()

	var names []string
	for _, c := range command.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"controller", "tools"}, names)
}
