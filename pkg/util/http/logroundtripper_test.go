package http

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestLoggingRoundTripper_RedactsToken(t *testing.T) {
	var receivedBody string
	var receivedToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := ioutil.ReadAll(r.Body)
		receivedBody = string(data)
		receivedToken = r.URL.Query().Get("access_token")
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewClient(false, logger)
	req, err := http.NewRequest(http.MethodPost, server.URL+"/send?access_token=secret", bytes.NewBufferString("hello"))
	if !assert.NoError(t, err) {
		return
	}

	resp, err := client.Do(req)
	if !assert.NoError(t, err) {
		return
	}
	_ = resp.Body.Close()

	assert.Equal(t, "hello", receivedBody)
	assert.Equal(t, "secret", receivedToken)
	if assert.Len(t, logger.lines, 2) {
		assert.NotContains(t, logger.lines[0], "secret")
		assert.Contains(t, logger.lines[0], "hello")
	}
}
