package http

import (
	"crypto/tls"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

func NewTransport(insecureSkipVerify bool) *http.Transport {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
	}
	if insecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}
	return transport
}

// NewClient returns a client that dumps requests and responses to the given entry at debug level.
func NewClient(insecureSkipVerify bool, entry Logger) *http.Client {
	return &http.Client{
		Transport: NewLoggingRoundTripper(NewTransport(insecureSkipVerify), entry),
		Timeout:   defaultTimeout,
	}
}
