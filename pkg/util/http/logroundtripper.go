package http

import (
	"net/http"
	"net/http/httputil"
)

// Logger is satisfied by *logrus.Entry.
type Logger interface {
	Debugf(format string, args ...interface{})
}

func NewLoggingRoundTripper(roundTripper http.RoundTripper, entry Logger) http.RoundTripper {
	return &logRoundTripper{roundTripper: roundTripper, entry: entry}
}

type logRoundTripper struct {
	roundTripper http.RoundTripper
	entry        Logger
}

func (rt *logRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if info, err := httputil.DumpRequest(redactQuery(req), true); err == nil {
		rt.entry.Debugf("Sending request: %s", string(info))
	}
	resp, err := rt.roundTripper.RoundTrip(req)
	if resp != nil {
		if info, err := httputil.DumpResponse(resp, true); err == nil {
			rt.entry.Debugf("Received response: %s", string(info))
		}
	}
	return resp, err
}

// redactQuery hides the access token passed as query parameter.
func redactQuery(req *http.Request) *http.Request {
	query := req.URL.Query()
	if query.Get("access_token") == "" {
		return req
	}
	query.Set("access_token", "******")
	u := *req.URL
	u.RawQuery = query.Encode()

	clone := req.Clone(req.Context())
	clone.URL = &u
	clone.Body = http.NoBody
	if req.GetBody != nil {
		if body, err := req.GetBody(); err == nil {
			clone.Body = body
		}
	}
	return clone
}
