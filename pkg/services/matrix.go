package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"

	httputil "github.com/argoproj-labs/matrix-build-notifications/pkg/util/http"
)

const (
	matrixMessageType   = "m.text"
	matrixMessageFormat = "org.matrix.custom.html"

	unspecifiedError = "unspecified error"
)

type MatrixOptions struct {
	HomeserverURL      string `json:"homeserverURL"`
	AccessToken        string `json:"accessToken"`
	InsecureSkipVerify bool   `json:"insecureSkipVerify"`
}

// DeliveryError is returned when the homeserver answers with a non-success status code.
type DeliveryError struct {
	StatusCode int
	Message    string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery failed with error code %d: %s", e.StatusCode, e.Message)
}

type matrixMessage struct {
	MsgType       string `json:"msgtype"`
	Format        string `json:"format"`
	Body          string `json:"body"`
	FormattedBody string `json:"formatted_body"`
}

type matrixService struct {
	opts   MatrixOptions
	client *http.Client
}

func NewMatrixService(opts MatrixOptions) NotificationService {
	opts.HomeserverURL = strings.TrimRight(opts.HomeserverURL, "/")
	return &matrixService{
		opts:   opts,
		client: httputil.NewClient(opts.InsecureSkipVerify, log.WithField("service", "matrix")),
	}
}

// Send posts the notification into the room named by dest.Recipient. It never retries.
func (s *matrixService) Send(ctx context.Context, notification Notification, dest Destination) error {
	body, err := json.Marshal(matrixMessage{
		MsgType:       matrixMessageType,
		Format:        matrixMessageFormat,
		Body:          notification.Message,
		FormattedBody: notification.FormattedMessage,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %v", err)
	}

	endpoint := fmt.Sprintf("%s/_matrix/client/r0/rooms/%s/send/m.room.message?access_token=%s",
		s.opts.HomeserverURL, url.PathEscape(dest.Recipient), url.QueryEscape(s.opts.AccessToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", withoutURL(err))
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to request: %v", withoutURL(err))
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	}

	data, _ := ioutil.ReadAll(res.Body)
	return &DeliveryError{StatusCode: res.StatusCode, Message: errorMessage(data)}
}

// withoutURL drops the request URL from the error since it carries the access token.
func withoutURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s %s: %v", urlErr.Op, redactURL(urlErr.URL), urlErr.Err)
	}
	return err
}

func redactURL(rawURL string) string {
	if i := strings.Index(rawURL, "?"); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}

func errorMessage(data []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return unspecifiedError
	}
	switch {
	case parsed.Message != "":
		return parsed.Message
	case parsed.Error != "":
		return parsed.Error
	default:
		return unspecifiedError
	}
}
