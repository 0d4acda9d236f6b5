// Package notification talks to the push provider over the direct route and the relays.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rollcall/config"
	"rollcall/internal/domain/entity"
	"rollcall/internal/domain/service"
	"rollcall/internal/errors"

	"firebase.google.com/go/v4/messaging"
)

// maxResponseBytes caps how much of a response body is read for classification.
const maxResponseBytes = 64 << 10

// HTTPGateway sends one push request per attempt and classifies the response.
type HTTPGateway struct {
	client         *http.Client
	legacyEndpoint string
	v1Endpoint     string
	attemptTimeout time.Duration
}

// NewHTTPGateway creates the gateway. A nil client uses a fresh http.Client.
func NewHTTPGateway(cfg *config.DispatchConfig, client *http.Client) *HTTPGateway {
	if client == nil {
		client = &http.Client{}
	}

	return &HTTPGateway{
		client:         client,
		legacyEndpoint: cfg.LegacyEndpoint,
		v1Endpoint:     strings.TrimRight(cfg.V1Endpoint, "/"),
		attemptTimeout: cfg.AttemptTimeout,
	}
}

var _ service.PushGateway = (*HTTPGateway)(nil)

type legacyNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type legacyRequest struct {
	To           string             `json:"to"`
	Notification legacyNotification `json:"notification"`
	Data         map[string]string  `json:"data,omitempty"`
}

type v1Request struct {
	Message *messaging.Message `json:"message"`
}

// Attempt performs a single request over attempt.Route.
func (g *HTTPGateway) Attempt(ctx context.Context, attempt *service.PushAttempt) (*entity.AttemptResult, error) {
	if attempt == nil || attempt.Message == nil {
		return nil, errors.New("push attempt requires a message")
	}

	target, payload, authorization, err := g.buildRequest(attempt)
	if err != nil {
		return nil, err
	}

	if g.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.attemptTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, attempt.Route.Resolve(target), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrapf(err, "build request for route %s", attempt.Route.Name)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", authorization)

	resp, err := g.client.Do(req)
	if err != nil {
		return &entity.AttemptResult{
			Class:  entity.AttemptTransportFailure,
			Detail: g.transportDetail(err),
		}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &entity.AttemptResult{
			Class:      entity.AttemptTransportFailure,
			StatusCode: resp.StatusCode,
			Detail:     "read response: " + g.transportDetail(err),
		}, nil
	}

	return classifyResponse(attempt.Dialect, attempt.Route, resp.StatusCode, resp.Header.Get("Content-Type"), body), nil
}

func (g *HTTPGateway) buildRequest(attempt *service.PushAttempt) (target string, payload []byte, authorization string, err error) {
	msg := attempt.Message

	switch attempt.Dialect {
	case entity.DialectLegacyKeyed:
		payload, err = json.Marshal(&legacyRequest{
			To:           attempt.Address,
			Notification: legacyNotification{Title: msg.Title, Body: msg.Body},
			Data:         msg.Data,
		})

		return g.legacyEndpoint, payload, "key=" + attempt.Credential, errors.Wrap(err, "encode legacy request")

	case entity.DialectBearerTokenV1:
		if attempt.ProjectID == "" {
			return "", nil, "", errors.New("project id is required for the v1 push API")
		}
		payload, err = json.Marshal(&v1Request{Message: &messaging.Message{
			Token:        attempt.Address,
			Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
			Data:         msg.Data,
		}})
		target = fmt.Sprintf("%s/%s/messages:send", g.v1Endpoint, url.PathEscape(attempt.ProjectID))

		return target, payload, "Bearer " + attempt.Credential, errors.Wrap(err, "encode v1 request")

	default:
		return "", nil, "", errors.Errorf("dialect %s has no network request", attempt.Dialect)
	}
}

func (g *HTTPGateway) transportDetail(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("request timed out after %s", g.attemptTimeout)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}

	return err.Error()
}
