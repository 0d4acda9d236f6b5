package notification

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"rollcall/config"
	"rollcall/internal/domain/entity"
	"rollcall/internal/domain/service"
	"rollcall/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDeviceToken = "device-token-1234567890"

func newTestDispatchConfig(legacyEndpoint, v1Endpoint string) *config.DispatchConfig {
	cfg := &config.Config{Dispatch: &config.DispatchConfig{
		LegacyEndpoint: legacyEndpoint,
		V1Endpoint:     v1Endpoint,
		Relays:         []config.RelayConfig{},
		AttemptTimeout: time.Second,
		SimulatedDelay: time.Millisecond,
		SchoolName:     "Riverside Primary",
	}}
	cfg.ApplyDefaults()

	return cfg.Dispatch
}

func newTestMessage() *entity.OutboundMessage {
	return &entity.OutboundMessage{
		Title: "Attendance alert - Riverside Primary",
		Body:  "Notice: Ana is absent today.",
		Data: map[string]string{
			entity.DataKeyRecipientID: "S1001",
			entity.DataKeyState:       "absent",
			entity.DataKeyClickAction: entity.ClickActionOpenApp,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestHTTPGateway_Attempt_Legacy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/fcm/send", r.URL.Path)
		assert.Equal(t, "key=server-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			To           string            `json:"to"`
			Notification map[string]string `json:"notification"`
			Data         map[string]string `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, testDeviceToken, body.To)
		assert.Equal(t, "Notice: Ana is absent today.", body.Notification["body"])
		assert.Equal(t, "S1001", body.Data[entity.DataKeyRecipientID])

		writeJSON(w, http.StatusOK, `{"success":1,"failure":0,"results":[{"message_id":"0:1"}]}`)
	}))
	defer srv.Close()

	gateway := NewHTTPGateway(newTestDispatchConfig(srv.URL+"/fcm/send", ""), srv.Client())

	result, err := gateway.Attempt(context.Background(), &service.PushAttempt{
		Dialect:    entity.DialectLegacyKeyed,
		Credential: "server-key",
		Route:      entity.DirectRoute(),
		Address:    testDeviceToken,
		Message:    newTestMessage(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.AttemptSuccess, result.Class)
	assert.Equal(t, "0:1", result.MessageID)
}

func TestHTTPGateway_Attempt_V1(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/projects/school-app/messages:send", r.URL.Path)
		assert.Equal(t, "Bearer ya29.token", r.Header.Get("Authorization"))

		var body struct {
			Message struct {
				Token        string            `json:"token"`
				Notification map[string]string `json:"notification"`
				Data         map[string]string `json:"data"`
			} `json:"message"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, testDeviceToken, body.Message.Token)
		assert.Equal(t, "Attendance alert - Riverside Primary", body.Message.Notification["title"])
		assert.Equal(t, "absent", body.Message.Data[entity.DataKeyState])

		writeJSON(w, http.StatusOK, `{"name":"projects/school-app/messages/7"}`)
	}))
	defer srv.Close()

	gateway := NewHTTPGateway(newTestDispatchConfig("", srv.URL+"/v1/projects/"), srv.Client())

	result, err := gateway.Attempt(context.Background(), &service.PushAttempt{
		Dialect:    entity.DialectBearerTokenV1,
		Credential: "ya29.token",
		ProjectID:  "school-app",
		Route:      entity.DirectRoute(),
		Address:    testDeviceToken,
		Message:    newTestMessage(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.AttemptSuccess, result.Class)
	assert.Equal(t, "projects/school-app/messages/7", result.MessageID)
}

func TestHTTPGateway_Attempt_ThroughRelay(t *testing.T) {
	const providerURL = "https://push.example.test/fcm/send"

	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, providerURL, r.URL.Query().Get("target"))
		assert.Equal(t, "key=server-key", r.Header.Get("Authorization"))

		writeJSON(w, http.StatusOK, `{"success":0,"failure":1,"results":[{"error":"InvalidRegistration"}]}`)
	}))
	defer relay.Close()

	gateway := NewHTTPGateway(newTestDispatchConfig(providerURL, ""), relay.Client())

	result, err := gateway.Attempt(context.Background(), &service.PushAttempt{
		Dialect:    entity.DialectLegacyKeyed,
		Credential: "server-key",
		Route:      entity.Route{Name: "relay", Template: relay.URL + "/?target={url}"},
		Address:    testDeviceToken,
		Message:    newTestMessage(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.AttemptRecipientInvalid, result.Class)
	assert.Equal(t, "InvalidRegistration", result.ProviderError)
}

func TestHTTPGateway_Attempt_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	cfg := newTestDispatchConfig(srv.URL, "")
	cfg.AttemptTimeout = 50 * time.Millisecond
	gateway := NewHTTPGateway(cfg, srv.Client())

	result, err := gateway.Attempt(context.Background(), &service.PushAttempt{
		Dialect:    entity.DialectLegacyKeyed,
		Credential: "server-key",
		Route:      entity.DirectRoute(),
		Address:    testDeviceToken,
		Message:    newTestMessage(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.AttemptTransportFailure, result.Class)
	assert.Contains(t, result.Detail, "timed out")
}

func TestHTTPGateway_Attempt_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gateway := NewHTTPGateway(newTestDispatchConfig(url, ""), nil)

	result, err := gateway.Attempt(context.Background(), &service.PushAttempt{
		Dialect:    entity.DialectLegacyKeyed,
		Credential: "server-key",
		Route:      entity.DirectRoute(),
		Address:    testDeviceToken,
		Message:    newTestMessage(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AttemptTransportFailure, result.Class)
	assert.Zero(t, result.StatusCode)
}

func TestHTTPGateway_Attempt_RejectsUnsendableAttempts(t *testing.T) {
	gateway := NewHTTPGateway(newTestDispatchConfig("http://127.0.0.1:1", ""), nil)

	_, err := gateway.Attempt(context.Background(), &service.PushAttempt{
		Dialect: entity.DialectSimulated,
		Route:   entity.DirectRoute(),
		Message: newTestMessage(),
	})
	assert.Error(t, err)

	_, err = gateway.Attempt(context.Background(), &service.PushAttempt{
		Dialect: entity.DialectBearerTokenV1,
		Route:   entity.DirectRoute(),
		Message: newTestMessage(),
	})
	assert.ErrorContains(t, err, "project id")

	_, err = gateway.Attempt(context.Background(), &service.PushAttempt{Dialect: entity.DialectLegacyKeyed})
	assert.Error(t, err)
}

// The direct route answers with an HTML page; the relay delivers.
func TestDispatchEngine_FallsBackFromHTMLToRelay(t *testing.T) {
	var directCalls, relayCalls atomic.Int32

	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		directCalls.Add(1)
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, "<html><body>Blocked by proxy</body></html>")
	}))
	defer direct.Close()

	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relayCalls.Add(1)
		assert.Equal(t, direct.URL+"/fcm/send", r.URL.Query().Get("target"))
		writeJSON(w, http.StatusOK, `{"success":1,"failure":0,"results":[{"message_id":"0:9"}]}`)
	}))
	defer relay.Close()

	cfg := &config.Config{Dispatch: &config.DispatchConfig{
		Credential:     "legacy-server-key",
		LegacyEndpoint: direct.URL + "/fcm/send",
		Relays:         []config.RelayConfig{{Name: "relay", Template: relay.URL + "/?target={url}", Transparent: true}},
		AttemptTimeout: time.Second,
		SchoolName:     "Riverside Primary",
	}}
	cfg.ApplyDefaults()

	credentials, err := NewCredentialProvider(context.Background(), cfg)
	require.NoError(t, err)

	engine := impl.NewDispatchEngine(impl.DispatchEngineParams{
		Config:      cfg,
		Gateway:     NewHTTPGateway(cfg.Dispatch, nil),
		Credentials: credentials,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	transport, err := engine.ResolveTransport(context.Background())
	require.NoError(t, err)
	require.Equal(t, entity.DialectLegacyKeyed, transport.Dialect)

	record := engine.Send(context.Background(), transport, &entity.Recipient{
		ID:              "S1001",
		DisplayName:     "Ana",
		AttendanceState: entity.AttendanceAbsent,
		DeviceAddress:   testDeviceToken,
	})

	assert.Equal(t, entity.OutcomeSent, record.Outcome)
	assert.Equal(t, "relay", record.Route)
	assert.Equal(t, 2, record.Attempts)
	assert.Equal(t, int32(1), directCalls.Load())
	assert.Equal(t, int32(1), relayCalls.Load())
}
