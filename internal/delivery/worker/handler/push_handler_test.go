package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rollcall/config"
	deliverycontext "rollcall/internal/delivery/context"
	"rollcall/internal/domain/constants"
	"rollcall/internal/domain/entity"
	domainerrors "rollcall/internal/domain/errors"
	"rollcall/internal/domain/service"
	"rollcall/internal/errors"
	mocksusecase "rollcall/internal/mocks/usecase"
	"rollcall/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mocksusecase.MockBatchUsecase) {
	batchUC := mocksusecase.NewMockBatchUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
		cfg.Env.Env = constants.EnvDevelop
	}

	return NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		BatchUC: batchUC,
	}), batchUC
}

func pushBody(t *testing.T, event *service.BatchEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/dispatch-batches"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DispatchesBatch(t *testing.T) {
	h, batchUC := newTestPushHandler(t, nil)

	batchUC.EXPECT().
		DispatchRecipients(mock.Anything, &usecase.BatchRequest{BatchID: "batch-7", RecipientIDs: []string{"S1001", "S1002"}}).
		RunAndReturn(func(ctx context.Context, _ *usecase.BatchRequest) (*entity.BatchReport, error) {
			assert.Equal(t, "req-from-attrs", deliverycontext.GetRequestIDFromContext(ctx))
			assert.Equal(t, "staff-3", deliverycontext.GetStaffIDFromContext(ctx))

			return &entity.BatchReport{ID: "batch-7", Total: 2, Sent: 2}, nil
		})

	body := pushBody(t, &service.BatchEvent{
		RequestID:    "req-from-event",
		BatchID:      "batch-7",
		RecipientIDs: []string{"S1001", "S1002"},
		RequestedBy:  "staff-3",
	}, map[string]string{constants.AttrRequestID: "req-from-attrs"})

	rec := servePush(h, body)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_BatchIDFromAttributes(t *testing.T) {
	h, batchUC := newTestPushHandler(t, nil)

	batchUC.EXPECT().
		DispatchRecipients(mock.Anything, &usecase.BatchRequest{BatchID: "batch-attr", RecipientIDs: []string{"S1"}}).
		Return(&entity.BatchReport{ID: "batch-attr"}, nil)

	body := pushBody(t, &service.BatchEvent{RecipientIDs: []string{"S1"}}, map[string]string{constants.AttrBatchID: "batch-attr"})

	assert.Equal(t, http.StatusOK, servePush(h, body).Code)
}

func TestPushHandler_RosterUnavailableIsRetried(t *testing.T) {
	h, batchUC := newTestPushHandler(t, nil)

	batchUC.EXPECT().
		DispatchRecipients(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(errors.Join(domainerrors.ErrRosterUnavailable, errors.New("timeout")), "load batch recipients"))

	body := pushBody(t, &service.BatchEvent{BatchID: "b", RecipientIDs: []string{"S1"}}, nil)

	assert.Equal(t, http.StatusServiceUnavailable, servePush(h, body).Code)
}

func TestPushHandler_EmptyBatchIsAcknowledged(t *testing.T) {
	h, batchUC := newTestPushHandler(t, nil)

	batchUC.EXPECT().DispatchRecipients(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmptyBatch)

	body := pushBody(t, &service.BatchEvent{BatchID: "b"}, nil)

	assert.Equal(t, http.StatusOK, servePush(h, body).Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":`).Code)
	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"%%%"}}`).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"`+notJSON+`"}}`).Code)
}

func TestPushHandler_VerifiesTokenOutsideDevelopment(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h, _ := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	h.verifyToken = func(*http.Request) error { return errors.New("missing authorization header") }

	body := pushBody(t, &service.BatchEvent{BatchID: "b", RecipientIDs: []string{"S1"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, servePush(h, body).Code)
}

func TestPushHandler_LocalProviderSkipsVerification(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvProduction

	h, _ := newTestPushHandler(t, cfg)
	assert.False(t, h.verifyPushAuth)
}

func TestVerifyPubSubToken_RejectsMissingOrMalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.ErrorContains(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	assert.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")
}
