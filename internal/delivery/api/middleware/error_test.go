package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"rollcall/internal/delivery/api/validator"
	domainerrors "rollcall/internal/domain/errors"
	"rollcall/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (int, domainerrors.ErrorResponse) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	code, body := handleError(t, errors.Wrap(domainerrors.ErrRecipientNotFound.WithDetails("S9"), "mark attendance"))

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "RECIPIENT_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "S9", body.Error.Details)
}

func TestErrorMiddleware_RosterUnavailableHidesDetails(t *testing.T) {
	err := errors.Join(domainerrors.ErrRosterUnavailable.WithDetails("dial tcp: refused"), errors.New("dial tcp: refused"))

	code, body := handleError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "ROSTER_UNAVAILABLE", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}

func TestErrorMiddleware_ValidationError(t *testing.T) {
	type request struct {
		State string `json:"state" validate:"required"`
	}
	err := validator.New().Validate(&request{})

	code, body := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, map[string]any{"state": "required"}, body.Error.Details)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	code, body := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed))

	assert.Equal(t, http.StatusMethodNotAllowed, code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "Method Not Allowed", body.Error.Message)
}

func TestErrorMiddleware_Unhandled(t *testing.T) {
	code, body := handleError(t, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "pq")
}
