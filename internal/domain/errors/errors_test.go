package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentityFields(t *testing.T) {
	err := ErrRecipientNotFound.WithDetails("S1001")

	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
	assert.Equal(t, "RECIPIENT_NOT_FOUND", err.ErrorCode())
	assert.Equal(t, "S1001", err.Details())
	assert.Empty(t, ErrRecipientNotFound.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrReportNotFound.WrapMessage("batch b-1")

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "REPORT_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, stderrors.Is(err, ErrReportNotFound))
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(stderrors.New("connection refused"), "find recipients")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "find recipients", err.Details())
}

func TestBaseError_IsMatchesErrorCode(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("recipient id is required")

	assert.True(t, stderrors.Is(detailed, ErrValidationFailed))
	assert.False(t, stderrors.Is(detailed, ErrRecipientNotFound))
	assert.False(t, stderrors.Is(stderrors.New("Input validation failed"), ErrValidationFailed))
}
