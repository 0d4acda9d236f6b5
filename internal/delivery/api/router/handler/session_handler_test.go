package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler_Me(t *testing.T) {
	e := newTestEcho()
	e.GET("/api/v1/me", NewSessionHandler().Me, withStaff("staff-9"))
	e.GET("/anonymous/me", NewSessionHandler().Me)

	rec := doRequest(e, http.MethodGet, "/api/v1/me", "")
	requireStatus(t, rec, http.StatusOK)

	var session Session
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &session))
	assert.Equal(t, Session{StaffID: "staff-9", Roles: []string{"staff"}}, session)

	rec = doRequest(e, http.MethodGet, "/anonymous/me", "")
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := doRequest(e, http.MethodGet, "/health", "")
	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
