package handler

import (
	"net/http"

	"rollcall/internal/delivery/api/middleware"
	"rollcall/internal/delivery/api/response"
	domainerrors "rollcall/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SessionHandler reports who the caller is authenticated as
type SessionHandler struct{}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// Session is the authenticated staff identity
type Session struct {
	StaffID string   `json:"staff_id"`
	Roles   []string `json:"roles"`
}

// Me handles GET /api/v1/me
func (h *SessionHandler) Me(c echo.Context) error {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}
	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, Session{StaffID: staffID, Roles: roles})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
