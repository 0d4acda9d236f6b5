package middleware

import (
	"slices"
	"strings"

	deliverycontext "rollcall/internal/delivery/context"
	domainerrors "rollcall/internal/domain/errors"
	"rollcall/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	staffIDKey = "staffID"
	rolesKey   = "roles"
)

// AuthMiddleware authenticates staff requests with bearer access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the staff identity on the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrUnauthorized.WithDetails("must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}
		if claims.StaffID == "" {
			return domainerrors.ErrUnauthorized.WithDetails("staff id missing from token")
		}

		c.Set(staffIDKey, claims.StaffID)
		c.Set(rolesKey, claims.Roles)

		ctx := deliverycontext.WithStaffID(c.Request().Context(), claims.StaffID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With("staff_id", claims.StaffID))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole rejects authenticated callers without requiredRole.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(rolesKey).([]string)
			if !ok || !slices.Contains(roles, requiredRole) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + requiredRole)
			}

			return next(c)
		}
	}
}

// GetStaffID returns the authenticated staff member's id.
func GetStaffID(c echo.Context) (string, bool) {
	staffID, ok := c.Get(staffIDKey).(string)

	return staffID, ok && staffID != ""
}

// GetRoles returns the authenticated caller's roles.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(rolesKey).([]string)

	return roles, ok
}
