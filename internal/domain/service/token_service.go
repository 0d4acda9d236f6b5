package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by staff access tokens.
type Claims struct {
	StaffID string   `json:"staff_id"`
	Roles   []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService validates staff access tokens issued by the school's identity system.
type TokenService interface {
	// GenerateAccessToken signs a token for staffID, used by tooling and tests.
	GenerateAccessToken(staffID string, roles []string) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
