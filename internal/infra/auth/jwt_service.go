// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"rollcall/config"
	"rollcall/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const accessTokenTTL = 12 * time.Hour

// jwtService validates HS256 staff tokens signed with the shared access secret.
type jwtService struct {
	accessSecret string
	accessTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    accessTokenTTL,
	}, nil
}

// GenerateAccessToken signs a staff token carrying roles.
func (s *jwtService) GenerateAccessToken(staffID string, roles []string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		StaffID: staffID,
		Roles:   roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staffID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}

// ValidateToken parses tokenString and rejects anything not signed with HMAC.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.StaffID == "" {
		claims.StaffID = claims.Subject
	}

	return claims, nil
}
