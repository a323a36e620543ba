package service

import (
	"errors"
	"time"

	"labcontrol_backend/internals/configs"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const tokenTTL = time.Hour

var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// SignAdminToken issues the dashboard access token for an admin. The
// caller stores it in auth_tokens; the auth middleware treats a token
// absent from that table as revoked.
func SignAdminToken(adminID, userID uuid.UUID, email string) (token string, expiresAt time.Time, err error) {
	if configs.JWTSecret == "" {
		return "", time.Time{}, ErrMissingJWTSecret
	}

	expiresAt = time.Now().Add(tokenTTL)
	claims := jwt.MapClaims{
		"admin_id": adminID.String(),
		"user_id":  userID.String(),
		"email":    email,
		"exp":      expiresAt.Unix(),
		"iat":      time.Now().Unix(),
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ParseAdminToken verifies signature and expiry and returns the claims.
func ParseAdminToken(token string) (jwt.MapClaims, error) {
	if configs.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
