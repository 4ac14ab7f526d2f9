package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret  []byte
	sessionTTL = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

type SessionClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

func InitJWTSecret(secret string, ttl time.Duration) error {
	if secret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	jwtSecret = []byte(secret)

	if ttl > 0 {
		sessionTTL = ttl
	}

	return nil
}

func SessionTTL() time.Duration {
	return sessionTTL
}

func GenerateSessionToken(userID uint) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("JWT secret is not configured")
	}

	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// VerifySessionToken checks signature and expiry and returns the embedded user id.
func VerifySessionToken(tokenString string) (uint, error) {
	if len(jwtSecret) == 0 || tokenString == "" {
		return 0, ErrInvalidToken
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	}, jwt.WithExpirationRequired())

	if err != nil || !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
