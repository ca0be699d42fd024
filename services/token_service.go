package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const sessionDuration = 24 * time.Hour

// TokenService is responsible for creating and validating session JWTs.
type TokenService struct {
	secretKey []byte
}

// NewTokenService creates a new TokenService with the given signing secret.
func NewTokenService(secret string) *TokenService {
	if secret == "" {
		// The service cannot function without a secret, so it's appropriate to panic on startup.
		panic("JWT secret not set")
	}
	return &TokenService{secretKey: []byte(secret)}
}

// GenerateToken creates a signed session token for the given user.
func (s *TokenService) GenerateToken(userID, username, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(sessionDuration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken parses and validates a token string, returning its claims.
func (s *TokenService) ValidateToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
