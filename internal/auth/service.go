package auth

import (
	"fmt"
	"time"

	apperrors "big-brain-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "big-brain-backend"

// Claims represents JWT token claims. The user id travels in the "id" claim.
type Claims struct {
	UserID               string `json:"id" example:"64f1c0a2e4b0c1d2e3f4a5b6"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenService signs and validates HS256 tokens
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a token service for the given signing secret
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue creates a token for userID valid for ttl
func (s *TokenService) Issue(userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", apperrors.NewValidationError("user", "user id is required")
	}
	if ttl <= 0 {
		return "", apperrors.NewValidationError("ttl", "token lifetime must be positive")
	}

	now := s.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses a token and returns its claims
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, apperrors.ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing id claim", apperrors.ErrInvalidToken)
	}
	return claims, nil
}
