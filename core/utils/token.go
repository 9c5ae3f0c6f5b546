package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("missing token")
)

// TokenClaims is the payload issued by the identity provider. userId may be
// encoded as a number or a numeric string.
type TokenClaims struct {
	UserID  FlexInt `json:"userId"`
	Name    string  `json:"name,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Role    string  `json:"role,omitempty"`
	IsAdmin bool    `json:"isAdmin,omitempty"`
	jwt.RegisteredClaims
}

// Principal is the authenticated member making a request.
type Principal struct {
	ID      int64
	Name    string
	Role    string
	IsAdmin bool
}

func (c *TokenClaims) Principal() Principal {
	return Principal{
		ID:      c.UserID.Value,
		Name:    c.Name,
		Role:    c.Role,
		IsAdmin: c.IsAdmin,
	}
}

type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// ValidateAndParseToken verifies the HS256 signature and expiry and requires
// a coercible userId.
func (v *TokenVerifier) ValidateAndParseToken(tokenString string) (*TokenClaims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}
	if len(v.secret) == 0 {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid || !claims.UserID.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateToken signs claims for userID. The identity provider is the real
// issuer; this is used by tooling and tests.
func GenerateToken(secret string, userID int64, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: NewFlexInt(userID),
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// GetTokenFromHeader extracts the token from "Bearer <token>".
func GetTokenFromHeader(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
