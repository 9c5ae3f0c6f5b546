package utils

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

// signRaw signs a token whose userId claim is the given raw JSON value.
func signRaw(secret string, rawUserID string) (string, error) {
	claims := jwt.MapClaims{}
	var v any
	if err := json.Unmarshal([]byte(rawUserID), &v); err != nil {
		return "", err
	}
	claims["userId"] = v
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
