package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims defines the custom claims for admin JWTs.
type AuthClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenResponse carries an issued admin token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
