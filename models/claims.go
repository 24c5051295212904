package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the verified bearer-token claims attached to each request.
// Sub carries the opaque user identifier every document is keyed by; token
// issuance happens in the external identity service.
type UserClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Sub   string `json:"sub"`
}
