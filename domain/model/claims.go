package model

import "github.com/golang-jwt/jwt"

// UserClaims is the access-token payload: enough identity to serve a request
// without a user lookup on every read.
type UserClaims struct {
	UserID   string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	jwt.StandardClaims
}

// RefreshClaims carries only the user id; everything else is re-resolved when
// the token is exchanged.
type RefreshClaims struct {
	UserID string `json:"_id"`
	jwt.StandardClaims
}
