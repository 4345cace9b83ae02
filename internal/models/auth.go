package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Role identifies which kind of principal a token belongs to.
type Role string

const (
	RoleProfessor Role = "PROFESSOR"
	RoleStudent   Role = "STUDENT"
)

// AuthClaims is the JWT payload for access tokens. Subject carries the
// principal id; Role decides which endpoint groups accept the token.
type AuthClaims struct {
	Role  Role   `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// LoginRequest holds credentials for authenticating a principal.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
