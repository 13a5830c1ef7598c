// Package api defines the JSON request and response types of the HTTP API.
package api

import "github.com/nkarpenko/bookshelf/internal/models"

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login: a bearer token plus the
// caller's profile. The token must be presented on subsequent requests in
// the Authorization header.
type AuthResponse struct {
	Token string         `json:"token"`
	User  models.Profile `json:"user"`
}

// ErrorResponse is the JSON body of every error status.
type ErrorResponse struct {
	Error   string `json:"error"`             // status text
	Message string `json:"message,omitempty"` // human-readable detail
}
