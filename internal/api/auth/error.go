package auth

import (
	"Tripp/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists = response.NewError(http.StatusConflict, "email already exists")
	// ErrAuthenticationFailed is deliberately undifferentiated: it never
	// reveals whether the email exists or the password was wrong.
	ErrAuthenticationFailed = response.NewError(http.StatusUnauthorized, "authentication failed")
	ErrUserNotFound         = response.NewError(http.StatusNotFound, "user not found")
)
