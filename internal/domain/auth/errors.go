package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrInvalidToken       = errors.New("Invalid or expired token")
	ErrTokenRevoked       = errors.New("Token has been revoked")
	ErrAdminRequired      = errors.New("Administrator privilege required")
)
