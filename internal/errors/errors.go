package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrEmailAlreadyInUse     = errors.New("email already in use")
	ErrAccountNotFound       = errors.New("account not found")
	ErrCannotRemoveAdmin     = errors.New("cannot remove admin account")
	ErrAccountAlreadyRemoved = errors.New("account already removed")
	ErrInvalidRole           = errors.New("role must be employee or client")
)
