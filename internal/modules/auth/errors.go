package auth

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrSessionExchange    = errors.New("failed to validate session")
	ErrInvalidRole        = errors.New("invalid role")
)
