package workorder

import "errors"

var (
	ErrNotFound       = errors.New("work order not found")
	ErrClientNotFound = errors.New("client not found")
	ErrForbidden      = errors.New("access denied")
	ErrInvalidValue   = errors.New("invalid field value")
)
