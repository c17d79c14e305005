package service

import "errors"

// Errors returned by the services. Controllers map these onto HTTP statuses.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource already exists")
	ErrForbidden      = errors.New("operation not permitted")
	ErrInvalidStatus  = errors.New("invalid status value")
	ErrBadCredentials = errors.New("invalid credentials")
)
