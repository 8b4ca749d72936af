package services

import "errors"

// Business errors surfaced to handlers; the HTTP layer maps them to statuses.
var (
	ErrValidation           = errors.New("invalid input")
	ErrConflict             = errors.New("name, email or tax id already registered")
	ErrNotFound             = errors.New("not found")
	ErrInsufficientQuantity = errors.New("requested quantity exceeds available stock")
	ErrBadCreds             = errors.New("invalid email or password")
	ErrForbidden            = errors.New("not allowed")
)
