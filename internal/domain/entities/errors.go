package entities

import "errors"

// Errors shared by the storage backends and the use cases.
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)
