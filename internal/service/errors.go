package service

import "errors"

// Lookup and conflict errors surfaced to the transport layer.
var (
	ErrUserExists   = errors.New("a user with that name already exists")
	ErrUserNotFound = errors.New("a user with that name does not exist")
	ErrGameNotFound = errors.New("game not found")
	ErrNameRequired = errors.New("a user name is required")
)
