package services

import "errors"

// Error kinds surfaced by the service layer. Handlers map them to HTTP
// status codes; raw driver errors never cross this package boundary.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already exists")
)
