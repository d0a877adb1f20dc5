package store

import "errors"

// Cross-entity resolution errors.
var (
	ErrUnknownUser   = errors.New("unknown user")
	ErrUnknownFlight = errors.New("unknown flight")
)
