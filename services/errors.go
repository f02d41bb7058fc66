package services

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced at the request boundary. Handlers map these to an
// HTTP status plus a message string; nothing is retried automatically.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation error")
	ErrPersistence  = errors.New("persistence failure")
)

func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

func persistencef(err error) error {
	return fmt.Errorf("%v: %w", err, ErrPersistence)
}
