package lawyer

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the target lawyer record does not exist.
var ErrNotFound = errors.New("lawyer not found")

// ErrInvalidCredentials covers both "identifier not found" and "wrong
// password" so the two are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid enrollment ID/email or password")

// ValidationError indicates malformed or missing input.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// ConflictError indicates a uniqueness invariant would be violated.
type ConflictError struct {
	Field string
}

func (e ConflictError) Error() string {
	if e.Field == "" {
		return "a lawyer with these details already exists"
	}
	return fmt.Sprintf("a lawyer with this %s already exists", e.Field)
}
