package service

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is the base error for unresolved entity ids; concrete
	// lookups return a NotFoundError wrapping it.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail means the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately without distinguishing the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// NotFoundError reports which kind of entity could not be resolved.
type NotFoundError struct {
	Kind string
}

func (e *NotFoundError) Error() string { return e.Kind + " not found" }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func notFound(kind string) error {
	return &NotFoundError{Kind: kind}
}

// ValidationError reports missing or invalid input fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	return "invalid input: " + strings.Join(e.Fields, ", ")
}

func missingFields(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
