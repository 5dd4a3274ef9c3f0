package models

import "errors"

// Domain error kinds. Controllers match these with errors.Is to pick
// the HTTP status; workflow functions wrap them with context.
var (
	// ErrInvalidInput marks malformed create/update arguments.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a reference to an absent record.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden marks a mutation attempted on an immutable or linked record.
	ErrForbidden = errors.New("operation not allowed")

	// ErrInvalidTransition marks a disallowed payment-status change.
	ErrInvalidTransition = errors.New("invalid payment status transition")

	// ErrInvalidAmount marks a negative amount passed to the currency converter.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrPersistence marks a store failure that rolled back the operation.
	ErrPersistence = errors.New("persistence failure")
)
