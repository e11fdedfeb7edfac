// Package common defines shared constants and sentinel errors used across
// the noteboard layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate name")

	// ErrIntegrity signals that a data-consistency assumption was violated
	// (e.g. more than one credential row for an account). Always a server
	// fault, never user-caused.
	ErrIntegrity = errors.New("integrity fault")

	// ErrStore covers any other persistence-layer failure.
	ErrStore = errors.New("store fault")

	// Validation errors, detected before any store access.
	ErrMissingParams   = errors.New("missing parameters")
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidCredentials deliberately conflates "no such account" and
	// "wrong password" so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
