// Package common contains shared sentinel errors used across pilotdeck
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrUnavailable means the remote gateway could not be reached.
	ErrUnavailable = errors.New("gateway unavailable")

	// ErrUnauthorized means the gateway rejected the caller's credentials
	// or token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrSignedOut means a mutation was attempted without a signed-in
	// identity. It is raised locally, before any network call.
	ErrSignedOut = errors.New("not signed in")

	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("not found")
)
