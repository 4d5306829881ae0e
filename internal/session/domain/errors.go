package domain

import (
	"github.com/allisson/mediport/internal/errors"
)

// Session errors.
var (
	// ErrNoCredential indicates the store holds no bearer token.
	ErrNoCredential = errors.Wrap(errors.ErrUnauthorized, "no session credential")

	// ErrSessionNotFound indicates no session matches the lookup.
	ErrSessionNotFound = errors.Wrap(errors.ErrNotFound, "session not found")

	// ErrInvalidCredentials indicates a failed login or an unknown, expired or revoked session token.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")
)
