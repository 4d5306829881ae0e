package domain

import (
	"github.com/allisson/mediport/internal/errors"
)

// User errors.
var (
	// ErrUserNotFound indicates no staff account matches the id.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrInvalidStatus indicates a status other than Active or Inactive.
	ErrInvalidStatus = errors.Wrap(errors.ErrInvalidInput, "status must be Active or Inactive")
)
