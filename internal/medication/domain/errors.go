package domain

import (
	"github.com/allisson/mediport/internal/errors"
)

// ErrMedicationNotFound indicates no inventory entry matches the id.
var ErrMedicationNotFound = errors.Wrap(errors.ErrNotFound, "medication not found")
