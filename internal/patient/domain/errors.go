package domain

import (
	"github.com/allisson/mediport/internal/errors"
)

// Patient errors.
var (
	// ErrPatientNotFound indicates no patient matches the id or bed.
	ErrPatientNotFound = errors.Wrap(errors.ErrNotFound, "patient not found")

	// ErrBedOccupied indicates the bed is held by another patient.
	ErrBedOccupied = errors.Wrap(errors.ErrConflict, "bed is already occupied")
)
