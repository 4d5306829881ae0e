// Package dto provides data transfer objects for the staff account endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	userDomain "github.com/allisson/mediport/internal/user/domain"
	customValidation "github.com/allisson/mediport/internal/validation"
)

// SetStatusRequest changes the status of an account. An empty status toggles it.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks if the status request is valid.
func (r *SetStatusRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Status, customValidation.OneOf(userDomain.Statuses...)),
	)
}

// IsToggle reports whether the request asks to flip the current status.
func (r *SetStatusRequest) IsToggle() bool {
	return r.Status == ""
}
