// Package dto provides data transfer objects for the permission endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	customValidation "github.com/allisson/mediport/internal/validation"
)

// CheckRequest asks whether the current role satisfies a capability requirement.
type CheckRequest struct {
	Capabilities []string `json:"capabilities"`
	Mode         string   `json:"mode"`
}

// Validate checks if the check request is valid. Single mode takes exactly one capability.
// Capability values are not validated: blank or unknown ones evaluate to false.
func (r *CheckRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Mode,
			validation.When(r.Mode != "", customValidation.OneOf(
				string(rbacDomain.ModeSingle),
				string(rbacDomain.ModeAny),
				string(rbacDomain.ModeAll),
			)),
		),
		validation.Field(&r.Capabilities,
			validation.When(r.Mode == "" || r.Mode == string(rbacDomain.ModeSingle),
				validation.Required,
				validation.Length(1, 1),
			),
		),
	)
}

// Requirement converts the request to a domain requirement.
func (r *CheckRequest) Requirement() (rbacDomain.Requirement, error) {
	mode, err := rbacDomain.ParseMode(r.Mode)
	if err != nil {
		return rbacDomain.Requirement{}, err
	}

	capabilities := make([]rbacDomain.Capability, 0, len(r.Capabilities))
	for _, capability := range r.Capabilities {
		capabilities = append(capabilities, rbacDomain.Capability(capability))
	}
	return rbacDomain.Requirement{Mode: mode, Capabilities: capabilities}, nil
}
