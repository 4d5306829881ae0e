package domain

import (
	"strings"

	"github.com/allisson/mediport/internal/errors"
)

// Mode selects how a Requirement combines its capabilities.
type Mode string

const (
	// ModeSingle requires exactly one capability to be held.
	ModeSingle Mode = "single"

	// ModeAny requires at least one of the capabilities.
	ModeAny Mode = "any"

	// ModeAll requires every capability.
	ModeAll Mode = "all"
)

// ErrInvalidMode indicates an unrecognized requirement mode.
var ErrInvalidMode = errors.Wrap(errors.ErrInvalidInput, "mode must be one of single, any, all")

// ParseMode converts a request value to a Mode. An empty value means ModeSingle.
// Matching is exact: "ANY" or " any" are rejected.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case "", ModeSingle:
		return ModeSingle, nil
	case ModeAny:
		return ModeAny, nil
	case ModeAll:
		return ModeAll, nil
	default:
		return "", ErrInvalidMode
	}
}

// Requirement is a capability check attached to an operation.
type Requirement struct {
	Mode         Mode
	Capabilities []Capability
}

// Require builds a single-capability requirement.
func Require(capability Capability) Requirement {
	return Requirement{Mode: ModeSingle, Capabilities: []Capability{capability}}
}

// RequireAny builds a requirement satisfied by any one of capabilities.
func RequireAny(capabilities ...Capability) Requirement {
	return Requirement{Mode: ModeAny, Capabilities: capabilities}
}

// RequireAll builds a requirement satisfied only by holding all capabilities.
func RequireAll(capabilities ...Capability) Requirement {
	return Requirement{Mode: ModeAll, Capabilities: capabilities}
}

// SatisfiedBy evaluates the requirement for role against policy.
// A single-mode requirement without exactly one capability, or an unknown mode, is never satisfied.
func (r Requirement) SatisfiedBy(policy *Policy, role Role) bool {
	switch r.Mode {
	case ModeSingle:
		if len(r.Capabilities) != 1 {
			return false
		}
		return policy.HasPermission(role, r.Capabilities[0])
	case ModeAny:
		return policy.HasAnyPermission(role, r.Capabilities...)
	case ModeAll:
		return policy.HasAllPermissions(role, r.Capabilities...)
	default:
		return false
	}
}

// Strings returns the capabilities as plain strings, for logging and storage.
func (r Requirement) Strings() []string {
	out := make([]string, len(r.Capabilities))
	for i, capability := range r.Capabilities {
		out[i] = string(capability)
	}
	return out
}

// String renders the requirement as "mode(cap1,cap2)".
func (r Requirement) String() string {
	return string(r.Mode) + "(" + strings.Join(r.Strings(), ",") + ")"
}

// ErrPermissionDenied indicates the role does not satisfy a requirement.
var ErrPermissionDenied = errors.Wrap(errors.ErrForbidden, "permission denied")

// Check returns ErrPermissionDenied, annotated with the requirement, unless role satisfies it.
func (r Requirement) Check(policy *Policy, role Role) error {
	if r.SatisfiedBy(policy, role) {
		return nil
	}
	return errors.Wrapf(ErrPermissionDenied, "role %q lacks %s", role, r)
}
