package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/allisson/mediport/internal/errors"
)

// ErrInvalidPolicy indicates the role to capability table does not match the
// enumerated role and capability sets.
var ErrInvalidPolicy = errors.Wrap(errors.ErrInvalidInput, "invalid role policy")

// Policy is an immutable role to capability table.
// A Policy is safe for concurrent use; nothing mutates it after NewPolicy returns.
type Policy struct {
	roles        []Role
	capabilities []Capability
	grants       map[Role]map[Capability]struct{}
}

// NewPolicy validates grants against the enumerated roles and capabilities and
// builds a Policy from them.
//
// The key set of grants must equal roles exactly (an empty grant list is allowed,
// a missing or stray role is not) and every granted capability must belong to
// capabilities. Enumerations must not contain blank or duplicate values.
func NewPolicy(roles []Role, capabilities []Capability, grants map[Role][]Capability) (*Policy, error) {
	var problems []string

	roleSet := make(map[Role]struct{}, len(roles))
	for _, role := range roles {
		if strings.TrimSpace(string(role)) == "" {
			problems = append(problems, "blank role in enumeration")
			continue
		}
		if _, dup := roleSet[role]; dup {
			problems = append(problems, fmt.Sprintf("duplicate role %q", role))
			continue
		}
		roleSet[role] = struct{}{}
	}

	capabilitySet := make(map[Capability]struct{}, len(capabilities))
	for _, capability := range capabilities {
		if strings.TrimSpace(string(capability)) == "" {
			problems = append(problems, "blank capability in enumeration")
			continue
		}
		if _, dup := capabilitySet[capability]; dup {
			problems = append(problems, fmt.Sprintf("duplicate capability %q", capability))
			continue
		}
		capabilitySet[capability] = struct{}{}
	}

	for _, role := range roles {
		if _, ok := grants[role]; !ok {
			problems = append(problems, fmt.Sprintf("role %q has no entry", role))
		}
	}

	built := make(map[Role]map[Capability]struct{}, len(grants))
	for _, role := range sortedRoles(grants) {
		if _, ok := roleSet[role]; !ok {
			problems = append(problems, fmt.Sprintf("role %q is not enumerated", role))
			continue
		}
		set := make(map[Capability]struct{}, len(grants[role]))
		for _, capability := range grants[role] {
			if _, ok := capabilitySet[capability]; !ok {
				problems = append(problems, fmt.Sprintf("role %q grants unknown capability %q", role, capability))
				continue
			}
			set[capability] = struct{}{}
		}
		built[role] = set
	}

	if len(problems) > 0 {
		return nil, errors.Wrap(ErrInvalidPolicy, strings.Join(problems, "; "))
	}

	return &Policy{
		roles:        slices.Clone(roles),
		capabilities: slices.Clone(capabilities),
		grants:       built,
	}, nil
}

// MustNewPolicy is like NewPolicy but panics on a misconfigured table.
func MustNewPolicy(roles []Role, capabilities []Capability, grants map[Role][]Capability) *Policy {
	policy, err := NewPolicy(roles, capabilities, grants)
	if err != nil {
		panic(err)
	}
	return policy
}

// HasPermission reports whether role holds capability.
// Unknown roles and unknown capabilities yield false.
func (p *Policy) HasPermission(role Role, capability Capability) bool {
	set, ok := p.grants[role]
	if !ok {
		return false
	}
	_, granted := set[capability]
	return granted
}

// HasAnyPermission reports whether role holds at least one of capabilities.
// An empty list yields false.
func (p *Policy) HasAnyPermission(role Role, capabilities ...Capability) bool {
	for _, capability := range capabilities {
		if p.HasPermission(role, capability) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether role holds every one of capabilities.
// An empty list yields true.
func (p *Policy) HasAllPermissions(role Role, capabilities ...Capability) bool {
	for _, capability := range capabilities {
		if !p.HasPermission(role, capability) {
			return false
		}
	}
	return true
}

// Capabilities returns the capabilities granted to role, sorted.
// The slice is a copy; an unknown role yields an empty slice.
func (p *Policy) Capabilities(role Role) []Capability {
	set := p.grants[role]
	out := make([]Capability, 0, len(set))
	for capability := range set {
		out = append(out, capability)
	}
	slices.Sort(out)
	return out
}

// Roles returns the enumerated roles in declaration order.
func (p *Policy) Roles() []Role {
	return slices.Clone(p.roles)
}

// AllCapabilities returns the enumerated capabilities in declaration order.
func (p *Policy) AllCapabilities() []Capability {
	return slices.Clone(p.capabilities)
}

// IsKnownRole reports whether role is part of the enumerated role set.
func (p *Policy) IsKnownRole(role Role) bool {
	_, ok := p.grants[role]
	return ok
}

// IsKnownCapability reports whether capability is part of the enumerated capability set.
func (p *Policy) IsKnownCapability(capability Capability) bool {
	return slices.Contains(p.capabilities, capability)
}

func sortedRoles(grants map[Role][]Capability) []Role {
	roles := make([]Role, 0, len(grants))
	for role := range grants {
		roles = append(roles, role)
	}
	slices.Sort(roles)
	return roles
}

// defaultPolicy is built during package initialization; a broken table aborts startup.
var defaultPolicy = MustNewPolicy(knownRoles, knownCapabilities, roleGrants)

// DefaultPolicy returns the process-wide policy.
func DefaultPolicy() *Policy {
	return defaultPolicy
}

// HasPermission reports whether role holds capability under the default policy.
func HasPermission(role Role, capability Capability) bool {
	return defaultPolicy.HasPermission(role, capability)
}

// HasAnyPermission reports whether role holds at least one of capabilities under the default policy.
func HasAnyPermission(role Role, capabilities ...Capability) bool {
	return defaultPolicy.HasAnyPermission(role, capabilities...)
}

// HasAllPermissions reports whether role holds every one of capabilities under the default policy.
func HasAllPermissions(role Role, capabilities ...Capability) bool {
	return defaultPolicy.HasAllPermissions(role, capabilities...)
}

// Capabilities returns the capabilities role holds under the default policy.
func Capabilities(role Role) []Capability {
	return defaultPolicy.Capabilities(role)
}

// Roles returns every enumerated role.
func Roles() []Role {
	return defaultPolicy.Roles()
}

// AllCapabilities returns every enumerated capability.
func AllCapabilities() []Capability {
	return defaultPolicy.AllCapabilities()
}
