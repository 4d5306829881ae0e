package dto

import (
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
)

// RoleResponse lists the capabilities of one role.
type RoleResponse struct {
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
}

// RolesResponse is the role to capability table.
type RolesResponse struct {
	Data []RoleResponse `json:"data"`
}

// MapPolicyToRolesResponse converts the policy to an API response, roles in policy order.
func MapPolicyToRolesResponse(policy *rbacDomain.Policy) RolesResponse {
	roles := policy.Roles()
	data := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		data = append(data, RoleResponse{
			Role:         string(role),
			Capabilities: CapabilityStrings(policy.Capabilities(role)),
		})
	}
	return RolesResponse{Data: data}
}

// PermissionsResponse lists the capabilities of the current role.
type PermissionsResponse struct {
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
}

// CheckResponse is the outcome of a permission check. Unknown lists the requested
// capabilities the policy does not define; they count as not held.
type CheckResponse struct {
	Role    string   `json:"role"`
	Mode    string   `json:"mode"`
	Allowed bool     `json:"allowed"`
	Unknown []string `json:"unknown,omitempty"`
}

// MapCheckToResponse evaluates requirement for role against policy.
func MapCheckToResponse(
	policy *rbacDomain.Policy,
	role rbacDomain.Role,
	requirement rbacDomain.Requirement,
) CheckResponse {
	var unknown []string
	for _, capability := range requirement.Capabilities {
		if !policy.IsKnownCapability(capability) {
			unknown = append(unknown, string(capability))
		}
	}

	return CheckResponse{
		Role:    string(role),
		Mode:    string(requirement.Mode),
		Allowed: requirement.SatisfiedBy(policy, role),
		Unknown: unknown,
	}
}

// CapabilityStrings converts capabilities to plain strings. The result is never nil.
func CapabilityStrings(capabilities []rbacDomain.Capability) []string {
	out := make([]string, 0, len(capabilities))
	for _, capability := range capabilities {
		out = append(out, string(capability))
	}
	return out
}
