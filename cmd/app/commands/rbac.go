package commands

import (
	"fmt"
	"io"
	"strings"

	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	"github.com/allisson/mediport/internal/rbac/http/dto"
	customValidation "github.com/allisson/mediport/internal/validation"
)

// RunRoles prints the role to capability table.
func RunRoles(policy *rbacDomain.Policy, writer io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	roles := dto.MapPolicyToRolesResponse(policy)
	if format == FormatJSON {
		return writeJSON(writer, roles)
	}

	for _, role := range roles.Data {
		capabilities := "(none)"
		if len(role.Capabilities) > 0 {
			capabilities = strings.Join(role.Capabilities, ", ")
		}
		if _, err := fmt.Fprintf(writer, "%-15s %s\n", role.Role, capabilities); err != nil {
			return err
		}
	}
	return nil
}

// RunCheckPermission evaluates a capability requirement for role, the same way the
// gateway's permission check endpoint does. Unknown roles and capabilities evaluate
// to denied.
func RunCheckPermission(
	policy *rbacDomain.Policy,
	writer io.Writer,
	role string,
	capabilities []string,
	mode string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	req := dto.CheckRequest{Capabilities: capabilities, Mode: mode}
	if err := req.Validate(); err != nil {
		return customValidation.WrapValidationError(err)
	}

	requirement, err := req.Requirement()
	if err != nil {
		return err
	}

	result := dto.MapCheckToResponse(policy, rbacDomain.Role(role), requirement)

	if format == FormatJSON {
		return writeJSON(writer, result)
	}

	decision := "denied"
	if result.Allowed {
		decision = "allowed"
	}
	if _, err := fmt.Fprintf(writer, "%s: %s %s\n", decision, role, requirement); err != nil {
		return err
	}
	if len(result.Unknown) > 0 {
		_, err = fmt.Fprintf(writer, "unknown capabilities: %s\n", strings.Join(result.Unknown, ", "))
	}
	return err
}
