package domain

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/allisson/mediport/internal/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefaultPolicy_GrantedCapabilities(t *testing.T) {
	for _, role := range Roles() {
		for _, capability := range roleGrants[role] {
			assert.True(t, HasPermission(role, capability), "%s should hold %s", role, capability)
		}
	}
}

func TestDefaultPolicy_UngrantedCapabilities(t *testing.T) {
	for _, role := range Roles() {
		for _, capability := range AllCapabilities() {
			if slices.Contains(roleGrants[role], capability) {
				continue
			}
			assert.False(t, HasPermission(role, capability), "%s should not hold %s", role, capability)
		}
	}
}

func TestDefaultPolicy_UnknownRole(t *testing.T) {
	for _, capability := range AllCapabilities() {
		assert.False(t, HasPermission("NoSuchRole", capability))
	}
	assert.False(t, HasPermission("", ManageUsers))
	assert.False(t, HasPermission("administrator", ManageUsers), "role names are case-sensitive")
	assert.False(t, HasAnyPermission("NoSuchRole", AllCapabilities()...))
	assert.False(t, HasAllPermissions("NoSuchRole", ViewPatients))
	assert.Empty(t, Capabilities("NoSuchRole"))
}

func TestDefaultPolicy_UnknownCapability(t *testing.T) {
	assert.False(t, HasPermission(RoleAdministrator, "launch_rockets"))
	assert.False(t, HasAllPermissions(RoleAdministrator, ViewPatients, "launch_rockets"))
	assert.True(t, HasAnyPermission(RoleAdministrator, "launch_rockets", ViewPatients))
}

func TestDefaultPolicy_EmptyCapabilityLists(t *testing.T) {
	for _, role := range append(Roles(), "NoSuchRole") {
		assert.False(t, HasAnyPermission(role), "any over an empty list is false for %s", role)
		assert.True(t, HasAllPermissions(role), "all over an empty list is true for %s", role)
		assert.False(t, HasAnyPermission(role, []Capability{}...))
		assert.True(t, HasAllPermissions(role, []Capability{}...))
	}
}

func TestDefaultPolicy_AllIsSubset(t *testing.T) {
	for _, role := range Roles() {
		granted := roleGrants[role]
		assert.True(t, HasAllPermissions(role, granted...), "%s holds its whole set", role)

		for _, capability := range AllCapabilities() {
			caps := append(slices.Clone(granted), capability)
			expected := slices.Contains(granted, capability)
			assert.Equal(t, expected, HasAllPermissions(role, caps...), "%s with extra %s", role, capability)
		}
	}
}

func TestDefaultPolicy_Receptionist(t *testing.T) {
	assert.True(t, HasPermission(RoleReceptionist, AssignBeds))
	assert.False(t, HasPermission(RoleReceptionist, ManagePatients))
	assert.True(t, HasAnyPermission(RoleReceptionist, ManagePatients, AssignBeds))
	assert.True(t, HasAllPermissions(RoleReceptionist, AssignBeds, ViewPatients))
	assert.False(t, HasAllPermissions(RoleReceptionist, AssignBeds, ManagePatients))
	assert.Equal(t, []Capability{AddPatients, AssignBeds, ViewPatients}, Capabilities(RoleReceptionist))
}

func TestDefaultPolicy_Doctor(t *testing.T) {
	assert.False(t, HasPermission(RoleDoctor, AssignBeds))
	assert.Equal(
		t,
		[]Capability{ManageMedications, ManagePatients, ViewLogs, ViewMedications, ViewPatients},
		Capabilities(RoleDoctor),
	)
}

func TestDefaultPolicy_AdministratorHoldsEverything(t *testing.T) {
	assert.True(t, HasAllPermissions(RoleAdministrator, AllCapabilities()...))
	assert.Len(t, Capabilities(RoleAdministrator), len(AllCapabilities()))
}

func TestDefaultPolicy_Idempotent(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.True(t, HasPermission(RoleNurse, ViewPatients))
		assert.False(t, HasPermission(RoleNurse, ManagePatients))
		assert.Equal(t, Capabilities(RoleNurse), Capabilities(RoleNurse))
	}
}

func TestDefaultPolicy_CapabilitiesReturnsCopy(t *testing.T) {
	caps := Capabilities(RoleNurse)
	require.NotEmpty(t, caps)
	caps[0] = ManageUsers

	assert.False(t, HasPermission(RoleNurse, ManageUsers))
	assert.NotContains(t, Capabilities(RoleNurse), ManageUsers)

	roles := Roles()
	roles[0] = "Hacker"
	assert.Equal(t, RoleAdministrator, Roles()[0])
}

func TestDefaultPolicy_ConcurrentQueries(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, role := range Roles() {
				for _, capability := range AllCapabilities() {
					expected := slices.Contains(roleGrants[role], capability)
					if HasPermission(role, capability) != expected {
						t.Errorf("inconsistent answer for %s/%s", role, capability)
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewPolicy(t *testing.T) {
	roles := []Role{"Admin", "Guest"}
	caps := []Capability{"read", "write"}

	tests := []struct {
		name        string
		roles       []Role
		caps        []Capability
		grants      map[Role][]Capability
		expectError bool
		contains    string
	}{
		{
			name:  "Success_ValidTable",
			roles: roles,
			caps:  caps,
			grants: map[Role][]Capability{
				"Admin": {"read", "write"},
				"Guest": {},
			},
		},
		{
			name:        "Error_MissingRole",
			roles:       roles,
			caps:        caps,
			grants:      map[Role][]Capability{"Admin": {"read"}},
			expectError: true,
			contains:    `role "Guest" has no entry`,
		},
		{
			name:  "Error_StrayRole",
			roles: roles,
			caps:  caps,
			grants: map[Role][]Capability{
				"Admin": {"read"},
				"Guest": {},
				"Root":  {"write"},
			},
			expectError: true,
			contains:    `role "Root" is not enumerated`,
		},
		{
			name:  "Error_MisspelledCapability",
			roles: roles,
			caps:  caps,
			grants: map[Role][]Capability{
				"Admin": {"read", "wrte"},
				"Guest": {},
			},
			expectError: true,
			contains:    `grants unknown capability "wrte"`,
		},
		{
			name:        "Error_DuplicateRole",
			roles:       []Role{"Admin", "Admin"},
			caps:        caps,
			grants:      map[Role][]Capability{"Admin": {}},
			expectError: true,
			contains:    `duplicate role "Admin"`,
		},
		{
			name:        "Error_BlankCapability",
			roles:       []Role{"Admin"},
			caps:        []Capability{"read", " "},
			grants:      map[Role][]Capability{"Admin": {"read"}},
			expectError: true,
			contains:    "blank capability",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := NewPolicy(tt.roles, tt.caps, tt.grants)
			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, policy)
				assert.True(t, errors.Is(err, ErrInvalidPolicy))
				assert.True(t, errors.Is(err, errors.ErrInvalidInput))
				assert.Contains(t, err.Error(), tt.contains)
				return
			}
			require.NoError(t, err)
			assert.True(t, policy.HasPermission("Admin", "write"))
			assert.False(t, policy.HasPermission("Guest", "read"))
			assert.True(t, policy.IsKnownRole("Guest"))
			assert.False(t, policy.IsKnownRole("Root"))
			assert.True(t, policy.IsKnownCapability("read"))
			assert.False(t, policy.IsKnownCapability("delete"))
		})
	}
}

func TestNewPolicy_IsolatedFromInput(t *testing.T) {
	grants := map[Role][]Capability{"Admin": {"read"}}
	policy, err := NewPolicy([]Role{"Admin"}, []Capability{"read", "write"}, grants)
	require.NoError(t, err)

	grants["Admin"] = append(grants["Admin"], "write")

	assert.False(t, policy.HasPermission("Admin", "write"))
}

func TestMustNewPolicy_PanicsOnInvalidTable(t *testing.T) {
	assert.Panics(t, func() {
		MustNewPolicy([]Role{"Admin"}, []Capability{"read"}, map[Role][]Capability{})
	})
	assert.NotPanics(t, func() {
		MustNewPolicy(knownRoles, knownCapabilities, roleGrants)
	})
}
