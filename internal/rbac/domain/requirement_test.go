package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/mediport/internal/errors"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		wantErr  bool
	}{
		{input: "", expected: ModeSingle},
		{input: "single", expected: ModeSingle},
		{input: "any", expected: ModeAny},
		{input: "all", expected: ModeAll},
		{input: "some", wantErr: true},
		{input: "ANY", wantErr: true},
		{input: "All", wantErr: true},
		{input: " any ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestRequirement_SatisfiedBy(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name        string
		requirement Requirement
		role        Role
		expected    bool
	}{
		{"Single_Granted", Require(AssignBeds), RoleReceptionist, true},
		{"Single_Denied", Require(AssignBeds), RoleDoctor, false},
		{"Single_WithTwoCapabilities", Requirement{Mode: ModeSingle, Capabilities: []Capability{ViewPatients, ViewLogs}}, RoleNurse, false},
		{"Single_WithNoCapability", Requirement{Mode: ModeSingle}, RoleAdministrator, false},
		{"Any_OneGranted", RequireAny(ManagePatients, AddPatients), RoleReceptionist, true},
		{"Any_NoneGranted", RequireAny(ManageUsers, ManageTransports), RoleNurse, false},
		{"Any_Empty", RequireAny(), RoleAdministrator, false},
		{"All_Granted", RequireAll(ManagePatients, ViewMedications), RoleDoctor, true},
		{"All_PartiallyGranted", RequireAll(ManagePatients, ViewMedications), RolePharmacist, false},
		{"All_Empty", RequireAll(), RoleTransportTech, true},
		{"UnknownMode", Requirement{Mode: "most", Capabilities: []Capability{ViewLogs}}, RoleAdministrator, false},
		{"UnknownRole", RequireAll(ViewLogs), "Janitor", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.requirement.SatisfiedBy(policy, tt.role))
		})
	}
}

func TestRequirement_String(t *testing.T) {
	assert.Equal(t, "single(assign_beds)", Require(AssignBeds).String())
	assert.Equal(t, "all(manage_patients,view_medications)", RequireAll(ManagePatients, ViewMedications).String())
	assert.Equal(t, []string{"view_logs"}, Require(ViewLogs).Strings())
}

func TestRequirement_Check(t *testing.T) {
	policy := DefaultPolicy()

	assert.NoError(t, Require(AssignBeds).Check(policy, RoleReceptionist))

	err := Require(AssignBeds).Check(policy, RoleDoctor)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.True(t, errors.Is(err, errors.ErrForbidden))
	assert.Contains(t, err.Error(), `role "Doctor" lacks single(assign_beds)`)

	assert.ErrorIs(t, RequireAll(ManagePatients, ViewMedications).Check(policy, RoleNurse), ErrPermissionDenied)
	assert.NoError(t, RequireAny(AddPatients, ManagePatients).Check(policy, RoleDoctor))
}
