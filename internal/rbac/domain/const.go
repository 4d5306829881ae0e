// Package domain defines the role-based access control model of the dashboard.
//
// Roles group capabilities; a capability names one class of action an operator may
// perform. The role to capability table is closed and fixed at build time. Queries
// are deny-by-default: an unknown role or capability never grants anything and is
// never reported as an error.
package domain

// Capability names one allowed action (e.g., "assign_beds").
type Capability string

const (
	// ManageUsers allows listing staff accounts and changing their status.
	ManageUsers Capability = "manage_users"

	// ManagePatients allows editing patient records, discharging patients and prescribing.
	ManagePatients Capability = "manage_patients"

	// ViewPatients allows reading patient records and bed occupancy.
	ViewPatients Capability = "view_patients"

	// AddPatients allows admitting new patients.
	AddPatients Capability = "add_patients"

	// AssignBeds allows moving patients between rooms and beds.
	AssignBeds Capability = "assign_beds"

	// ManageMedications allows creating, updating and deleting inventory entries.
	ManageMedications Capability = "manage_medications"

	// ViewMedications allows reading the medication inventory.
	ViewMedications Capability = "view_medications"

	// ManageTransports allows operating medication transports.
	ManageTransports Capability = "manage_transports"

	// ViewLogs allows reading the audit log.
	ViewLogs Capability = "view_logs"
)

// Role names one actor class (e.g., "Doctor").
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleDoctor        Role = "Doctor"
	RoleNurse         Role = "Nurse"
	RolePharmacist    Role = "Pharmacist"
	RoleTransportTech Role = "Transport Tech"
	RoleReceptionist  Role = "Receptionist"
)

// knownCapabilities is the closed capability set.
var knownCapabilities = []Capability{
	ManageUsers,
	ManagePatients,
	ViewPatients,
	AddPatients,
	AssignBeds,
	ManageMedications,
	ViewMedications,
	ManageTransports,
	ViewLogs,
}

// knownRoles is the closed role set.
var knownRoles = []Role{
	RoleAdministrator,
	RoleDoctor,
	RoleNurse,
	RolePharmacist,
	RoleTransportTech,
	RoleReceptionist,
}

// roleGrants is the static role to capability table the default policy is built from.
var roleGrants = map[Role][]Capability{
	RoleAdministrator: {
		ManageUsers,
		ManagePatients,
		ViewPatients,
		AddPatients,
		AssignBeds,
		ManageMedications,
		ViewMedications,
		ManageTransports,
		ViewLogs,
	},
	RoleDoctor: {
		ManagePatients,
		ViewPatients,
		ManageMedications,
		ViewMedications,
		ViewLogs,
	},
	RoleNurse: {
		ViewPatients,
		ViewMedications,
		ViewLogs,
	},
	RolePharmacist: {
		ManageMedications,
		ViewMedications,
		ViewLogs,
	},
	RoleTransportTech: {
		ManageTransports,
		ViewLogs,
	},
	RoleReceptionist: {
		AddPatients,
		AssignBeds,
		ViewPatients,
	},
}
