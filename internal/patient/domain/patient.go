// Package domain defines patient records, prescriptions and the list filters of the
// patients view. Field names on the wire follow the remote records API.
package domain

import (
	"time"
)

// State is the clinical condition of a patient.
type State string

const (
	StateStable    State = "Stable"
	StateCritical  State = "Critical"
	StateImproving State = "Improving"
	StateWorsening State = "Worsening"
	StateEmergency State = "Emergency"
)

// States lists every patient state.
var States = []string{
	string(StateStable),
	string(StateCritical),
	string(StateImproving),
	string(StateWorsening),
	string(StateEmergency),
}

// Sex of a patient.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
	SexOther  Sex = "Other"
)

// Sexes lists every accepted sex value.
var Sexes = []string{string(SexMale), string(SexFemale), string(SexOther)}

// BloodTypes lists every accepted blood type.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Create defaults.
const (
	DefaultState        = StateStable
	DefaultSex          = SexMale
	DefaultBloodType    = "O+"
	DefaultPrescribedBy = "Dr. Unknown"
	dateLayout          = "2006-01-02"
)

// Address is the postal address of a patient.
type Address struct {
	Street       string `json:"street"`
	StreetNumber string `json:"streetNumber"`
	FlatNumber   string `json:"flatNumber"`
}

// Patient is an admitted patient as stored by the remote records API.
type Patient struct {
	ID            int64          `json:"id"`
	LastName      string         `json:"lastName"`
	FirstName     string         `json:"firstName"`
	County        string         `json:"county"`
	Town          string         `json:"town"`
	Address       Address        `json:"address"`
	PhoneNumber   string         `json:"phoneNumber"`
	Email         string         `json:"email"`
	Profession    string         `json:"profession"`
	Job           string         `json:"job"`
	PatientState  State          `json:"patientState"`
	BedID         string         `json:"bedId"`
	Room          string         `json:"room,omitempty"`
	Sex           Sex            `json:"sex"`
	BloodType     string         `json:"bloodType"`
	AdmissionDate string         `json:"admissionDate"`
	Prescriptions []Prescription `json:"prescriptions"`
}

// ApplyDefaults fills the fields a new admission may omit. today is the admission date used
// when none is given.
func (p *Patient) ApplyDefaults(today time.Time) {
	if p.PatientState == "" {
		p.PatientState = DefaultState
	}
	if p.Sex == "" {
		p.Sex = DefaultSex
	}
	if p.BloodType == "" {
		p.BloodType = DefaultBloodType
	}
	if p.AdmissionDate == "" {
		p.AdmissionDate = today.UTC().Format(dateLayout)
	}
	if p.Prescriptions == nil {
		p.Prescriptions = []Prescription{}
	}
}

// FullName renders "Last, First".
func (p *Patient) FullName() string {
	return p.LastName + ", " + p.FirstName
}

// Prescription is a medication order attached to a patient.
type Prescription struct {
	ID           int64  `json:"id"`
	Medication   string `json:"medication"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	PrescribedBy string `json:"prescribedBy"`
	Notes        string `json:"notes"`
}

// ApplyDefaults fills the start date and prescriber when omitted.
func (p *Prescription) ApplyDefaults(today time.Time) {
	if p.StartDate == "" {
		p.StartDate = today.UTC().Format(dateLayout)
	}
	if p.PrescribedBy == "" {
		p.PrescribedBy = DefaultPrescribedBy
	}
}

// BedAssignment moves a patient to a bed, optionally in another room.
type BedAssignment struct {
	Room  string `json:"room,omitempty"`
	BedID string `json:"bedId"`
}
