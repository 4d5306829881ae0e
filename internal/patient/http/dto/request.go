// Package dto provides data transfer objects for the patient endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	patientDomain "github.com/allisson/mediport/internal/patient/domain"
	customValidation "github.com/allisson/mediport/internal/validation"
)

// AddressRequest is the postal address of a patient.
type AddressRequest struct {
	Street       string `json:"street"`
	StreetNumber string `json:"streetNumber"`
	FlatNumber   string `json:"flatNumber"`
}

// PatientRequest contains the fields of an admission or a record update.
type PatientRequest struct {
	LastName      string         `json:"lastName"`
	FirstName     string         `json:"firstName"`
	County        string         `json:"county"`
	Town          string         `json:"town"`
	Address       AddressRequest `json:"address"`
	PhoneNumber   string         `json:"phoneNumber"`
	Email         string         `json:"email"`
	Profession    string         `json:"profession"`
	Job           string         `json:"job"`
	PatientState  string         `json:"patientState"`
	BedID         string         `json:"bedId"`
	Room          string         `json:"room"`
	Sex           string         `json:"sex"`
	BloodType     string         `json:"bloodType"`
	AdmissionDate string         `json:"admissionDate"`
}

// Validate checks if the patient request is valid. Omitted state, sex, blood type and
// admission date get defaults on admission.
func (r *PatientRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.LastName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.FirstName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.BedID,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Identifier,
			validation.Length(1, 50),
		),
		validation.Field(&r.PatientState, customValidation.OneOf(patientDomain.States...)),
		validation.Field(&r.Sex, customValidation.OneOf(patientDomain.Sexes...)),
		validation.Field(&r.BloodType, customValidation.OneOf(patientDomain.BloodTypes...)),
		validation.Field(&r.AdmissionDate, customValidation.Date),
		validation.Field(&r.Email, customValidation.Email),
		validation.Field(&r.PhoneNumber, customValidation.Phone),
	)
}

// ToDomain converts the request to a patient record.
func (r *PatientRequest) ToDomain() *patientDomain.Patient {
	return &patientDomain.Patient{
		LastName:  r.LastName,
		FirstName: r.FirstName,
		County:    r.County,
		Town:      r.Town,
		Address: patientDomain.Address{
			Street:       r.Address.Street,
			StreetNumber: r.Address.StreetNumber,
			FlatNumber:   r.Address.FlatNumber,
		},
		PhoneNumber:   r.PhoneNumber,
		Email:         r.Email,
		Profession:    r.Profession,
		Job:           r.Job,
		PatientState:  patientDomain.State(r.PatientState),
		BedID:         r.BedID,
		Room:          r.Room,
		Sex:           patientDomain.Sex(r.Sex),
		BloodType:     r.BloodType,
		AdmissionDate: r.AdmissionDate,
	}
}

// AssignBedRequest moves a patient to a bed.
type AssignBedRequest struct {
	Room  string `json:"room"`
	BedID string `json:"bedId"`
}

// Validate checks if the bed assignment is valid.
func (r *AssignBedRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.BedID,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Identifier,
			validation.Length(1, 50),
		),
		validation.Field(&r.Room, validation.Length(0, 50)),
	)
}

// PrescriptionRequest contains a new prescription.
type PrescriptionRequest struct {
	Medication   string `json:"medication"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	PrescribedBy string `json:"prescribedBy"`
	Notes        string `json:"notes"`
}

// Validate checks if the prescription request is valid.
func (r *PrescriptionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Medication,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Dosage,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.StartDate, customValidation.Date),
		validation.Field(&r.EndDate, customValidation.Date),
		validation.Field(&r.Notes, validation.Length(0, 2000)),
	)
}

// ToDomain converts the request to a prescription.
func (r *PrescriptionRequest) ToDomain() *patientDomain.Prescription {
	return &patientDomain.Prescription{
		Medication:   r.Medication,
		Dosage:       r.Dosage,
		Frequency:    r.Frequency,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		PrescribedBy: r.PrescribedBy,
		Notes:        r.Notes,
	}
}
