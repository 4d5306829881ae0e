package dto

import (
	patientDomain "github.com/allisson/mediport/internal/patient/domain"
)

// PatientResponse represents a patient in API responses.
type PatientResponse struct {
	ID            int64                  `json:"id"`
	LastName      string                 `json:"lastName"`
	FirstName     string                 `json:"firstName"`
	County        string                 `json:"county"`
	Town          string                 `json:"town"`
	Address       AddressRequest         `json:"address"`
	PhoneNumber   string                 `json:"phoneNumber"`
	Email         string                 `json:"email"`
	Profession    string                 `json:"profession"`
	Job           string                 `json:"job"`
	PatientState  string                 `json:"patientState"`
	BedID         string                 `json:"bedId"`
	Room          string                 `json:"room,omitempty"`
	Sex           string                 `json:"sex"`
	BloodType     string                 `json:"bloodType"`
	AdmissionDate string                 `json:"admissionDate"`
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
}

// PrescriptionResponse represents a prescription in API responses.
type PrescriptionResponse struct {
	ID           int64  `json:"id"`
	Medication   string `json:"medication"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	PrescribedBy string `json:"prescribedBy"`
	Notes        string `json:"notes"`
}

// MapPrescriptionToResponse converts a domain prescription to an API response.
func MapPrescriptionToResponse(p *patientDomain.Prescription) PrescriptionResponse {
	return PrescriptionResponse{
		ID:           p.ID,
		Medication:   p.Medication,
		Dosage:       p.Dosage,
		Frequency:    p.Frequency,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		PrescribedBy: p.PrescribedBy,
		Notes:        p.Notes,
	}
}

// MapPatientToResponse converts a domain patient to an API response.
func MapPatientToResponse(p *patientDomain.Patient) PatientResponse {
	prescriptions := make([]PrescriptionResponse, 0, len(p.Prescriptions))
	for i := range p.Prescriptions {
		prescriptions = append(prescriptions, MapPrescriptionToResponse(&p.Prescriptions[i]))
	}

	return PatientResponse{
		ID:        p.ID,
		LastName:  p.LastName,
		FirstName: p.FirstName,
		County:    p.County,
		Town:      p.Town,
		Address: AddressRequest{
			Street:       p.Address.Street,
			StreetNumber: p.Address.StreetNumber,
			FlatNumber:   p.Address.FlatNumber,
		},
		PhoneNumber:   p.PhoneNumber,
		Email:         p.Email,
		Profession:    p.Profession,
		Job:           p.Job,
		PatientState:  string(p.PatientState),
		BedID:         p.BedID,
		Room:          p.Room,
		Sex:           string(p.Sex),
		BloodType:     p.BloodType,
		AdmissionDate: p.AdmissionDate,
		Prescriptions: prescriptions,
	}
}

// ListPatientsResponse represents a list of patients in API responses.
type ListPatientsResponse struct {
	Data []PatientResponse `json:"data"`
}

// MapPatientsToListResponse converts domain patients to a list API response.
func MapPatientsToListResponse(patients []*patientDomain.Patient) ListPatientsResponse {
	data := make([]PatientResponse, 0, len(patients))
	for _, p := range patients {
		data = append(data, MapPatientToResponse(p))
	}
	return ListPatientsResponse{Data: data}
}
