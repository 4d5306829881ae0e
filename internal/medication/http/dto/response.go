package dto

import (
	medicationDomain "github.com/allisson/mediport/internal/medication/domain"
)

// MedicationResponse represents an inventory entry in API responses.
type MedicationResponse struct {
	ID                int64   `json:"id"`
	IDMedicament      string  `json:"id_medicament"`
	Denumire          string  `json:"denumire"`
	Concentratie      string  `json:"concentratie"`
	FormaFarmaceutica string  `json:"forma_farmaceutica"`
	Pret              float64 `json:"pret"`
	Stoc              int     `json:"stoc"`
	Disponibilitate   bool    `json:"disponibilitate"`
	InStock           bool    `json:"in_stock"`
}

// MapMedicationToResponse converts a domain medication to an API response.
func MapMedicationToResponse(m *medicationDomain.Medication) MedicationResponse {
	return MedicationResponse{
		ID:                m.ID,
		IDMedicament:      m.IDMedicament,
		Denumire:          m.Denumire,
		Concentratie:      m.Concentratie,
		FormaFarmaceutica: m.FormaFarmaceutica,
		Pret:              m.Pret,
		Stoc:              m.Stoc,
		Disponibilitate:   m.Disponibilitate,
		InStock:           m.InStock(),
	}
}

// ListMedicationsResponse represents a list of medications in API responses.
type ListMedicationsResponse struct {
	Data []MedicationResponse `json:"data"`
}

// MapMedicationsToListResponse converts domain medications to a list API response.
func MapMedicationsToListResponse(medications []*medicationDomain.Medication) ListMedicationsResponse {
	data := make([]MedicationResponse, 0, len(medications))
	for _, m := range medications {
		data = append(data, MapMedicationToResponse(m))
	}
	return ListMedicationsResponse{Data: data}
}
