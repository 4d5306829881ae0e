// Package dto provides data transfer objects for the medication inventory endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	medicationDomain "github.com/allisson/mediport/internal/medication/domain"
	customValidation "github.com/allisson/mediport/internal/validation"
)

// MedicationRequest contains the fields of an inventory entry.
type MedicationRequest struct {
	IDMedicament      string  `json:"id_medicament"`
	Denumire          string  `json:"denumire"`
	Concentratie      string  `json:"concentratie"`
	FormaFarmaceutica string  `json:"forma_farmaceutica"`
	Pret              float64 `json:"pret"`
	Stoc              int     `json:"stoc"`
	Disponibilitate   bool    `json:"disponibilitate"`
}

// Validate checks if the medication request is valid.
func (r *MedicationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.IDMedicament,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Identifier,
			validation.Length(1, 50),
		),
		validation.Field(&r.Denumire,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Concentratie,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.FormaFarmaceutica,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.Pret, validation.Min(0.0)),
		validation.Field(&r.Stoc, validation.Min(0)),
	)
}

// ToDomain converts the request to an inventory entry.
func (r *MedicationRequest) ToDomain() *medicationDomain.Medication {
	return &medicationDomain.Medication{
		IDMedicament:      r.IDMedicament,
		Denumire:          r.Denumire,
		Concentratie:      r.Concentratie,
		FormaFarmaceutica: r.FormaFarmaceutica,
		Pret:              r.Pret,
		Stoc:              r.Stoc,
		Disponibilitate:   r.Disponibilitate,
	}
}
