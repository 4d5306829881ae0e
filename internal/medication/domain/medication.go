// Package domain defines the medication inventory entry. Field names on the wire
// follow the remote records API.
package domain

import "strings"

// Medication is one inventory entry.
type Medication struct {
	ID                int64   `json:"id"`
	IDMedicament      string  `json:"id_medicament"`
	Denumire          string  `json:"denumire"`
	Concentratie      string  `json:"concentratie"`
	FormaFarmaceutica string  `json:"forma_farmaceutica"`
	Pret              float64 `json:"pret"`
	Stoc              int     `json:"stoc"`
	Disponibilitate   bool    `json:"disponibilitate"`
}

// InStock reports whether the entry is both available and has stock left.
func (m *Medication) InStock() bool {
	return m.Disponibilitate && m.Stoc > 0
}

// Matches reports whether the code or name contains search, case-insensitively.
func (m *Medication) Matches(search string) bool {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.IDMedicament), term) ||
		strings.Contains(strings.ToLower(m.Denumire), term)
}
