package domain

import "strings"

// Tab selects a group of patients by state.
type Tab string

const (
	TabAll      Tab = "all"
	TabCritical Tab = "critical"
	TabStable   Tab = "stable"
)

// ParseTab converts a request value to a Tab. Unknown values select TabAll.
func ParseTab(value string) Tab {
	switch Tab(strings.ToLower(strings.TrimSpace(value))) {
	case TabCritical:
		return TabCritical
	case TabStable:
		return TabStable
	default:
		return TabAll
	}
}

// Includes reports whether a patient in state belongs to the tab.
func (t Tab) Includes(state State) bool {
	switch t {
	case TabCritical:
		return state == StateCritical || state == StateEmergency
	case TabStable:
		return state == StateStable || state == StateImproving
	default:
		return true
	}
}

// Filter narrows the patient list.
type Filter struct {
	// Search is matched case-insensitively against last name, first name, bed and state.
	Search string
	Tab    Tab
}

// Matches reports whether p passes both the search and the tab.
func (f Filter) Matches(p *Patient) bool {
	if !f.Tab.Includes(p.PatientState) {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}

	for _, field := range []string{p.LastName, p.FirstName, p.BedID, string(p.PatientState)} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Apply returns the patients matching f, preserving order.
func (f Filter) Apply(patients []*Patient) []*Patient {
	filtered := make([]*Patient, 0, len(patients))
	for _, p := range patients {
		if f.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// BedHolder returns the patient occupying bedID, if any. Bed ids compare case-insensitively.
func BedHolder(patients []*Patient, bedID string) (*Patient, bool) {
	for _, p := range patients {
		if p.BedID != "" && strings.EqualFold(p.BedID, bedID) {
			return p, true
		}
	}
	return nil, false
}
