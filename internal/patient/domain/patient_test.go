package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePatients() []*Patient {
	return []*Patient{
		{ID: 1, LastName: "Popescu", FirstName: "Ion", BedID: "A-101", PatientState: StateStable},
		{ID: 2, LastName: "Ionescu", FirstName: "Maria", BedID: "A-102", PatientState: StateCritical},
		{ID: 3, LastName: "Georgescu", FirstName: "Andrei", BedID: "B-201", PatientState: StateImproving},
		{ID: 4, LastName: "Dumitru", FirstName: "Elena", BedID: "B-202", PatientState: StateEmergency},
		{ID: 5, LastName: "Stan", FirstName: "Vlad", BedID: "C-301", PatientState: StateWorsening},
	}
}

func ids(patients []*Patient) []int64 {
	out := make([]int64, 0, len(patients))
	for _, p := range patients {
		out = append(out, p.ID)
	}
	return out
}

func TestParseTab(t *testing.T) {
	assert.Equal(t, TabAll, ParseTab(""))
	assert.Equal(t, TabAll, ParseTab("all"))
	assert.Equal(t, TabCritical, ParseTab(" Critical "))
	assert.Equal(t, TabStable, ParseTab("STABLE"))
	assert.Equal(t, TabAll, ParseTab("discharged"))
}

func TestFilter_Apply(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		expected []int64
	}{
		{name: "everything", filter: Filter{}, expected: []int64{1, 2, 3, 4, 5}},
		{name: "critical tab", filter: Filter{Tab: TabCritical}, expected: []int64{2, 4}},
		{name: "stable tab", filter: Filter{Tab: TabStable}, expected: []int64{1, 3}},
		{name: "unknown tab", filter: Filter{Tab: ParseTab("other")}, expected: []int64{1, 2, 3, 4, 5}},
		{name: "last name", filter: Filter{Search: "POPESCU"}, expected: []int64{1}},
		{name: "first name", filter: Filter{Search: "mar"}, expected: []int64{2}},
		{name: "bed", filter: Filter{Search: "b-2"}, expected: []int64{3, 4}},
		{name: "state", filter: Filter{Search: "worse"}, expected: []int64{5}},
		{name: "search within tab", filter: Filter{Search: "escu", Tab: TabCritical}, expected: []int64{2}},
		{name: "no match", filter: Filter{Search: "zzz"}, expected: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(tt.filter.Apply(samplePatients())))
		})
	}
}

func TestBedHolder(t *testing.T) {
	holder, ok := BedHolder(samplePatients(), "a-102")
	require.True(t, ok)
	assert.Equal(t, int64(2), holder.ID)

	_, ok = BedHolder(samplePatients(), "Z-999")
	assert.False(t, ok)

	_, ok = BedHolder([]*Patient{{ID: 9}}, "")
	assert.False(t, ok)
}

func TestPatient_ApplyDefaults(t *testing.T) {
	today := time.Date(2024, 3, 15, 23, 30, 0, 0, time.FixedZone("EET", 2*60*60))

	p := &Patient{LastName: "Popescu", FirstName: "Ion", BedID: "A-101"}
	p.ApplyDefaults(today)

	assert.Equal(t, StateStable, p.PatientState)
	assert.Equal(t, SexMale, p.Sex)
	assert.Equal(t, "O+", p.BloodType)
	assert.Equal(t, "2024-03-15", p.AdmissionDate)
	assert.NotNil(t, p.Prescriptions)

	explicit := &Patient{PatientState: StateCritical, Sex: SexFemale, BloodType: "AB-", AdmissionDate: "2024-01-01"}
	explicit.ApplyDefaults(today)
	assert.Equal(t, StateCritical, explicit.PatientState)
	assert.Equal(t, SexFemale, explicit.Sex)
	assert.Equal(t, "AB-", explicit.BloodType)
	assert.Equal(t, "2024-01-01", explicit.AdmissionDate)
}

func TestPrescription_ApplyDefaults(t *testing.T) {
	today := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	p := &Prescription{Medication: "Paracetamol", Dosage: "500mg"}
	p.ApplyDefaults(today)
	assert.Equal(t, "2024-03-15", p.StartDate)
	assert.Equal(t, "Dr. Unknown", p.PrescribedBy)

	explicit := &Prescription{StartDate: "2024-03-01", PrescribedBy: "Dr. House"}
	explicit.ApplyDefaults(today)
	assert.Equal(t, "2024-03-01", explicit.StartDate)
	assert.Equal(t, "Dr. House", explicit.PrescribedBy)
}

func TestPatient_FullName(t *testing.T) {
	assert.Equal(t, "Popescu, Ion", (&Patient{LastName: "Popescu", FirstName: "Ion"}).FullName())
}
