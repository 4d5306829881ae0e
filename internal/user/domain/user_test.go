package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staff() []*User {
	return []*User{
		{ID: 1, Name: "Admin User", Email: "admin@mediport.hospital", Role: "Administrator", Status: StatusActive},
		{ID: 2, Name: "Dr. Sarah Johnson", Email: "sarah.johnson@mediport.hospital", Role: "Doctor", Status: StatusActive},
		{ID: 3, Name: "Robert Chen", Email: "robert.chen@mediport.hospital", Role: "Pharmacist", Status: StatusActive},
		{ID: 4, Name: "Emily Rodriguez", Email: "emily.rodriguez@mediport.hospital", Role: "Nurse", Status: StatusInactive},
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("Active")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, status)

	status, err = ParseStatus("Inactive")
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, status)

	_, err = ParseStatus("active")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStatus_Toggle(t *testing.T) {
	assert.Equal(t, StatusInactive, StatusActive.Toggle())
	assert.Equal(t, StatusActive, StatusInactive.Toggle())
	assert.Equal(t, StatusActive, StatusActive.Toggle().Toggle())
}

func TestSearch(t *testing.T) {
	tests := []struct {
		term     string
		expected []int64
	}{
		{term: "", expected: []int64{1, 2, 3, 4}},
		{term: "sarah", expected: []int64{2}},
		{term: "CHEN@", expected: []int64{3}},
		{term: "nurse", expected: []int64{4}},
		{term: "mediport", expected: []int64{1, 2, 3, 4}},
		{term: "surgeon", expected: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			found := make([]int64, 0)
			for _, u := range Search(staff(), tt.term) {
				found = append(found, u.ID)
			}
			assert.Equal(t, tt.expected, found)
		})
	}
}
