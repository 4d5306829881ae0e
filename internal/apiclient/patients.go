package apiclient

import (
	"context"
	"net/http"

	"github.com/allisson/mediport/internal/errors"
	patientDomain "github.com/allisson/mediport/internal/patient/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

func patientNotFound(err error) error {
	if errors.Is(err, errors.ErrNotFound) {
		return patientDomain.ErrPatientNotFound
	}
	return err
}

// ListPatients returns every admitted patient.
func (c *Client) ListPatients(
	ctx context.Context,
	credential sessionDomain.Credential,
) ([]*patientDomain.Patient, error) {
	patients := make([]*patientDomain.Patient, 0)
	if err := c.do(ctx, &credential, http.MethodGet, "/patients", "/patients", nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// GetPatient returns ErrPatientNotFound when the id is unknown.
func (c *Client) GetPatient(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
) (*patientDomain.Patient, error) {
	var patient patientDomain.Patient
	err := c.do(ctx, &credential, http.MethodGet, "/patients/{id}", idPath("/patients", id), nil, &patient)
	if err != nil {
		return nil, patientNotFound(err)
	}
	return &patient, nil
}

// CreatePatient admits a patient and returns the stored record.
func (c *Client) CreatePatient(
	ctx context.Context,
	credential sessionDomain.Credential,
	patient *patientDomain.Patient,
) (*patientDomain.Patient, error) {
	var created patientDomain.Patient
	if err := c.do(ctx, &credential, http.MethodPost, "/patients", "/patients", patient, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePatient replaces the patient record.
func (c *Client) UpdatePatient(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
	patient *patientDomain.Patient,
) (*patientDomain.Patient, error) {
	var updated patientDomain.Patient
	err := c.do(ctx, &credential, http.MethodPut, "/patients/{id}", idPath("/patients", id), patient, &updated)
	if err != nil {
		return nil, patientNotFound(err)
	}
	return &updated, nil
}

// DeletePatient discharges the patient.
func (c *Client) DeletePatient(ctx context.Context, credential sessionDomain.Credential, id int64) error {
	err := c.do(ctx, &credential, http.MethodDelete, "/patients/{id}", idPath("/patients", id), nil, nil)
	return patientNotFound(err)
}

// AssignBed moves the patient to another bed.
func (c *Client) AssignBed(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
	assignment patientDomain.BedAssignment,
) (*patientDomain.Patient, error) {
	var updated patientDomain.Patient
	path := idPath("/patients", id) + "/bed"
	if err := c.do(ctx, &credential, http.MethodPut, "/patients/{id}/bed", path, &assignment, &updated); err != nil {
		return nil, patientNotFound(err)
	}
	return &updated, nil
}

// AddPrescription attaches a prescription to the patient.
func (c *Client) AddPrescription(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
	prescription *patientDomain.Prescription,
) (*patientDomain.Prescription, error) {
	var created patientDomain.Prescription
	path := idPath("/patients", id) + "/prescriptions"
	err := c.do(ctx, &credential, http.MethodPost, "/patients/{id}/prescriptions", path, prescription, &created)
	if err != nil {
		return nil, patientNotFound(err)
	}
	return &created, nil
}
