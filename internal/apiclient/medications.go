package apiclient

import (
	"context"
	"net/http"

	"github.com/allisson/mediport/internal/errors"
	medicationDomain "github.com/allisson/mediport/internal/medication/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

func medicationNotFound(err error) error {
	if errors.Is(err, errors.ErrNotFound) {
		return medicationDomain.ErrMedicationNotFound
	}
	return err
}

// ListMedications returns the whole inventory.
func (c *Client) ListMedications(
	ctx context.Context,
	credential sessionDomain.Credential,
) ([]*medicationDomain.Medication, error) {
	medications := make([]*medicationDomain.Medication, 0)
	if err := c.do(ctx, &credential, http.MethodGet, "/medications", "/medications", nil, &medications); err != nil {
		return nil, err
	}
	return medications, nil
}

// GetMedication returns ErrMedicationNotFound when the id is unknown.
func (c *Client) GetMedication(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
) (*medicationDomain.Medication, error) {
	var medication medicationDomain.Medication
	err := c.do(ctx, &credential, http.MethodGet, "/medications/{id}", idPath("/medications", id), nil, &medication)
	if err != nil {
		return nil, medicationNotFound(err)
	}
	return &medication, nil
}

// CreateMedication adds an inventory entry.
func (c *Client) CreateMedication(
	ctx context.Context,
	credential sessionDomain.Credential,
	medication *medicationDomain.Medication,
) (*medicationDomain.Medication, error) {
	var created medicationDomain.Medication
	err := c.do(ctx, &credential, http.MethodPost, "/medications", "/medications", medication, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateMedication replaces an inventory entry.
func (c *Client) UpdateMedication(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
	medication *medicationDomain.Medication,
) (*medicationDomain.Medication, error) {
	var updated medicationDomain.Medication
	path := idPath("/medications", id)
	if err := c.do(ctx, &credential, http.MethodPut, "/medications/{id}", path, medication, &updated); err != nil {
		return nil, medicationNotFound(err)
	}
	return &updated, nil
}

// DeleteMedication removes an inventory entry.
func (c *Client) DeleteMedication(ctx context.Context, credential sessionDomain.Credential, id int64) error {
	err := c.do(ctx, &credential, http.MethodDelete, "/medications/{id}", idPath("/medications", id), nil, nil)
	return medicationNotFound(err)
}
