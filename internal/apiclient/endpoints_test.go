package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/mediport/internal/errors"
	medicationDomain "github.com/allisson/mediport/internal/medication/domain"
	patientDomain "github.com/allisson/mediport/internal/patient/domain"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
	userDomain "github.com/allisson/mediport/internal/user/domain"
)

func decodeBody(t *testing.T, r *http.Request, target any) {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, target))
}

func TestClient_Login(t *testing.T) {
	t.Run("access token", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/auth/login", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))

			var body map[string]string
			decodeBody(t, r, &body)
			assert.Equal(t, map[string]string{"username": "admin", "password": "secret"}, body)

			writeJSON(w, http.StatusOK, map[string]string{"access_token": "abc", "token_type": "JWT"})
		})

		credential, err := client.Login(context.Background(), "admin", "secret")

		require.NoError(t, err)
		assert.Equal(t, sessionDomain.Credential{Token: "abc", Type: "JWT"}, credential)
	})

	t.Run("legacy token field and default type", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"token": "legacy"})
		})

		credential, err := client.Login(context.Background(), "admin", "secret")

		require.NoError(t, err)
		assert.Equal(t, sessionDomain.Credential{Token: "legacy", Type: "Bearer"}, credential)
	})

	t.Run("no token", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{})
		})

		_, err := client.Login(context.Background(), "admin", "secret")

		assert.ErrorIs(t, err, errors.ErrUnavailable)
	})

	t.Run("rejected", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.Login(context.Background(), "admin", "wrong")

		assert.ErrorIs(t, err, errors.ErrUnauthorized)
	})
}

func TestClient_Me(t *testing.T) {
	t.Run("numeric id", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/me", r.URL.Path)
			assert.Equal(t, "Bearer remote-token", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"id":7,"username":"sjohnson","name":"Dr. Sarah Johnson",` +
				`"email":"sarah.johnson@mediport.hospital","role":"Doctor"}`))
		})

		identity, err := client.Me(context.Background(), testCredential)

		require.NoError(t, err)
		assert.Equal(t, &sessionDomain.Identity{
			ID:       "7",
			Username: "sjohnson",
			Name:     "Dr. Sarah Johnson",
			Email:    "sarah.johnson@mediport.hospital",
			Role:     rbacDomain.RoleDoctor,
		}, identity)
	})

	t.Run("string id", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"u-1","username":"front","role":"Receptionist"}`))
		})

		identity, err := client.Me(context.Background(), testCredential)

		require.NoError(t, err)
		assert.Equal(t, "u-1", identity.ID)
		assert.Equal(t, rbacDomain.RoleReceptionist, identity.Role)
	})
}

func TestClient_Patients(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/patients/42", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetPatient(context.Background(), testCredential, 42)

		assert.ErrorIs(t, err, patientDomain.ErrPatientNotFound)
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("assign bed", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/patients/3/bed", r.URL.Path)

			var body patientDomain.BedAssignment
			decodeBody(t, r, &body)
			assert.Equal(t, patientDomain.BedAssignment{Room: "204", BedID: "B-12"}, body)

			writeJSON(w, http.StatusOK, patientDomain.Patient{ID: 3, BedID: "B-12", Room: "204"})
		})

		patient, err := client.AssignBed(context.Background(), testCredential, 3,
			patientDomain.BedAssignment{Room: "204", BedID: "B-12"})

		require.NoError(t, err)
		assert.Equal(t, "B-12", patient.BedID)
	})

	t.Run("add prescription", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/patients/3/prescriptions", r.URL.Path)
			writeJSON(w, http.StatusCreated, patientDomain.Prescription{ID: 11, Medication: "Paracetamol"})
		})

		prescription, err := client.AddPrescription(context.Background(), testCredential, 3,
			&patientDomain.Prescription{Medication: "Paracetamol", Dosage: "500mg"})

		require.NoError(t, err)
		assert.Equal(t, int64(11), prescription.ID)
	})

	t.Run("delete with empty body", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		})

		assert.NoError(t, client.DeletePatient(context.Background(), testCredential, 3))
	})
}

func TestClient_Medications(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":1,"id_medicament":"W64418001","denumire":"Paracetamol",` +
				`"concentratie":"500mg","forma_farmaceutica":"comprimate","pret":12.5,"stoc":40,"disponibilitate":true}]`))
		case http.MethodPut:
			assert.Equal(t, "/api/medications/99", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	medications, err := client.ListMedications(context.Background(), testCredential)
	require.NoError(t, err)
	require.Len(t, medications, 1)
	assert.Equal(t, 12.5, medications[0].Pret)
	assert.True(t, medications[0].InStock())

	_, err = client.UpdateMedication(context.Background(), testCredential, 99, &medicationDomain.Medication{})
	assert.ErrorIs(t, err, medicationDomain.ErrMedicationNotFound)
}

func TestClient_SetUserStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/users/4", r.URL.Path)

		var body map[string]string
		decodeBody(t, r, &body)
		assert.Equal(t, "Active", body["status"])

		writeJSON(w, http.StatusOK, userDomain.User{ID: 4, Status: userDomain.StatusActive})
	})

	user, err := client.SetUserStatus(context.Background(), testCredential, 4, userDomain.StatusActive)

	require.NoError(t, err)
	assert.Equal(t, userDomain.StatusActive, user.Status)
}
