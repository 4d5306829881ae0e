package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/mediport/internal/errors"
	"github.com/allisson/mediport/internal/httputil"
	metricsMocks "github.com/allisson/mediport/internal/metrics/mocks"
	patientDomain "github.com/allisson/mediport/internal/patient/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

var testCredential = sessionDomain.Credential{Token: "remote-token", Type: "Bearer"}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *metricsMocks.MockRemoteMetrics) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	remoteMetrics := &metricsMocks.MockRemoteMetrics{}
	remoteMetrics.On("RecordRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return()

	client, err := New(Config{
		BaseURL:      server.URL + "/api/",
		Timeout:      2 * time.Second,
		RetryMax:     2,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 5 * time.Millisecond,
	}, remoteMetrics, nil)
	require.NoError(t, err)
	return client, remoteMetrics
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "localhost:3000"}, nil, nil)
	assert.ErrorContains(t, err, "invalid remote api base url")

	_, err = New(Config{BaseURL: "/api"}, nil, nil)
	assert.ErrorContains(t, err, "is not absolute")
}

func TestClient_Headers(t *testing.T) {
	var got http.Header
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		gotPath = r.URL.Path
		writeJSON(w, http.StatusOK, []any{})
	})

	ctx := httputil.WithRequestID(context.Background(), "req-123")
	_, err := client.ListPatients(ctx, testCredential)

	require.NoError(t, err)
	assert.Equal(t, "/api/patients", gotPath)
	assert.Equal(t, "Bearer remote-token", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "req-123", got.Get(HeaderRequestID))
}

func TestClient_NoRequestIDWithoutContextValue(t *testing.T) {
	var got http.Header
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		writeJSON(w, http.StatusOK, []any{})
	})

	_, err := client.ListUsers(context.Background(), testCredential)

	require.NoError(t, err)
	assert.Empty(t, got.Get(HeaderRequestID))
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected error
	}{
		{name: "bad request", status: http.StatusBadRequest, expected: errors.ErrInvalidInput},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, expected: errors.ErrInvalidInput},
		{name: "unauthorized", status: http.StatusUnauthorized, expected: errors.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, expected: errors.ErrForbidden},
		{name: "not found", status: http.StatusNotFound, expected: errors.ErrNotFound},
		{name: "conflict", status: http.StatusConflict, expected: errors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, map[string]string{"message": "remote says no"})
			})

			_, err := client.ListMedications(context.Background(), testCredential)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestClient_InvalidInputCarriesRemoteMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": "bedId is required"})
	})

	_, err := client.CreatePatient(context.Background(), testCredential, &patientDomain.Patient{})

	assert.ErrorIs(t, err, errors.ErrInvalidInput)
	assert.ErrorContains(t, err, "bedId is required")
}

func TestClient_OtherStatusIsStatusError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	_, err := client.ListUsers(context.Background(), testCredential)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTeapot, statusErr.StatusCode)
	assert.Equal(t, "short and stout", statusErr.Body)
	assert.NotErrorIs(t, err, errors.ErrUnavailable)
}

func TestClient_RetriesIdempotentRequests(t *testing.T) {
	var calls atomic.Int32
	client, remoteMetrics := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, []any{})
	})

	_, err := client.ListPatients(context.Background(), testCredential)

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	remoteMetrics.AssertCalled(t, "RecordRequest", mock.Anything, http.MethodGet, "/patients", http.StatusOK, mock.Anything)
	remoteMetrics.AssertNumberOfCalls(t, "RecordRequest", 1)
}

func TestClient_ExhaustedRetriesReturnStatusError(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ListPatients(context.Background(), testCredential)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.ErrorIs(t, err, errors.ErrUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_DoesNotRetryNonIdempotentRequests(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			var calls atomic.Int32
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				assert.Equal(t, method, r.Method)
				w.WriteHeader(http.StatusServiceUnavailable)
			})

			var err error
			switch method {
			case http.MethodPost:
				_, err = client.CreatePatient(context.Background(), testCredential, &patientDomain.Patient{})
			case http.MethodPatch:
				_, err = client.SetUserStatus(context.Background(), testCredential, 4, "Active")
			case http.MethodDelete:
				err = client.DeleteMedication(context.Background(), testCredential, 9)
			}

			assert.ErrorIs(t, err, errors.ErrUnavailable)
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestClient_ConnectionErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	remoteMetrics := &metricsMocks.MockRemoteMetrics{}
	remoteMetrics.On("RecordRequest", mock.Anything, http.MethodPost, "/auth/login", 0, mock.Anything).Return().Once()

	client, err := New(Config{BaseURL: baseURL, Timeout: time.Second}, remoteMetrics, nil)
	require.NoError(t, err)

	_, err = client.Login(context.Background(), "admin", "secret")

	assert.ErrorIs(t, err, errors.ErrUnavailable)
	remoteMetrics.AssertExpectations(t)
}

func TestClient_CanceledContext(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListPatients(ctx, testCredential)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, errors.ErrUnavailable)
}

func TestClient_MalformedResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	})

	_, err := client.ListMedications(context.Background(), testCredential)

	assert.ErrorIs(t, err, errors.ErrUnavailable)
	assert.ErrorContains(t, err, "malformed GET /medications response")
}
