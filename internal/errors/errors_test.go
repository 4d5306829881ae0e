package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// remoteStatus stands in for an error type carrying an upstream status code.
type remoteStatus struct {
	Code int
}

func (e *remoteStatus) Error() string { return "remote status" }

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrConflict, ErrInvalidInput, ErrUnauthorized, ErrForbidden, ErrUnavailable}

	for i, a := range sentinels {
		for j, b := range sentinels {
			assert.Equal(t, i == j, Is(a, b), "%v vs %v", a, b)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wrap     func(error) error
		expected string
	}{
		{
			name:     "module error over sentinel",
			err:      ErrConflict,
			wrap:     func(err error) error { return Wrap(err, "bed already occupied") },
			expected: "bed already occupied: conflict",
		},
		{
			name:     "formatted context",
			err:      ErrNotFound,
			wrap:     func(err error) error { return Wrapf(err, "patient %d", 7) },
			expected: "patient 7: not found",
		},
		{
			name: "layered context",
			err:  ErrUnavailable,
			wrap: func(err error) error {
				return Wrap(Wrapf(err, "GET %s", "/patients"), "failed to list patients")
			},
			expected: "failed to list patients: GET /patients: unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := tt.wrap(tt.err)

			require.Error(t, wrapped)
			assert.Equal(t, tt.expected, wrapped.Error())
			assert.True(t, Is(wrapped, tt.err))
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
}

func TestAs(t *testing.T) {
	wrapped := Wrapf(&remoteStatus{Code: 503}, "POST %s", "/auth/login")

	var status *remoteStatus
	require.True(t, As(wrapped, &status))
	assert.Equal(t, 503, status.Code)

	assert.False(t, As(ErrForbidden, &status))
}

func TestJoin(t *testing.T) {
	joined := Join(Wrap(ErrForbidden, "denied"), nil, Wrap(ErrUnavailable, "audit write failed"))

	assert.True(t, Is(joined, ErrForbidden))
	assert.True(t, Is(joined, ErrUnavailable))
	assert.False(t, Is(joined, ErrNotFound))
	assert.NoError(t, Join(nil, nil))
}

func TestNew(t *testing.T) {
	err := New("router not configured")

	assert.EqualError(t, err, "router not configured")
	assert.False(t, errors.Is(err, New("router not configured")))
}
