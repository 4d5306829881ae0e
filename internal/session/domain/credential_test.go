package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/mediport/internal/errors"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
)

type mapGetter map[string]string

func (m mapGetter) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := m[key]
	return value, ok, nil
}

type failingGetter struct{ err error }

func (f failingGetter) Get(context.Context, string) (string, bool, error) {
	return "", false, f.err
}

func TestLoadCredential(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		store    mapGetter
		expected Credential
		err      error
	}{
		{
			name:     "access token with default type",
			store:    mapGetter{KeyAccessToken: "abc"},
			expected: Credential{Token: "abc", Type: "Bearer"},
		},
		{
			name:     "alternate token key",
			store:    mapGetter{KeyToken: "legacy"},
			expected: Credential{Token: "legacy", Type: "Bearer"},
		},
		{
			name:     "empty access token falls back to token",
			store:    mapGetter{KeyAccessToken: "", KeyToken: "legacy"},
			expected: Credential{Token: "legacy", Type: "Bearer"},
		},
		{
			name:     "access token wins over token",
			store:    mapGetter{KeyAccessToken: "primary", KeyToken: "legacy"},
			expected: Credential{Token: "primary", Type: "Bearer"},
		},
		{
			name:     "explicit token type",
			store:    mapGetter{KeyAccessToken: "abc", KeyTokenType: "Token"},
			expected: Credential{Token: "abc", Type: "Token"},
		},
		{
			name:  "no token",
			store: mapGetter{KeyTokenType: "Bearer"},
			err:   ErrNoCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credential, err := LoadCredential(ctx, tt.store)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, credential)
		})
	}
}

func TestLoadCredential_StoreError(t *testing.T) {
	storeErr := errors.New("permission denied")

	_, err := LoadCredential(context.Background(), failingGetter{err: storeErr})

	assert.ErrorIs(t, err, storeErr)
}

func TestCredential_AuthorizationHeader(t *testing.T) {
	assert.Equal(t, "Bearer abc", Credential{Token: "abc", Type: "Bearer"}.AuthorizationHeader())
	assert.Equal(t, "Bearer abc", Credential{Token: "abc"}.AuthorizationHeader())
	assert.Equal(t, "Token xyz", Credential{Token: "xyz", Type: "Token"}.AuthorizationHeader())
}

func TestLoadPrincipal(t *testing.T) {
	ctx := context.Background()

	principal, err := LoadPrincipal(ctx, mapGetter{
		KeyAccessToken: "abc",
		KeyUsername:    "ana",
		KeyRole:        "Receptionist",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana", principal.Username)
	assert.Equal(t, rbacDomain.RoleReceptionist, principal.Role)
	assert.Equal(t, "Bearer abc", principal.Credential.AuthorizationHeader())

	principal, err = LoadPrincipal(ctx, mapGetter{KeyAccessToken: "abc"})
	require.NoError(t, err)
	assert.Empty(t, principal.Role)
	assert.Empty(t, rbacDomain.Capabilities(principal.Role))

	_, err = LoadPrincipal(ctx, mapGetter{KeyRole: "Doctor"})
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestSession_Get(t *testing.T) {
	ctx := context.Background()
	session := &Session{
		Username:  "dr.house",
		Role:      rbacDomain.RoleDoctor,
		Token:     "remote-token",
		TokenType: "Bearer",
	}

	value, ok, err := session.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "remote-token", value)

	_, ok, err = session.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	principal, err := LoadPrincipal(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, rbacDomain.RoleDoctor, principal.Role)
	assert.Equal(t, "Bearer remote-token", principal.Credential.AuthorizationHeader())
}

func TestSession_IsActive(t *testing.T) {
	now := time.Now().UTC()
	revokedAt := now.Add(-time.Minute)

	assert.True(t, (&Session{ExpiresAt: now.Add(time.Hour)}).IsActive(now))
	assert.False(t, (&Session{ExpiresAt: now.Add(-time.Second)}).IsActive(now))
	assert.False(t, (&Session{ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt}).IsActive(now))
}

func TestPrincipal_Authorize(t *testing.T) {
	policy := rbacDomain.DefaultPolicy()
	receptionist := &Principal{Username: "front", Role: rbacDomain.RoleReceptionist}

	assert.NoError(t, receptionist.Authorize(policy, rbacDomain.Require(rbacDomain.AssignBeds)))
	assert.ErrorIs(t, receptionist.Authorize(policy, rbacDomain.Require(rbacDomain.ManagePatients)), apperrors.ErrForbidden)

	var nobody *Principal
	assert.ErrorIs(t, nobody.Authorize(policy, rbacDomain.Require(rbacDomain.ViewPatients)), ErrNoCredential)
}
