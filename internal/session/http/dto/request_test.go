package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Username: "admin", Password: "secret"}).Validate())
	assert.Error(t, (&LoginRequest{Username: "", Password: "secret"}).Validate())
	assert.Error(t, (&LoginRequest{Username: "  ", Password: "secret"}).Validate())
	assert.Error(t, (&LoginRequest{Username: "admin"}).Validate())
}
