package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/models"
)

func TestValidatorReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&models.RegisterRequest{Name: "A", Email: "not-an-email", Password: "secret1"})
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Details, "name must be at least 2 characters")
	assert.Contains(t, appErr.Details, "email must be a valid email address")
}

func TestValidatorOneOf(t *testing.T) {
	v := NewValidator()
	role := models.Role("owner")

	err := v.Validate(&models.AdminUpdateUserRequest{Role: &role})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"role must be one of: user, admin"}, appErr.Details)
}

func TestValidatorAcceptsValidInput(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&models.LoginRequest{Email: "asha@example.com", Password: "x"}))
}
