package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/config"
	"github.com/prajwal000/Egharbari-sub001/models"
)

func TestSeedCreatesFirstAdminOnce(t *testing.T) {
	stores := newStores()
	svc := NewSeedService(stores.Users, config.SeedConfig{
		AdminName:     "Site Admin",
		AdminEmail:    "Admin@eGharBari.com",
		AdminPassword: "admin123",
	})
	ctx := context.Background()

	admin, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, "admin@egharbari.com", admin.Email)

	_, err = svc.Seed(ctx)
	assert.True(t, errors.Is(err, ErrAdminExists))
}

func TestSeedRequiresCredentials(t *testing.T) {
	svc := NewSeedService(newStores().Users, config.SeedConfig{AdminName: "Site Admin"})

	_, err := svc.Seed(context.Background())
	requireKind(t, err, apperr.KindValidation)
}
