package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/models"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	user := &models.User{ID: primitive.NewObjectID(), Email: "asha@example.com", Role: models.RoleAdmin, IsActive: true}

	token, err := m.Generate(user)
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	s := claims.Session()
	assert.Equal(t, user.ID, s.UserID)
	assert.Equal(t, models.RoleAdmin, s.Role)
	assert.True(t, s.IsActive)
}

func TestTokenRejectsWrongSecretAndExpiry(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, err := m.Generate(&models.User{ID: primitive.NewObjectID(), Role: models.RoleUser})
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Hour).Validate(token)
	assert.Error(t, err)

	late := NewTokenManager("secret", time.Hour)
	late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = late.Validate(token)
	assert.Error(t, err)
}
