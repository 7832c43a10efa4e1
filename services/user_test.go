package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/utils"
)

func newUserService() (*UserService, *utils.TokenManager) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	return NewUserService(newStores().Users, tokens), tokens
}

func registerRequest(email string) models.RegisterRequest {
	return models.RegisterRequest{Name: "Asha Shrestha", Email: email, Password: "secret123"}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, tokens := newUserService()
	ctx := context.Background()

	res, err := svc.Register(ctx, registerRequest("Asha@Example.com"))
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", res.User.Email)
	assert.Equal(t, models.RoleUser, res.User.Role)
	assert.NotEqual(t, "secret123", res.User.Password)

	claims, err := tokens.Validate(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)

	_, err = svc.Register(ctx, registerRequest("asha@example.com"))
	requireKind(t, err, apperr.KindConflict)

	login, err := svc.Login(ctx, models.LoginRequest{Email: "ASHA@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	requireKind(t, err, apperr.KindUnauthenticated)
	_, err = svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	requireKind(t, err, apperr.KindUnauthenticated)
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	res, err := svc.Register(ctx, registerRequest("asha@example.com"))
	require.NoError(t, err)
	inactive := false
	_, err = svc.AdminUpdate(ctx, adminSession(), res.User.ID, models.AdminUpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "asha@example.com", Password: "secret123"})
	requireKind(t, err, apperr.KindUnauthenticated)
	assert.Contains(t, err.Error(), "deactivated")
}

func TestUpdateProfilePasswordChange(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	res, err := svc.Register(ctx, registerRequest("asha@example.com"))
	require.NoError(t, err)
	session := &models.Session{UserID: res.User.ID, Email: res.User.Email, Role: models.RoleUser, IsActive: true}

	_, err = svc.UpdateProfile(ctx, session, models.UpdateProfileRequest{CurrentPassword: "wrong", NewPassword: "newpass123"})
	requireKind(t, err, apperr.KindValidation)

	name := "  Asha S.  "
	updated, err := svc.UpdateProfile(ctx, session, models.UpdateProfileRequest{
		Name:            &name,
		CurrentPassword: "secret123",
		NewPassword:     "newpass123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha S.", updated.Name)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "asha@example.com", Password: "newpass123"})
	assert.NoError(t, err)
}

func TestAdminUserManagement(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()
	admin := adminSession()

	res, err := svc.Register(ctx, registerRequest("asha@example.com"))
	require.NoError(t, err)

	_, _, err = svc.List(ctx, userSession("asha@example.com"), models.UserFilter{}, models.Page{Page: 1, Limit: 10})
	requireKind(t, err, apperr.KindForbidden)

	users, pg, err := svc.List(ctx, admin, models.UserFilter{}, models.Page{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, int64(1), pg.Total)

	bad := models.Role("owner")
	_, err = svc.AdminUpdate(ctx, admin, res.User.ID, models.AdminUpdateUserRequest{Role: &bad})
	requireKind(t, err, apperr.KindValidation)

	requireKind(t, svc.Delete(ctx, admin, admin.UserID), apperr.KindForbidden)
	require.NoError(t, svc.Delete(ctx, admin, res.User.ID))
	_, err = svc.Get(ctx, admin, res.User.ID)
	requireKind(t, err, apperr.KindNotFound)
}
