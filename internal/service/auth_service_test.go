package service_test

import (
	"testing"
	"time"

	"schoolsite/config"
	"schoolsite/internal/auth"
	"schoolsite/internal/database"
	"schoolsite/internal/domain"
	"schoolsite/internal/models"
	"schoolsite/internal/repository"
	"schoolsite/internal/service"
	"schoolsite/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*service.AuthService, *repository.UserRepository, *config.SessionConfig) {
	db := testutil.NewBootstrappedDB(t)
	cfg := &config.SessionConfig{Secret: "s", TTL: time.Hour, Issuer: "schoolsite"}
	users := repository.NewUserRepository(db)
	return service.NewAuthService(cfg, users), users, cfg
}

func TestLoginWithCorrectCredentials(t *testing.T) {
	svc, _, cfg := newAuthService(t)

	u, token, err := svc.Login(database.AdminEmail, database.AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, database.AdminEmail, u.Email)

	claims, err := auth.ParseSessionToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, users, _ := newAuthService(t)
	require.NoError(t, users.Create(&models.User{Username: "nohash", Email: "nohash@school.test"}))

	cases := map[string][2]string{
		"wrong password": {database.AdminEmail, "wrong"},
		"unknown email":  {"nobody@school.test", database.AdminPassword},
		"empty password": {database.AdminEmail, ""},
		"no stored hash": {"nohash@school.test", ""},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			u, token, err := svc.Login(c[0], c[1])
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
			assert.Equal(t, domain.ErrInvalidCredentials.Error(), err.Error())
			assert.Nil(t, u)
			assert.Empty(t, token)
		})
	}
}

func TestUpdateCredentials(t *testing.T) {
	svc, users, _ := newAuthService(t)
	admin, err := users.GetByEmail(database.AdminEmail)
	require.NoError(t, err)

	err = svc.UpdateCredentials(admin.ID, "new@school.test", "wrong", "newpass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	require.NoError(t, svc.UpdateCredentials(admin.ID, "new@school.test", database.AdminPassword, "newpass"))
	_, err = svc.Authenticate("new@school.test", "newpass")
	assert.NoError(t, err)
	_, err = svc.Authenticate(database.AdminEmail, database.AdminPassword)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	require.NoError(t, svc.UpdateCredentials(admin.ID, "", "newpass", ""))
	_, err = svc.Authenticate("new@school.test", "newpass")
	assert.NoError(t, err)
}
