package database_test

import (
	"testing"

	"schoolsite/internal/database"
	"schoolsite/internal/domain"
	"schoolsite/internal/models"
	"schoolsite/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestBootstrapSeedsEmptyStore(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, database.Bootstrap(db, zap.NewNop()))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, database.AdminEmail, users[0].Email)
	assert.NotEqual(t, database.AdminPassword, users[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte(database.AdminPassword)))

	var contents []models.SchoolContent
	require.NoError(t, db.Find(&contents).Error)
	require.Len(t, contents, 1)
	assert.Equal(t, "Gachororo Secondary School", contents[0].SchoolName)
	assert.Equal(t, "Knowledge, Character, Service", contents[0].Motto)

	var themes []models.ThemeSetting
	require.NoError(t, db.Find(&themes).Error)
	require.Len(t, themes, 1)
	assert.Equal(t, domain.DefaultTheme, themes[0].ThemeName)
	assert.True(t, themes[0].IsActive)

	var key models.SiteSetting
	require.NoError(t, db.Where("setting_name = ?", domain.SettingAIAPIKey).First(&key).Error)
	assert.Empty(t, key.SettingValue)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, database.Bootstrap(db, zap.NewNop()))
	require.NoError(t, database.Bootstrap(db, zap.NewNop()))

	for _, m := range []any{&models.User{}, &models.SchoolContent{}, &models.ThemeSetting{}, &models.SiteSetting{}} {
		var n int64
		require.NoError(t, db.Model(m).Count(&n).Error)
		assert.Equal(t, int64(1), n, "%T", m)
	}
}

func TestBootstrapKeepsExistingAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&models.User{Username: "head", Email: "head@school.test", PasswordHash: "x"}).Error)
	require.NoError(t, database.Bootstrap(db, zap.NewNop()))

	var n int64
	require.NoError(t, db.Model(&models.User{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestDialector(t *testing.T) {
	cases := map[string]string{
		"sqlite:///school.db":                    "sqlite",
		"school.db":                              "sqlite",
		"mysql://u:p@tcp(localhost:3306)/school": "mysql",
		"postgres://u:p@localhost/school":        "postgres",
	}
	for url, name := range cases {
		d, err := database.Dialector(url)
		require.NoError(t, err, url)
		assert.Equal(t, name, d.Name(), url)
	}

	_, err := database.Dialector("redis://localhost")
	assert.Error(t, err)
}
