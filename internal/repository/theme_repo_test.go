package repository_test

import (
	"testing"

	"schoolsite/internal/domain"
	"schoolsite/internal/models"
	"schoolsite/internal/repository"
	"schoolsite/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeThemes(t *testing.T, repo *repository.ThemeRepository) []string {
	t.Helper()
	list, err := repo.List()
	require.NoError(t, err)
	var names []string
	for _, th := range list {
		if th.IsActive {
			names = append(names, th.ThemeName)
		}
	}
	return names
}

func TestThemeActivateLeavesExactlyOneActive(t *testing.T) {
	starts := map[string][]models.ThemeSetting{
		"empty": nil,
		"none active": {
			{ThemeName: domain.ThemeBlue}, {ThemeName: domain.ThemeRed},
		},
		"one active": {
			{ThemeName: domain.ThemeBlue, IsActive: true}, {ThemeName: domain.ThemeGray},
		},
		"all active": {
			{ThemeName: domain.ThemeBlue, IsActive: true},
			{ThemeName: domain.ThemeRed, IsActive: true},
			{ThemeName: domain.ThemeGray, IsActive: true},
		},
		"duplicate target": {
			{ThemeName: domain.ThemeRed, IsActive: true}, {ThemeName: domain.ThemeRed, IsActive: true},
		},
	}

	for name, rows := range starts {
		for _, target := range domain.Themes {
			t.Run(name+"/"+target, func(t *testing.T) {
				db := testutil.NewDB(t)
				for i := range rows {
					row := rows[i]
					require.NoError(t, db.Create(&row).Error)
				}
				repo := repository.NewThemeRepository(db)

				got, err := repo.Activate(target)
				require.NoError(t, err)
				assert.Equal(t, target, got.ThemeName)
				assert.Equal(t, []string{target}, activeThemes(t, repo))

				active, err := repo.Active()
				require.NoError(t, err)
				assert.Equal(t, target, active.ThemeName)
			})
		}
	}
}

func TestThemeActiveNone(t *testing.T) {
	repo := repository.NewThemeRepository(testutil.NewDB(t))
	_, err := repo.Active()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVideoActivation(t *testing.T) {
	repo := repository.NewVideoRepository(testutil.NewDB(t))

	first := &models.VideoSetting{VideoFilename: "a.mp4", VideoTitle: "A"}
	require.NoError(t, repo.CreateActive(first))
	second := &models.VideoSetting{VideoFilename: "b.mp4", VideoTitle: "B"}
	require.NoError(t, repo.CreateActive(second))

	active, err := repo.Active()
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	require.NoError(t, repo.Activate(first))
	list, err := repo.List()
	require.NoError(t, err)
	n := 0
	for _, v := range list {
		if v.IsActive {
			n++
			assert.Equal(t, first.ID, v.ID)
		}
	}
	assert.Equal(t, 1, n)
}
