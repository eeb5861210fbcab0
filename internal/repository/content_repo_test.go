package repository_test

import (
	"testing"
	"time"

	"schoolsite/internal/domain"
	"schoolsite/internal/models"
	"schoolsite/internal/repository"
	"schoolsite/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsListNewestFirstByType(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewNewsRepository(db)
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(&models.NewsEvent{Title: "old event", Content: "x", Type: domain.NewsTypeEvent, DateCreated: base}))
	require.NoError(t, repo.Create(&models.NewsEvent{Title: "news", Content: "x", Type: domain.NewsTypeNews, DateCreated: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(&models.NewsEvent{Title: "new event", Content: "x", Type: domain.NewsTypeEvent, DateCreated: base.Add(2 * time.Hour)}))

	events, err := repo.List(domain.NewsTypeEvent, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "new event", events[0].Title)
	assert.Equal(t, "old event", events[1].Title)

	all, err := repo.List("", 1)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "new event", all[0].Title)
}

func TestELearningFilterIsConjunction(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewELearningRepository(db)
	add := func(form, subject string) {
		r := &models.ELearningResource{Title: form + " " + subject, Form: form, Subject: subject}
		r.SetContent(models.YoutubeResource{URL: "https://youtu.be/x"})
		require.NoError(t, repo.Create(r))
	}
	add("Form 1", "Mathematics")
	add("Form 1", "Physics")
	add("Form 2", "Mathematics")

	cases := []struct {
		filter repository.ResourceFilter
		want   int
	}{
		{repository.ResourceFilter{}, 3},
		{repository.ResourceFilter{Form: "Form 1"}, 2},
		{repository.ResourceFilter{Subject: "Mathematics"}, 2},
		{repository.ResourceFilter{Form: "Form 1", Subject: "Mathematics"}, 1},
		{repository.ResourceFilter{Form: "Form 4"}, 0},
	}
	for _, c := range cases {
		list, err := repo.List(c.filter)
		require.NoError(t, err)
		assert.Len(t, list, c.want, "%+v", c.filter)
	}
}

func TestSettingUpsert(t *testing.T) {
	repo := repository.NewSettingRepository(testutil.NewDB(t))

	_, err := repo.Get(domain.SettingAIAPIKey)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Set(domain.SettingAIAPIKey, "k1"))
	require.NoError(t, repo.Set(domain.SettingAIAPIKey, "k2"))

	v, err := repo.Get(domain.SettingAIAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "k2", v)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestContentFirstRowIsCanonical(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewContentRepository(db)

	_, err := repo.Get()
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Save(&models.SchoolContent{SchoolName: "first"}))
	require.NoError(t, repo.Save(&models.SchoolContent{SchoolName: "second"}))

	c, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "first", c.SchoolName)
}

func TestDashboardStats(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&models.NewsEvent{Title: "a", Content: "b", Type: domain.NewsTypeNews}).Error)
	require.NoError(t, db.Create(&models.NewsEvent{Title: "a", Content: "b", Type: domain.NewsTypeEvent}).Error)
	require.NoError(t, db.Create(&models.StaffMember{Name: "n", Position: "p"}).Error)

	s, err := repository.NewAdminRepository(db).GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.TotalNews)
	assert.Equal(t, int64(1), s.TotalEvents)
	assert.Equal(t, int64(1), s.TotalStaff)
	assert.Zero(t, s.TotalGallery)
}
