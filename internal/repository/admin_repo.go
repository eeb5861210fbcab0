package repository

import (
	"schoolsite/internal/domain"
	"schoolsite/internal/models"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalNews      int64 `json:"total_news"`
	TotalEvents    int64 `json:"total_events"`
	TotalStaff     int64 `json:"total_staff"`
	TotalGallery   int64 `json:"total_gallery"`
	TotalResources int64 `json:"total_resources"`
	TotalVideos    int64 `json:"total_videos"`
}

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetDashboardStats() (*DashboardStats, error) {
	var s DashboardStats
	counts := []struct {
		q   *gorm.DB
		dst *int64
	}{
		{r.db.Model(&models.NewsEvent{}).Where("type = ?", domain.NewsTypeNews), &s.TotalNews},
		{r.db.Model(&models.NewsEvent{}).Where("type = ?", domain.NewsTypeEvent), &s.TotalEvents},
		{r.db.Model(&models.StaffMember{}), &s.TotalStaff},
		{r.db.Model(&models.GalleryImage{}), &s.TotalGallery},
		{r.db.Model(&models.ELearningResource{}), &s.TotalResources},
		{r.db.Model(&models.VideoSetting{}), &s.TotalVideos},
	}
	for _, c := range counts {
		if err := c.q.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &s, nil
}
