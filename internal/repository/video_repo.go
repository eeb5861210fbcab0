package repository

import (
	"schoolsite/internal/models"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) GetByID(id uint) (*models.VideoSetting, error) {
	var v models.VideoSetting
	if err := r.db.First(&v, id).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *VideoRepository) List() ([]models.VideoSetting, error) {
	var list []models.VideoSetting
	err := r.db.Order("date_uploaded DESC").Order("id DESC").Find(&list).Error
	return list, err
}

func (r *VideoRepository) Active() (*models.VideoSetting, error) {
	var v models.VideoSetting
	if err := r.db.Where("is_active = ?", true).Order("id DESC").First(&v).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *VideoRepository) deactivateAll() error {
	return r.db.Model(&models.VideoSetting{}).Where("is_active = ?", true).Update("is_active", false).Error
}

// CreateActive deactivates every video, then inserts v as the active one.
func (r *VideoRepository) CreateActive(v *models.VideoSetting) error {
	if err := r.deactivateAll(); err != nil {
		return err
	}
	v.IsActive = true
	return r.db.Create(v).Error
}

// Activate deactivates every video, then activates v. Not atomic.
func (r *VideoRepository) Activate(v *models.VideoSetting) error {
	if err := r.deactivateAll(); err != nil {
		return err
	}
	if err := r.db.Model(v).Update("is_active", true).Error; err != nil {
		return err
	}
	v.IsActive = true
	return nil
}

func (r *VideoRepository) Delete(v *models.VideoSetting) error {
	return r.db.Delete(v).Error
}
