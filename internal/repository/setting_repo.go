package repository

import (
	"schoolsite/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the value for key, or domain.ErrNotFound.
func (r *SettingRepository) Get(key string) (string, error) {
	var s models.SiteSetting
	if err := r.db.Where("setting_name = ?", key).First(&s).Error; err != nil {
		return "", translate(err)
	}
	return s.SettingValue, nil
}

// Set upserts key.
func (r *SettingRepository) Set(key, value string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
	}).Create(&models.SiteSetting{SettingName: key, SettingValue: value}).Error
}

func (r *SettingRepository) GetAll() ([]models.SiteSetting, error) {
	var list []models.SiteSetting
	err := r.db.Order("setting_name ASC").Find(&list).Error
	return list, err
}
