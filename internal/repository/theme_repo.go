package repository

import (
	"errors"

	"schoolsite/internal/models"

	"gorm.io/gorm"
)

type ThemeRepository struct {
	db *gorm.DB
}

func NewThemeRepository(db *gorm.DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

func (r *ThemeRepository) List() ([]models.ThemeSetting, error) {
	var list []models.ThemeSetting
	err := r.db.Order("id ASC").Find(&list).Error
	return list, err
}

// Active returns the active theme row, or domain.ErrNotFound when none is active.
func (r *ThemeRepository) Active() (*models.ThemeSetting, error) {
	var t models.ThemeSetting
	if err := r.db.Where("is_active = ?", true).Order("id ASC").First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

// Activate deactivates every row, then activates the row named name (creating
// it if missing). The two steps are separate statements: a failure between them
// leaves no active theme.
func (r *ThemeRepository) Activate(name string) (*models.ThemeSetting, error) {
	if err := r.db.Model(&models.ThemeSetting{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
		return nil, err
	}
	var t models.ThemeSetting
	err := r.db.Where("theme_name = ?", name).Order("id ASC").First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		t = models.ThemeSetting{ThemeName: name, IsActive: true}
		if err := r.db.Create(&t).Error; err != nil {
			return nil, err
		}
		return &t, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(&t).Update("is_active", true).Error; err != nil {
		return nil, err
	}
	t.IsActive = true
	return &t, nil
}
