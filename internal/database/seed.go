package database

import (
	"fmt"

	"schoolsite/internal/domain"
	"schoolsite/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// First-run admin account.
const (
	AdminUsername = "admin"
	AdminEmail    = "paulmunywoki086@gmail.com"
	AdminPassword = "Antananarivo"
)

// DefaultSchoolContent is seeded when no school content row exists.
func DefaultSchoolContent() models.SchoolContent {
	return models.SchoolContent{
		SchoolName:       "Gachororo Secondary School",
		PrincipalMessage: "Welcome to Gachororo Secondary School, where excellence in education meets character development.",
		Mission:          "To provide quality education that empowers students to become responsible citizens and leaders.",
		Vision:           "To be a leading institution of academic excellence and character formation.",
		Motto:            "Knowledge, Character, Service",
		History:          "Gachororo Secondary School was established to serve the educational needs of our community.",
		Achievements:     "Our students consistently perform well in KCSE examinations and excel in various co-curricular activities.",
		ContactAddress:   "Gachororo, Kenya",
		ContactPhone:     "+254 700 000 000",
		ContactEmail:     "info@gachororo.ac.ke",
	}
}

// Bootstrap seeds the admin user, school content, default theme and an empty
// AI key. Each seed runs only when its table has no matching row. The admin
// seed keys on an empty users table rather than the default email, so an
// admin who changed their email is not re-seeded.
func Bootstrap(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{Username: AdminUsername, Email: AdminEmail, PasswordHash: string(hash)}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		log.Info("default admin user created", zap.String("email", AdminEmail))
	}

	if err := db.Model(&models.SchoolContent{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count school content: %w", err)
	}
	if count == 0 {
		content := DefaultSchoolContent()
		if err := db.Create(&content).Error; err != nil {
			return fmt.Errorf("create school content: %w", err)
		}
		log.Info("default school content created")
	}

	if err := db.Model(&models.ThemeSetting{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count themes: %w", err)
	}
	if count == 0 {
		if err := db.Create(&models.ThemeSetting{ThemeName: domain.DefaultTheme, IsActive: true}).Error; err != nil {
			return fmt.Errorf("create theme: %w", err)
		}
	}

	if err := db.Model(&models.SiteSetting{}).Where("setting_name = ?", domain.SettingAIAPIKey).Count(&count).Error; err != nil {
		return fmt.Errorf("count settings: %w", err)
	}
	if count == 0 {
		if err := db.Create(&models.SiteSetting{SettingName: domain.SettingAIAPIKey, SettingValue: ""}).Error; err != nil {
			return fmt.Errorf("create ai key setting: %w", err)
		}
	}
	return nil
}
