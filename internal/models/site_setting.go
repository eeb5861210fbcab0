package models

// SiteSetting stores admin-configurable key/value settings.
type SiteSetting struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SettingName  string `gorm:"uniqueIndex;size:100;not null" json:"setting_name"`
	SettingValue string `gorm:"type:text" json:"setting_value"`
}

func (SiteSetting) TableName() string { return "site_settings" }
