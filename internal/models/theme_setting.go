package models

// ThemeSetting rows are toggled so that at most one is active.
type ThemeSetting struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ThemeName string `gorm:"size:20;not null" json:"theme_name"`
	IsActive  bool   `gorm:"not null;default:false" json:"is_active"`
}

func (ThemeSetting) TableName() string { return "theme_settings" }
