package models

import "time"

// VideoSetting is an uploaded homepage background video.
type VideoSetting struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	VideoFilename string    `gorm:"size:200;not null" json:"video_filename"`
	VideoTitle    string    `gorm:"size:200" json:"video_title"`
	IsActive      bool      `gorm:"not null;default:false" json:"is_active"`
	DateUploaded  time.Time `gorm:"autoCreateTime" json:"date_uploaded"`
}

func (VideoSetting) TableName() string { return "video_settings" }
