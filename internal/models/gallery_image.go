package models

import "time"

type GalleryImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"size:200;not null" json:"filename"`
	Title        string    `gorm:"size:200" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	DateUploaded time.Time `gorm:"autoCreateTime;index" json:"date_uploaded"`
}

func (GalleryImage) TableName() string { return "gallery_images" }
