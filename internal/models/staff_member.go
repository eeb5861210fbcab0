package models

import "time"

type StaffMember struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:200;not null" json:"name"`
	Position       string    `gorm:"size:200;not null" json:"position"`
	Qualifications string    `gorm:"type:text" json:"qualifications"`
	Subjects       string    `gorm:"size:500" json:"subjects"`
	PhotoFilename  *string   `gorm:"size:200" json:"photo_filename"` // stored in the gallery directory
	DateAdded      time.Time `gorm:"autoCreateTime" json:"date_added"`
}

func (StaffMember) TableName() string { return "staff_members" }
