package models

import "time"

// SchoolContent holds the editable copy of the public pages. The first row is canonical.
type SchoolContent struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	SchoolName       string    `gorm:"size:200" json:"school_name"`
	PrincipalMessage string    `gorm:"type:text" json:"principal_message"`
	Mission          string    `gorm:"type:text" json:"mission"`
	Vision           string    `gorm:"type:text" json:"vision"`
	Motto            string    `gorm:"size:200" json:"motto"`
	History          string    `gorm:"type:text" json:"history"`
	Achievements     string    `gorm:"type:text" json:"achievements"`
	ContactAddress   string    `gorm:"type:text" json:"contact_address"`
	ContactPhone     string    `gorm:"size:50" json:"contact_phone"`
	ContactEmail     string    `gorm:"size:120" json:"contact_email"`
	DateUpdated      time.Time `gorm:"autoUpdateTime" json:"date_updated"`
}

func (SchoolContent) TableName() string { return "school_contents" }
