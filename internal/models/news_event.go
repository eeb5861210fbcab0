package models

import "time"

type NewsEvent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Type        string    `gorm:"size:20;not null;index" json:"type"` // news | event
	DateCreated time.Time `gorm:"autoCreateTime;index" json:"date_created"`
}

func (NewsEvent) TableName() string { return "news_events" }
