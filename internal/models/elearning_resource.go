package models

import (
	"time"

	"schoolsite/internal/domain"
)

// ELearningResource is either an uploaded file or a YouTube link. The three
// discriminated columns are written only through SetContent.
type ELearningResource struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Form         string    `gorm:"size:20;not null;index" json:"form"`
	Subject      string    `gorm:"size:100;not null;index" json:"subject"`
	Description  string    `gorm:"type:text" json:"description"`
	ResourceType string    `gorm:"size:20;not null" json:"resource_type"`
	Filename     *string   `gorm:"size:200" json:"filename"`
	YoutubeURL   *string   `gorm:"size:500" json:"youtube_url"`
	DateUploaded time.Time `gorm:"autoCreateTime;index" json:"date_uploaded"`
}

func (ELearningResource) TableName() string { return "e_learning_resources" }

// ResourceContent is the sum of FileResource and YoutubeResource.
type ResourceContent interface {
	resourceType() string
}

// FileResource points at a stored document or video. An empty Filename means
// the upload never resolved.
type FileResource struct {
	Filename string
}

type YoutubeResource struct {
	URL string
}

func (FileResource) resourceType() string    { return domain.ResourceTypeFile }
func (YoutubeResource) resourceType() string { return domain.ResourceTypeYoutube }

// SetContent sets resource_type and keeps exactly the matching column populated.
func (r *ELearningResource) SetContent(c ResourceContent) {
	r.ResourceType = c.resourceType()
	r.Filename = nil
	r.YoutubeURL = nil
	switch v := c.(type) {
	case FileResource:
		if v.Filename != "" {
			name := v.Filename
			r.Filename = &name
		}
	case YoutubeResource:
		url := v.URL
		r.YoutubeURL = &url
	}
}

// Content returns the tagged view of the row, or nil for an unknown resource_type.
func (r *ELearningResource) Content() ResourceContent {
	switch r.ResourceType {
	case domain.ResourceTypeFile:
		if r.Filename == nil {
			return FileResource{}
		}
		return FileResource{Filename: *r.Filename}
	case domain.ResourceTypeYoutube:
		if r.YoutubeURL == nil {
			return YoutubeResource{}
		}
		return YoutubeResource{URL: *r.YoutubeURL}
	}
	return nil
}
