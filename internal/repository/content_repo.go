package repository

import (
	"schoolsite/internal/models"

	"gorm.io/gorm"
)

type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Get returns the canonical (first) school content row, or domain.ErrNotFound.
func (r *ContentRepository) Get() (*models.SchoolContent, error) {
	var c models.SchoolContent
	if err := r.db.Order("id ASC").First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// Save inserts c when it has no id yet, otherwise updates every column.
func (r *ContentRepository) Save(c *models.SchoolContent) error {
	return r.db.Save(c).Error
}
