package repository

import (
	"schoolsite/internal/models"

	"gorm.io/gorm"
)

type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(n *models.NewsEvent) error {
	return r.db.Create(n).Error
}

func (r *NewsRepository) GetByID(id uint) (*models.NewsEvent, error) {
	var n models.NewsEvent
	if err := r.db.First(&n, id).Error; err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

// List returns items newest-first. Empty newsType means both kinds; limit <= 0 means no limit.
func (r *NewsRepository) List(newsType string, limit int) ([]models.NewsEvent, error) {
	q := r.db.Model(&models.NewsEvent{})
	if newsType != "" {
		q = q.Where("type = ?", newsType)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var list []models.NewsEvent
	err := q.Order("date_created DESC").Order("id DESC").Find(&list).Error
	return list, err
}

func (r *NewsRepository) Delete(n *models.NewsEvent) error {
	return r.db.Delete(n).Error
}
