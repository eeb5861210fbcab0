package repository

import (
	"schoolsite/internal/models"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) Create(img *models.GalleryImage) error {
	return r.db.Create(img).Error
}

func (r *GalleryRepository) GetByID(id uint) (*models.GalleryImage, error) {
	var img models.GalleryImage
	if err := r.db.First(&img, id).Error; err != nil {
		return nil, translate(err)
	}
	return &img, nil
}

// List returns images newest-first; limit <= 0 means all.
func (r *GalleryRepository) List(limit int) ([]models.GalleryImage, error) {
	q := r.db.Order("date_uploaded DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var list []models.GalleryImage
	err := q.Find(&list).Error
	return list, err
}

func (r *GalleryRepository) Delete(img *models.GalleryImage) error {
	return r.db.Delete(img).Error
}
