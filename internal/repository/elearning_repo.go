package repository

import (
	"schoolsite/internal/models"

	"gorm.io/gorm"
)

type ELearningRepository struct {
	db *gorm.DB
}

func NewELearningRepository(db *gorm.DB) *ELearningRepository {
	return &ELearningRepository{db: db}
}

// ResourceFilter is an exact-match conjunction; empty fields do not filter.
type ResourceFilter struct {
	Form    string
	Subject string
}

func (f ResourceFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Form != "" {
		q = q.Where("form = ?", f.Form)
	}
	if f.Subject != "" {
		q = q.Where("subject = ?", f.Subject)
	}
	return q
}

func (r *ELearningRepository) Create(res *models.ELearningResource) error {
	return r.db.Create(res).Error
}

func (r *ELearningRepository) GetByID(id uint) (*models.ELearningResource, error) {
	var res models.ELearningResource
	if err := r.db.First(&res, id).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *ELearningRepository) List(filter ResourceFilter) ([]models.ELearningResource, error) {
	var list []models.ELearningResource
	err := filter.apply(r.db.Model(&models.ELearningResource{})).
		Order("date_uploaded DESC").Order("id DESC").
		Find(&list).Error
	return list, err
}

func (r *ELearningRepository) Delete(res *models.ELearningResource) error {
	return r.db.Delete(res).Error
}
