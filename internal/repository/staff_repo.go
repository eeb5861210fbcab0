package repository

import (
	"schoolsite/internal/models"

	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(s *models.StaffMember) error {
	return r.db.Create(s).Error
}

func (r *StaffRepository) GetByID(id uint) (*models.StaffMember, error) {
	var s models.StaffMember
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

// List returns staff in the order they were added.
func (r *StaffRepository) List() ([]models.StaffMember, error) {
	var list []models.StaffMember
	err := r.db.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *StaffRepository) Delete(s *models.StaffMember) error {
	return r.db.Delete(s).Error
}
