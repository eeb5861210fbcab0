package repository

import (
	"errors"

	"schoolsite/internal/domain"

	"gorm.io/gorm"
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
