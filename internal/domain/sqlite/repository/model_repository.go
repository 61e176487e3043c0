package repository

import (
	"errors"

	"gorm.io/gorm"

	"repairdesk/internal/domain/entity"
)

type DefaultModelRepository struct {
	db *gorm.DB
}

func NewModelRepository(db *gorm.DB) *DefaultModelRepository {
	return &DefaultModelRepository{db: db}
}

func (d *DefaultModelRepository) FindActiveByID(id int64) (*entity.Model, error) {
	var model entity.Model
	err := d.db.
		Preload("Brand").
		Where("model_id = ? AND is_active = ?", id, true).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &model, nil
}
