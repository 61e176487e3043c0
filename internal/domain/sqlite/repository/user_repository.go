package repository

import (
	"errors"

	"gorm.io/gorm"

	"repairdesk/internal/domain/entity"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (d *DefaultUserRepository) FindActiveByID(id int64) (*entity.User, error) {
	var user entity.User
	err := d.db.
		Preload("Role").
		Preload("Company").
		Where("user_id = ? AND is_active = ?", id, true).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *DefaultUserRepository) FindActiveByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := d.db.
		Preload("Role").
		Preload("Company").
		Where("email = ? AND is_active = ?", email, true).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *DefaultUserRepository) Save(user *entity.User) error {
	return d.db.Save(user).Error
}
