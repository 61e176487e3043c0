package repository

import (
	"errors"

	"gorm.io/gorm"

	"repairdesk/internal/domain/entity"
)

type DefaultClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *DefaultClientRepository {
	return &DefaultClientRepository{db: db}
}

// FindActiveInCompany is the ownership check used before attaching an
// order to a client.
func (d *DefaultClientRepository) FindActiveInCompany(clientID, companyID int64) (*entity.Client, error) {
	var client entity.Client
	err := d.db.
		Where("client_id = ? AND company_id = ? AND is_active = ?", clientID, companyID, true).
		First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (d *DefaultClientRepository) Save(client *entity.Client) error {
	return d.db.Save(client).Error
}
